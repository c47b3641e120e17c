package tui

import (
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lights-arcade/internal/config"
	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
	"github.com/vovakirdan/lights-arcade/internal/registry"
	"github.com/vovakirdan/lights-arcade/internal/settings"
	"github.com/vovakirdan/lights-arcade/internal/storage"
)

// Services bundles the shared state every screen reads from. One Services
// value is shared by all screens of a process, SSH sessions included.
type Services struct {
	Store         *storage.Store // nil when the database could not be opened
	Settings      *settings.Store
	Scorer        *lightsout.Scorer
	GameConfig    config.LightsOutConfig
	Logger        *log.Logger
	ScreenshotDir string
}

// NewServices wires the scorer to store. A nil settings store is replaced by
// an in-memory one.
func NewServices(store *storage.Store, st *settings.Store, gameCfg config.LightsOutConfig, logger *log.Logger) *Services {
	if logger == nil {
		logger = log.Default()
	}
	if st == nil {
		st = settings.New(nil, logger)
	}

	return &Services{
		Store:         store,
		Settings:      st,
		Scorer:        lightsout.NewScorer(scoreStoreOf(store), lightsout.WithLogger(logger)),
		GameConfig:    gameCfg.Normalize(),
		Logger:        logger,
		ScreenshotDir: defaultScreenshotDir(),
	}
}

// scoreStoreOf avoids handing the scorer a typed nil.
func scoreStoreOf(store *storage.Store) lightsout.ScoreStore {
	if store == nil {
		return nil
	}
	return store
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// PrepareGame applies the shared scorer, game config and the current display
// settings to a freshly created game.
func (s *Services) PrepareGame(g registry.Game) {
	lo, ok := g.(*lightsout.Game)
	if !ok {
		return
	}

	cur := s.Settings.Current()
	cfg := s.GameConfig
	scale := cur.Display.UIScale
	cfg.Display.CellWidth = int(math.Round(float64(cfg.Display.CellWidth) * scale))
	cfg.Display.CellHeight = int(math.Round(float64(cfg.Display.CellHeight) * scale))

	lo.UseScorer(s.Scorer)
	lo.Configure(cfg)
	lo.SetShowPicture(cur.Display.ShowBackground)
	lo.SetAnimations(cur.Display.EnableAnimations)
}

// Close releases the database.
func (s *Services) Close() {
	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			s.Logger.Warn("could not close scores database", "error", err)
		}
	}
}
