package settings

import (
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Store loads, caches and saves Settings. A Store without a gdata manager
// keeps settings in memory only. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	manager *gdata.Manager
	current Settings
	logger  *log.Logger
}

// Open creates a store persisted under the gdata directory of appName.
func Open(appName string, logger *log.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("settings: cannot open data dir for %s: %w", appName, err)
	}
	return New(m, logger), nil
}

// New creates a store over manager, which may be nil, and loads the saved
// settings. Unreadable settings fall back to the defaults.
func New(manager *gdata.Manager, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		manager: manager,
		current: Default(),
		logger:  logger,
	}
	s.Load()
	return s
}

// Persistent reports whether changes survive a restart.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load rereads the saved settings and returns them. Missing or corrupt data
// yields the defaults.
func (s *Store) Load() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.read()
	if err != nil {
		s.logger.Warn("could not load settings, using defaults", "error", err)
	}
	s.current = loaded
	return s.current.Clone()
}

func (s *Store) read() (Settings, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return Default(), nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return Default(), fmt.Errorf("settings: cannot read: %w", err)
	}

	// Start from defaults so keys missing from older files keep their default.
	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Default(), fmt.Errorf("settings: cannot decode: %w", err)
	}
	return loaded.Normalize(), nil
}

// Save normalizes and stores st, replacing the current settings. In memory
// mode it only replaces the current settings.
func (s *Store) Save(st Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(st.Normalize())
}

func (s *Store) save(st Settings) error {
	s.current = st.Clone()
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: cannot write: %w", err)
	}
	return nil
}

// Current returns a copy of the current settings.
func (s *Store) Current() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Update applies fn to a copy of the current settings and saves the result.
func (s *Store) Update(fn func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	fn(&next)
	return s.save(next.Normalize())
}

// RecordGameClear adds gameID to the cleared games. Repeated clears are
// recorded once.
func (s *Store) RecordGameClear(gameID string) error {
	return s.Update(func(st *Settings) {
		if !slices.Contains(st.Progress.ClearedGames, gameID) {
			st.Progress.ClearedGames = append(st.Progress.ClearedGames, gameID)
		}
	})
}

// UnlockContent adds id to the unlocked content. It reports whether id was
// newly unlocked.
func (s *Store) UnlockContent(id string) (bool, error) {
	unlocked := false
	err := s.Update(func(st *Settings) {
		if !slices.Contains(st.Progress.UnlockedContent, id) {
			st.Progress.UnlockedContent = append(st.Progress.UnlockedContent, id)
			unlocked = true
		}
	})
	return unlocked, err
}

// Reset restores and saves the defaults, progress included.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(Default())
}
