package lightsout

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ScoreRecord is the persisted best performance for one difficulty.
type ScoreRecord struct {
	BestMoves       int       `json:"bestMoves"`
	BestTimeSeconds int       `json:"bestTimeSeconds"`
	AchievedAt      time.Time `json:"achievedAtTimestamp"`
	ClearCount      int       `json:"clearCount"`
}

// ScoreStore is the durable key/value mapping the scorer persists records to.
// LoadScore reports found=false when the key has no record.
type ScoreStore interface {
	LoadScore(key string) (rec ScoreRecord, found bool, err error)
	SaveScore(key string, rec ScoreRecord) error
}

// ClearResult describes one won run.
type ClearResult struct {
	GameID     string
	Difficulty Difficulty
	Moves      int
	Seconds    int
	NewBest    bool
	At         time.Time
}

// ClearRecorder is optionally implemented by a ScoreStore that also keeps
// the history of every clear.
type ClearRecorder interface {
	RecordClear(c ClearResult) error
}

// Scorer applies the best-score policy: a run becomes the new best only with
// strictly fewer moves, and every clear bumps the clear count.
// A Scorer is safe for concurrent use and may be shared between engines.
type Scorer struct {
	mu     sync.Mutex
	store  ScoreStore
	now    func() time.Time
	logger *log.Logger
	cache  map[Difficulty]ScoreRecord
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithClock overrides the time source used for AchievedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used to report persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Scorer) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScorer creates a scorer. A nil store keeps records in memory only.
func NewScorer(store ScoreStore, opts ...Option) *Scorer {
	s := &Scorer{
		store:  store,
		now:    time.Now,
		logger: log.Default(),
		cache:  make(map[Difficulty]ScoreRecord),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ApplyResult folds a won run into the record for d and persists it.
// Persistence errors are logged; the returned record is always the new
// in-memory state.
func (s *Scorer) ApplyResult(d Difficulty, moves, elapsedSeconds int) (ScoreRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, found := s.lookup(d)
	clearCount := 1
	if found {
		clearCount = existing.ClearCount + 1
	}

	var rec ScoreRecord
	newBest := !found || moves < existing.BestMoves
	if newBest {
		rec = ScoreRecord{
			BestMoves:       moves,
			BestTimeSeconds: elapsedSeconds,
			AchievedAt:      s.now(),
			ClearCount:      clearCount,
		}
	} else {
		rec = existing
		rec.ClearCount = clearCount
	}

	if s.store != nil {
		if err := s.store.SaveScore(ScoreKey(d), rec); err != nil {
			s.logger.Warn("could not save score", "key", ScoreKey(d), "error", err)
		}
		if rc, ok := s.store.(ClearRecorder); ok {
			err := rc.RecordClear(ClearResult{
				GameID:     GameID,
				Difficulty: d,
				Moves:      moves,
				Seconds:    elapsedSeconds,
				NewBest:    newBest,
				At:         s.now(),
			})
			if err != nil {
				s.logger.Warn("could not record clear", "difficulty", d, "error", err)
			}
		}
	}
	s.cache[d] = rec

	return rec, newBest
}

// Best returns the current record for d, reading through to the store.
func (s *Scorer) Best(d Difficulty) (ScoreRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(d)
}

// LoadAll refreshes the cache for every difficulty from the store.
func (s *Scorer) LoadAll() map[Difficulty]ScoreRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[Difficulty]ScoreRecord)
	for _, d := range difficulties {
		if rec, ok := s.lookup(d); ok {
			out[d] = rec
		}
	}
	return out
}

// lookup prefers the stored record. An unreadable or missing stored record
// falls back to the cached one, so failed writes never lose a clear.
// Caller holds s.mu.
func (s *Scorer) lookup(d Difficulty) (ScoreRecord, bool) {
	if s.store != nil {
		rec, found, err := s.store.LoadScore(ScoreKey(d))
		switch {
		case err != nil:
			s.logger.Warn("could not load score, treating as absent", "key", ScoreKey(d), "error", err)
		case found:
			s.cache[d] = rec
			return rec, true
		}
	}
	rec, ok := s.cache[d]
	return rec, ok
}
