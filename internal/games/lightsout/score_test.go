package lightsout

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// memStore is an in-memory ScoreStore with switchable failures.
type memStore struct {
	records   map[string]ScoreRecord
	clears    []ClearResult
	loadErr   error
	saveErr   error
	saveCalls int
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]ScoreRecord)}
}

func (m *memStore) LoadScore(key string) (ScoreRecord, bool, error) {
	if m.loadErr != nil {
		return ScoreRecord{}, false, m.loadErr
	}
	rec, ok := m.records[key]
	return rec, ok, nil
}

func (m *memStore) SaveScore(key string, rec ScoreRecord) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records[key] = rec
	return nil
}

func (m *memStore) RecordClear(c ClearResult) error {
	m.clears = append(m.clears, c)
	return nil
}

// fakeClock returns a fixed time that tests move forward by hand.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestApplyResultScenario(t *testing.T) {
	store := newMemStore()
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := NewScorer(store, WithClock(clock.Now), WithLogger(quietLogger()))

	// First clear
	rec, newBest := s.ApplyResult(Easy, 10, 30)
	if !newBest {
		t.Error("first clear should be a new best")
	}
	want := ScoreRecord{BestMoves: 10, BestTimeSeconds: 30, AchievedAt: clock.now, ClearCount: 1}
	if rec != want {
		t.Errorf("after first clear = %+v, want %+v", rec, want)
	}
	firstAt := clock.now

	// Worse clear keeps the best
	clock.now = clock.now.Add(time.Hour)
	rec, newBest = s.ApplyResult(Easy, 15, 12)
	if newBest {
		t.Error("worse clear should not be a new best")
	}
	want = ScoreRecord{BestMoves: 10, BestTimeSeconds: 30, AchievedAt: firstAt, ClearCount: 2}
	if rec != want {
		t.Errorf("after worse clear = %+v, want %+v", rec, want)
	}

	// Better clear replaces it
	clock.now = clock.now.Add(time.Hour)
	rec, newBest = s.ApplyResult(Easy, 8, 41)
	if !newBest {
		t.Error("better clear should be a new best")
	}
	want = ScoreRecord{BestMoves: 8, BestTimeSeconds: 41, AchievedAt: clock.now, ClearCount: 3}
	if rec != want {
		t.Errorf("after better clear = %+v, want %+v", rec, want)
	}

	if stored := store.records["lights-out-easy"]; stored != want {
		t.Errorf("stored record = %+v, want %+v", stored, want)
	}
	if len(store.clears) != 3 {
		t.Fatalf("recorded %d clears, want 3", len(store.clears))
	}
	if !store.clears[0].NewBest || store.clears[1].NewBest || !store.clears[2].NewBest {
		t.Errorf("clear history NewBest flags = %v %v %v", store.clears[0].NewBest, store.clears[1].NewBest, store.clears[2].NewBest)
	}
	if store.clears[1].GameID != GameID || store.clears[1].Moves != 15 {
		t.Errorf("clear history entry = %+v", store.clears[1])
	}
}

func TestApplyResultTieKeepsBest(t *testing.T) {
	store := newMemStore()
	s := NewScorer(store, WithLogger(quietLogger()))

	first, _ := s.ApplyResult(Normal, 20, 60)
	rec, newBest := s.ApplyResult(Normal, 20, 5)

	if newBest {
		t.Error("equal move count should not be a new best")
	}
	if rec.BestTimeSeconds != 60 || !rec.AchievedAt.Equal(first.AchievedAt) {
		t.Errorf("tie replaced the best: %+v", rec)
	}
	if rec.ClearCount != 2 {
		t.Errorf("ClearCount = %d, want 2", rec.ClearCount)
	}
}

func TestApplyResultKeysPerDifficulty(t *testing.T) {
	store := newMemStore()
	s := NewScorer(store, WithLogger(quietLogger()))

	s.ApplyResult(Easy, 5, 10)
	s.ApplyResult(Hard, 30, 200)

	if len(store.records) != 2 {
		t.Fatalf("stored %d records, want 2", len(store.records))
	}
	if store.records["lights-out-easy"].BestMoves != 5 || store.records["lights-out-hard"].BestMoves != 30 {
		t.Errorf("records = %+v", store.records)
	}
	if _, ok := s.Best(Normal); ok {
		t.Error("Best(Normal) should be absent")
	}
}

func TestApplyResultUnreadableStore(t *testing.T) {
	store := newMemStore()
	store.records["lights-out-easy"] = ScoreRecord{BestMoves: 3, ClearCount: 9}
	store.loadErr = errors.New("corrupt record")
	s := NewScorer(store, WithLogger(quietLogger()))

	rec, newBest := s.ApplyResult(Easy, 12, 40)
	if !newBest || rec.BestMoves != 12 || rec.ClearCount != 1 {
		t.Errorf("unreadable record should be treated as absent, got %+v new=%v", rec, newBest)
	}
}

func TestApplyResultSaveFailureKeepsMemory(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("disk full")
	s := NewScorer(store, WithLogger(quietLogger()))

	s.ApplyResult(Easy, 10, 30)
	rec, newBest := s.ApplyResult(Easy, 15, 20)

	if store.saveCalls != 2 {
		t.Errorf("SaveScore called %d times, want 2", store.saveCalls)
	}
	if newBest || rec.BestMoves != 10 || rec.ClearCount != 2 {
		t.Errorf("in-memory record lost after failed saves: %+v", rec)
	}
	if best, ok := s.Best(Easy); !ok || best != rec {
		t.Errorf("Best(Easy) = %+v, %v; want %+v", best, ok, rec)
	}
}

func TestNilStoreScorer(t *testing.T) {
	s := NewScorer(nil)
	s.ApplyResult(Hard, 40, 100)
	rec, _ := s.ApplyResult(Hard, 35, 90)

	if rec.BestMoves != 35 || rec.ClearCount != 2 {
		t.Errorf("in-memory scorer record = %+v", rec)
	}
	all := s.LoadAll()
	if len(all) != 1 || all[Hard] != rec {
		t.Errorf("LoadAll() = %+v", all)
	}
}
