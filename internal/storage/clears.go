package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
)

// ClearEntry is one won run from the clear history.
type ClearEntry struct {
	ID         string
	GameID     string
	Difficulty string
	Moves      int
	Seconds    int
	NewBest    bool
	CreatedAt  time.Time
}

// ClearStats contains aggregated statistics for one difficulty.
type ClearStats struct {
	Difficulty  string
	Count       int
	BestMoves   int
	BestSeconds int
	AvgMoves    float64
	LastPlayed  time.Time
}

// RecordClear implements lightsout.ClearRecorder.
func (s *Store) RecordClear(c lightsout.ClearResult) error {
	at := c.At
	if at.IsZero() {
		at = time.Now()
	}
	newBest := 0
	if c.NewBest {
		newBest = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO clears (id, game_id, difficulty, moves, seconds, new_best, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), c.GameID, string(c.Difficulty), c.Moves, c.Seconds, newBest, formatTime(at),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record clear: %w", err)
	}
	return nil
}

// Ensure Store implements ClearRecorder
var _ lightsout.ClearRecorder = (*Store)(nil)

// RecentClears returns the latest clears, newest first. An empty difficulty
// matches every difficulty.
func (s *Store) RecentClears(difficulty string, limit int) ([]ClearEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, difficulty, moves, seconds, new_best, created_at
		 FROM clears
		 WHERE ? = '' OR difficulty = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	defer rows.Close()

	var entries []ClearEntry
	for rows.Next() {
		var e ClearEntry
		var newBest int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Difficulty, &e.Moves, &e.Seconds, &newBest, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.NewBest = newBest != 0
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearStats aggregates the clear history of one difficulty.
// A difficulty with no clears returns zero counts.
func (s *Store) ClearStats(difficulty string) (*ClearStats, error) {
	stats := &ClearStats{Difficulty: difficulty}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(MIN(seconds), 0),
		        COALESCE(AVG(moves), 0), MAX(created_at)
		 FROM clears WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.Count, &stats.BestMoves, &stats.BestSeconds, &stats.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get clear stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// PruneClears deletes history entries older than before and returns how many
// were removed. Best records in the kv table are never touched.
func (s *Store) PruneClears(before time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM clears WHERE created_at < ?", formatTime(before))
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune clears: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count pruned clears: %w", err)
	}
	return n, nil
}
