// Package jobs runs background maintenance for the SSH server.
package jobs

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
)

// ClearPruner deletes clear history older than a cutoff.
type ClearPruner interface {
	PruneClears(before time.Time) (int64, error)
}

// PruneConfig controls clear-history pruning.
type PruneConfig struct {
	Every  time.Duration // How often to prune
	Retain time.Duration // How much history to keep
}

// DefaultPruneConfig keeps 90 days of history and prunes every 6 hours.
func DefaultPruneConfig() PruneConfig {
	return PruneConfig{
		Every:  6 * time.Hour,
		Retain: 90 * 24 * time.Hour,
	}
}

// Scheduler owns the background jobs.
type Scheduler struct {
	sched  gocron.Scheduler
	logger *log.Logger
}

// StartPruner schedules clear pruning, running once immediately.
func StartPruner(p ClearPruner, cfg PruneConfig, logger *log.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = log.Default()
	}
	def := DefaultPruneConfig()
	if cfg.Every <= 0 {
		cfg.Every = def.Every
	}
	if cfg.Retain <= 0 {
		cfg.Retain = def.Retain
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("jobs: cannot create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(cfg.Every),
		gocron.NewTask(func() {
			PruneOnce(p, cfg.Retain, time.Now(), logger)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		sched.Shutdown()
		return nil, fmt.Errorf("jobs: cannot schedule pruning: %w", err)
	}

	sched.Start()
	logger.Info("clear pruning scheduled", "every", cfg.Every, "retain", cfg.Retain)
	return &Scheduler{sched: sched, logger: logger}, nil
}

// PruneOnce removes history older than now-retain and returns the count.
func PruneOnce(p ClearPruner, retain time.Duration, now time.Time, logger *log.Logger) int64 {
	n, err := p.PruneClears(now.Add(-retain))
	if err != nil {
		logger.Error("clear pruning failed", "error", err)
		return 0
	}
	if n > 0 {
		logger.Info("pruned clear history", "removed", n)
	}
	return n
}

// Shutdown stops all jobs and waits for running ones.
func (s *Scheduler) Shutdown() error {
	if err := s.sched.Shutdown(); err != nil {
		return fmt.Errorf("jobs: shutdown: %w", err)
	}
	return nil
}
