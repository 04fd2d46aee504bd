// Package sweep flips overdue tasks to expired on a schedule. The game
// store only reacts to the resulting status; cadence lives here.
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/oguzhankocabas81/focus-pet/internal/game"
)

// Scheduler runs the due-date sweep periodically while a long-lived
// session (the timer TUI) is open.
type Scheduler struct {
	store *game.Store
	cron  *cron.Cron
}

func NewScheduler(store *game.Store) *Scheduler {
	return &Scheduler{
		store: store,
		cron:  cron.New(cron.WithSeconds()),
	}
}

// Start registers the periodic sweep and begins delivery.
func (s *Scheduler) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("sweep interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	spec := fmt.Sprintf("@every %ds", seconds)
	if _, err := s.cron.AddFunc(spec, func() {
		_, _ = s.store.SweepExpired(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop tears delivery down and waits for an in-flight sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
