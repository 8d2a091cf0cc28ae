// Package scheduler runs recurring background jobs on a cron runner.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler wraps a cron runner with structured logging and panic
// recovery around each job.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New creates a stopped Scheduler; call Start to begin running jobs.
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log,
	}
}

// Every registers a job to run at the given interval. The job receives
// a background context; a panicking job is logged and does not take the
// runner down.
func (s *Scheduler) Every(interval time.Duration, name string, job func(ctx context.Context)) error {
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error().Interface("panic", r).Str("job", name).Msg("scheduled job panicked")
			}
		}()

		start := time.Now()
		job(context.Background())
		s.log.Debug().Str("job", name).Dur("took", time.Since(start)).Msg("scheduled job finished")
	})
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	return nil
}

// Start begins running registered jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the runner and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
