package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// RenderFunc is one refresh cycle. The scheduler does not care about
// the view, only whether the refresh succeeded.
type RenderFunc func(ctx context.Context) error

// Scheduler re-renders the dashboard on a cron cadence so the snapshot
// cache stays warm and server requests hit fresh data.
type Scheduler struct {
	cron    *cron.Cron
	render  RenderFunc
	timeout time.Duration
}

// New builds a scheduler from a six-field cron spec (with seconds).
func New(spec string, render RenderFunc) (*Scheduler, error) {
	c := cron.New(cron.WithSeconds())

	s := &Scheduler{
		cron:    c,
		render:  render,
		timeout: 30 * time.Second,
	}

	if _, err := c.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return s, nil
}

// Start launches the cron loop and runs one refresh immediately so the
// server never serves an empty cache after boot.
func (s *Scheduler) Start() {
	s.run()
	s.cron.Start()
	log.Info().Msg("refresh scheduler started")
}

// Stop halts scheduling and waits for an in-flight refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("refresh scheduler stopped")
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.render(ctx); err != nil {
		log.Warn().Err(err).Msg("scheduled refresh failed")
		return
	}
	log.Debug().Dur("duration", time.Since(start)).Msg("scheduled refresh complete")
}
