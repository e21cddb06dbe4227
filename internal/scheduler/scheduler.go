// Package scheduler drives watch mode: periodic re-analysis of the input
// pattern on a cron schedule.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs a single analysis job on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	job    func() error
	logger zerolog.Logger
}

// New creates a Scheduler around the given job. Cron expressions include a
// seconds field.
func New(job func() error, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		job:    job,
		logger: logger,
	}
}

// Register schedules the job under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("register watch job: %w", err)
	}
	return nil
}

func (s *Scheduler) run() {
	s.logger.Info().Msg("watch run starting")
	if err := s.job(); err != nil {
		s.logger.Error().Err(err).Msg("watch run failed")
		return
	}
	s.logger.Info().Msg("watch run finished")
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info().Msg("scheduler stopped")
}
