package ratesync

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs sync jobs on cron schedules.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
}

// NewScheduler creates a scheduler. Schedules use the standard five-field
// cron syntax or descriptors such as "@hourly" and "@every 30m".
func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron: cron.New(),
		log:  logger.With(slog.String("component", "scheduler")),
	}
}

// AddJob registers job under schedule.
func (s *Scheduler) AddJob(schedule string, job *Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.log.Debug("Running job", slog.String("job", job.Name()))
		if _, err := job.Run(context.Background()); err != nil {
			s.log.Error("Job failed", slog.String("job", job.Name()), slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return err
	}
	s.log.Info("Job registered", slog.String("schedule", schedule), slog.String("job", job.Name()))
	return nil
}

// Start starts the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started")
}

// Stop stops scheduling and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Scheduler stopped")
}
