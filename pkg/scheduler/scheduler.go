package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// NotificationJanitor expires old notifications and prunes stale state
type NotificationJanitor interface {
	ExpireOld(ctx context.Context) error
}

// RateRefresher refreshes the cached benchmark lending rate
type RateRefresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler runs the periodic housekeeping jobs: daily notification expiry
// and hourly benchmark rate refresh
type Scheduler struct {
	cron    *cron.Cron
	janitor NotificationJanitor
	rates   RateRefresher
	logger  *logrus.Logger
}

// NewScheduler creates a new Scheduler
func NewScheduler(janitor NotificationJanitor, rates RateRefresher, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		janitor: janitor,
		rates:   rates,
		logger:  logger,
	}
}

// Start registers the jobs and starts the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@daily", s.expireNotifications); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc("@hourly", s.refreshRate); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")

	return nil
}

// Stop stops the cron loop and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) expireNotifications() {
	if err := s.janitor.ExpireOld(context.Background()); err != nil {
		s.logger.Warnf("Notification expiry failed: %v", err)
	}
}

func (s *Scheduler) refreshRate() {
	if err := s.rates.Refresh(context.Background()); err != nil {
		s.logger.Warnf("Benchmark rate refresh failed: %v", err)
	}
}
