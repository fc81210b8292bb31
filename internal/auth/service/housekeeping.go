package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/lumacart/lumacart/internal/auth/store"
)

// HousekeepingService periodically deletes expired sessions and remember
// tokens and lapses stale deletion requests, keeping the tables from
// growing without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down, blocking until any in-progress sweep finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep once immediately on startup.
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup runs each sweep independently so one failure doesn't stop the rest.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	s.Logger.Debug("starting housekeeping sweep")

	if err := s.Store.Sessions().DeleteExpiredSessions(ctx); err != nil {
		s.Logger.Error("failed to delete expired sessions", "error", err)
	}

	if err := s.Store.RememberTokens().DeleteExpiredRememberTokens(ctx); err != nil {
		s.Logger.Error("failed to delete expired remember tokens", "error", err)
	}

	expired, err := s.Store.DeletionRequests().ExpirePendingRequests(ctx, time.Now().UTC())
	if err != nil {
		s.Logger.Error("failed to expire stale deletion requests", "error", err)
	} else if expired > 0 {
		s.Logger.Info("lapsed stale deletion requests", "count", expired)
	}

	s.Logger.Debug("housekeeping sweep completed")
}
