package portfolio

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Refresher accepts refresh triggers from outside the scheduler loop
type Refresher interface {
	Trigger()
}

// Scheduler drives periodic and on-demand portfolio refreshes. A single
// worker goroutine serializes cycles; a trigger arriving while a cycle is
// running is buffered, so a refresh request is never lost. Multiple pending
// triggers coalesce into one follow-up cycle.
type Scheduler struct {
	service  Service
	interval time.Duration
	logger   *logrus.Logger

	trigger  chan struct{}
	done     chan struct{}
	finished chan struct{}

	started  atomic.Bool
	stopOnce sync.Once
}

// NewScheduler creates a scheduler for the given service and interval
func NewScheduler(service Service, interval time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		service:  service,
		interval: interval,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start launches the refresh loop: an immediate cycle, then one per tick and
// one per trigger. It returns immediately and does nothing when called again.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.finished)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.WithField("interval", s.interval).Info("Starting refresh scheduler")
	s.service.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping refresh scheduler")
			return
		case <-s.done:
			s.logger.Info("Stopping refresh scheduler")
			return
		case <-ticker.C:
			s.service.Refresh(ctx)
		case <-s.trigger:
			s.service.Refresh(ctx)
		}
	}
}

// Trigger requests an immediate refresh, typically relayed from the portfolio
// page regaining visibility. It never blocks.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Stop shuts the scheduler down and waits for an in-flight cycle to finish.
// It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	if s.started.Load() {
		<-s.finished
	}
}
