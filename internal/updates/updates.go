// Package updates runs the background periodic pass: recurrence-family
// extension and overdue-task alerts.
package updates

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	logx "dayplan/pkg/logx"
)

// Service owns the cron worker. The tick body itself is injected by the App,
// which runs it under the process-wide lock; the service only controls
// cadence and lifecycle.
//
// The worker is a best-effort collaborator: Stop never waits for an
// in-flight tick, and process shutdown abandons the worker outright.
type Service struct {
	interval time.Duration
	tick     func()
	log      logx.Logger

	// limiter throttles per-tick log chatter when the interval is
	// configured very short (sub-second intervals are handy in tests).
	// It never gates the tick itself.
	limiter *rate.Limiter

	mu      sync.Mutex
	c       *cron.Cron
	running bool
}

func New(interval time.Duration, tick func(), log logx.Logger) *Service {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Service{
		interval: interval,
		tick:     tick,
		log:      log,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 4),
	}
}

// Running reports whether the worker is active.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start launches the periodic worker. It reports false, without side
// effects, when the worker is already running.
func (s *Service) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}

	c := cron.New()
	if _, err := c.AddFunc("@every "+s.interval.String(), s.runTick); err != nil {
		// Positive durations always produce a valid @every spec.
		s.log.Error("updates schedule rejected", logx.Err(err), logx.Duration("interval", s.interval))
		return false
	}
	c.Start()

	s.c = c
	s.running = true
	s.log.Info("periodic updates started", logx.Duration("interval", s.interval))
	return true
}

// Stop flips the worker off. Safe to call when not running; an in-flight
// tick finishes on its own.
func (s *Service) Stop() {
	s.mu.Lock()
	c := s.c
	s.c = nil
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	if c != nil {
		c.Stop()
	}
	if wasRunning {
		s.log.Info("periodic updates stopped")
	}
}

func (s *Service) runTick() {
	if s.limiter.Allow() {
		s.log.Debug("update pass")
	}
	s.tick()
}
