package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrBusy is returned by RunOnce while another evaluation is in progress.
	ErrBusy = errors.New("evaluation already running")
	// ErrStopped is returned by RunOnce after Stop.
	ErrStopped = errors.New("scheduler stopped")
)

// Evaluator runs one pass over all enabled alert rules.
// alert.Engine implements this.
type Evaluator interface {
	RunScheduledEvaluation(ctx context.Context) error
}

// Scheduler triggers the alert evaluation on a fixed interval.
type Scheduler struct {
	eval       Evaluator
	log        *zap.Logger
	interval   time.Duration
	runOnStart bool

	running sync.Mutex
	stopped bool // guarded by running
}

// New creates a new Scheduler.
func New(eval Evaluator, log *zap.Logger, interval time.Duration, runOnStart bool) *Scheduler {
	return &Scheduler{
		eval:       eval,
		log:        log,
		interval:   interval,
		runOnStart: runOnStart,
	}
}

// Run starts the loop until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("scheduler started",
		zap.Duration("interval", s.interval),
		zap.Bool("runOnStart", s.runOnStart),
	)
	if s.runOnStart {
		s.tick(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopping")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// RunOnce performs one evaluation unless one is already running.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if !s.running.TryLock() {
		return ErrBusy
	}
	defer s.running.Unlock()
	if s.stopped {
		return ErrStopped
	}

	start := time.Now()
	err := s.eval.RunScheduledEvaluation(ctx)
	s.log.Info("evaluation pass done", zap.Duration("took", time.Since(start)), zap.Bool("ok", err == nil))
	return err
}

// Stop waits for a running evaluation to finish and makes every later
// RunOnce return ErrStopped.
func (s *Scheduler) Stop() {
	s.running.Lock()
	defer s.running.Unlock()
	s.stopped = true
}

// tick performs one scheduled cycle. A pass still running from the previous
// tick is not doubled.
func (s *Scheduler) tick(ctx context.Context) {
	switch err := s.RunOnce(ctx); {
	case errors.Is(err, ErrBusy):
		s.log.Warn("previous evaluation still running, tick skipped")
	case errors.Is(err, ErrStopped):
		s.log.Info("scheduler stopped, tick skipped")
	case err != nil:
		s.log.Error("scheduled evaluation failed", zap.Error(err))
	}
}
