// Package alert evaluates user-defined alert rules against budget, bill and
// goal state and writes a notification for every rule whose condition holds.
package alert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
	"github.com/Donchitos/Budgetzz-sub000/internal/settle"
)

// Engine runs one scheduled evaluation over all enabled rules.
type Engine struct {
	repo   Repository
	writer *Writer
	log    *zap.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used by the evaluators.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine that writes notifications through w.
func NewEngine(repo Repository, w *Writer, log *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		repo:   repo,
		writer: w,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunScheduledEvaluation loads every enabled rule and evaluates them
// concurrently. A failing rule is logged and never affects its siblings.
// The only returned error is a failure to load the rules, in which case
// nothing is evaluated. Once started, evaluations ignore ctx cancellation.
func (e *Engine) RunScheduledEvaluation(ctx context.Context) error {
	rules, err := e.repo.EnabledRules(ctx)
	if err != nil {
		e.log.Error("load enabled rules failed", zap.Error(err))
		return fmt.Errorf("load enabled rules: %w", err)
	}
	if len(rules) == 0 {
		e.log.Info("no enabled alert rules")
		return nil
	}

	tasks := make([]settle.Task[struct{}], len(rules))
	for i, rule := range rules {
		tasks[i] = func(ctx context.Context) (struct{}, error) {
			return struct{}{}, e.evaluate(ctx, rule)
		}
	}

	// A rule writes its notification before persisting goal state; canceling
	// between the two would resend the notification on the next run.
	outcomes := settle.All(context.WithoutCancel(ctx), tasks)
	for i, o := range outcomes {
		if o.Err == nil {
			continue
		}
		e.log.Error("rule evaluation failed",
			zap.String("ruleID", rules[i].ID),
			zap.String("userID", rules[i].UserID),
			zap.String("alertType", string(rules[i].Type())),
			zap.Error(o.Err),
		)
	}

	e.log.Info("alert evaluation finished",
		zap.Int("rules", len(rules)),
		zap.Int("failed", settle.Failed(outcomes)),
	)
	return nil
}

// evaluate dispatches rule to the evaluator for its condition.
func (e *Engine) evaluate(ctx context.Context, rule domain.AlertRule) error {
	switch c := rule.Condition.(type) {
	case domain.BudgetThreshold:
		return e.evaluateBudget(ctx, rule, c)
	case domain.BillDue:
		return e.evaluateBill(ctx, rule, c)
	case domain.GoalProgress:
		return e.evaluateGoal(ctx, rule, c)
	case domain.UnusualSpending:
		// Evaluated on transaction creation, not by the schedule.
		e.log.Debug("skipping event-driven rule", zap.String("ruleID", rule.ID))
		return nil
	default:
		e.log.Warn("unknown alert type",
			zap.String("ruleID", rule.ID),
			zap.String("alertType", string(rule.Type())),
		)
		return nil
	}
}

// skip logs a rule that cannot be evaluated because of its configuration.
func (e *Engine) skip(rule domain.AlertRule, reason string, fields ...zap.Field) {
	fields = append([]zap.Field{
		zap.String("ruleID", rule.ID),
		zap.String("userID", rule.UserID),
		zap.String("alertType", string(rule.Type())),
		zap.String("reason", reason),
	}, fields...)
	e.log.Warn("rule skipped", fields...)
}

// lookup normalizes a repository read: found reports whether the document
// exists, and err carries any other failure.
func lookup(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
