package alert

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// milestones are checked in ascending order.
var milestones = []int{25, 50, 75, 100}

// deadlineWindowDays is how close a goal's target date must be to warn.
const deadlineWindowDays = 7

// evaluateGoal runs the milestone and deadline checks. Both may fire in
// the same run; each persists its own suppression field after notifying.
func (e *Engine) evaluateGoal(ctx context.Context, rule domain.AlertRule, c domain.GoalProgress) error {
	if c.GoalID == "" {
		e.skip(rule, "missing goal id")
		return nil
	}

	goal, err := e.repo.Goal(ctx, c.GoalID)
	found, err := lookup(err)
	if err != nil {
		return fmt.Errorf("get goal %s: %w", c.GoalID, err)
	}
	if !found {
		e.skip(rule, "goal not found", zap.String("goalID", c.GoalID))
		return nil
	}
	if goal.UserID != rule.UserID {
		e.skip(rule, "goal belongs to another user", zap.String("goalID", goal.ID))
		return nil
	}

	progress, ok := goal.Progress()
	if ok {
		if err := e.checkMilestone(ctx, rule, goal, progress); err != nil {
			return err
		}
	} else {
		e.log.Debug("goal target is not positive", zap.String("goalID", goal.ID))
	}

	return e.checkDeadline(ctx, rule, goal, progress)
}

// checkMilestone notifies the lowest milestone that is reached and not yet
// notified, then records it on the goal.
func (e *Engine) checkMilestone(ctx context.Context, rule domain.AlertRule, goal domain.FinancialGoal, progress decimal.Decimal) error {
	for _, m := range milestones {
		if progress.LessThan(decimal.NewFromInt(int64(m))) || goal.LastNotifiedMilestone >= m {
			continue
		}

		title := fmt.Sprintf("Goal Milestone: %d%%", m)
		body := fmt.Sprintf("You're %d%% of the way to %q ($%s of $%s).",
			m, goal.Title, goal.CurrentAmount.StringFixed(2), goal.TargetAmount.StringFixed(2))
		if m == 100 {
			title = "Goal Reached!"
			body = fmt.Sprintf("Congratulations! You reached your goal %q of $%s.", goal.Title, goal.TargetAmount.StringFixed(2))
		}

		if err := e.writer.Write(ctx, rule, title, body); err != nil {
			return err
		}
		if err := e.repo.SetGoalMilestone(ctx, goal.ID, m); err != nil {
			return fmt.Errorf("set milestone %d on goal %s: %w", m, goal.ID, err)
		}
		e.log.Info("goal milestone notified", zap.String("goalID", goal.ID), zap.Int("milestone", m))
		return nil
	}
	return nil
}

// checkDeadline warns once when the goal's target date is within a week.
func (e *Engine) checkDeadline(ctx context.Context, rule domain.AlertRule, goal domain.FinancialGoal, progress decimal.Decimal) error {
	if goal.TargetDate == nil || goal.DeadlineNotified {
		return nil
	}
	days := domain.DaysUntil(e.now(), *goal.TargetDate)
	if days <= 0 || days > deadlineWindowDays {
		return nil
	}

	left := int(math.Ceil(days))
	body := fmt.Sprintf("Your goal %q is due in %d day(s). Current progress: %s%%.",
		goal.Title, left, progress.StringFixed(0))
	if err := e.writer.Write(ctx, rule, "Goal Deadline Approaching", body); err != nil {
		return err
	}
	if err := e.repo.SetGoalDeadlineNotified(ctx, goal.ID); err != nil {
		return fmt.Errorf("set deadline notified on goal %s: %w", goal.ID, err)
	}
	return nil
}
