package alert

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// evaluateBill fires when the bill's due date falls inside the 24-hour
// window that starts the configured number of days before it.
func (e *Engine) evaluateBill(ctx context.Context, rule domain.AlertRule, c domain.BillDue) error {
	if c.RecurringTransactionID == "" || c.Timing == "" {
		e.skip(rule, "missing recurring transaction id or timing")
		return nil
	}
	alertDays, ok := c.Timing.Days()
	if !ok {
		e.skip(rule, "unknown timing", zap.String("timing", string(c.Timing)))
		return nil
	}

	bill, err := e.repo.RecurringTransaction(ctx, c.RecurringTransactionID)
	found, err := lookup(err)
	if err != nil {
		return fmt.Errorf("get recurring transaction %s: %w", c.RecurringTransactionID, err)
	}
	if !found || bill.NextDueDate == nil {
		e.skip(rule, "bill not found or has no due date", zap.String("billID", c.RecurringTransactionID))
		return nil
	}
	if bill.UserID != rule.UserID {
		e.skip(rule, "bill belongs to another user", zap.String("billID", bill.ID))
		return nil
	}

	days := domain.DaysUntil(e.now(), *bill.NextDueDate)
	if days < float64(alertDays) || days >= float64(alertDays+1) {
		return nil
	}

	body := fmt.Sprintf("%s ($%s) is due %s.", bill.Description, bill.Amount.StringFixed(2), dueIn(alertDays))
	return e.writer.Write(ctx, rule, "Upcoming Bill Reminder", body)
}

func dueIn(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "in 1 day"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
