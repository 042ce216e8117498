package alert

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// evaluateBudget fires when spending in the budget's month reaches the
// rule's threshold. There is no suppression state: a crossed threshold
// fires on every run while it stays crossed.
func (e *Engine) evaluateBudget(ctx context.Context, rule domain.AlertRule, c domain.BudgetThreshold) error {
	if c.BudgetID == "" || c.Threshold <= 0 {
		e.skip(rule, "missing budget id or threshold")
		return nil
	}

	budget, err := e.repo.Budget(ctx, c.BudgetID)
	found, err := lookup(err)
	if err != nil {
		return fmt.Errorf("get budget %s: %w", c.BudgetID, err)
	}
	if !found {
		e.skip(rule, "budget not found", zap.String("budgetID", c.BudgetID))
		return nil
	}
	if budget.UserID != rule.UserID {
		e.skip(rule, "budget belongs to another user", zap.String("budgetID", c.BudgetID))
		return nil
	}
	if !budget.Amount.IsPositive() {
		e.log.Debug("budget amount is not positive", zap.String("budgetID", budget.ID))
		return nil
	}

	from, to := budget.Window()
	spent, err := e.repo.SumTransactions(ctx, rule.UserID, budget.Category, from, to)
	if err != nil {
		return fmt.Errorf("sum transactions for budget %s: %w", budget.ID, err)
	}

	pct := spent.Div(budget.Amount).Mul(hundred)
	if pct.LessThan(decimal.NewFromFloat(c.Threshold)) {
		return nil
	}

	body := fmt.Sprintf("You've spent %s%% of your %s budget ($%s of $%s).",
		pct.StringFixed(0), budget.Category, spent.StringFixed(2), budget.Amount.StringFixed(2))
	return e.writer.Write(ctx, rule, "Budget Alert", body)
}
