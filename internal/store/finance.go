package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// UpsertBudget inserts or replaces a monthly budget.
func (r *SQLiteRepo) UpsertBudget(ctx context.Context, b domain.Budget) error {
	if b.Month < 1 || b.Month > 12 {
		return fmt.Errorf("budget %s: month %d out of range", b.ID, b.Month)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO budgets (id, user_id, category, budget_amount, month, year)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id       = excluded.user_id,
			category      = excluded.category,
			budget_amount = excluded.budget_amount,
			month         = excluded.month,
			year          = excluded.year`,
		b.ID, b.UserID, b.Category, b.Amount, b.Month, b.Year,
	)
	return err
}

// Budget returns a budget by id.
func (r *SQLiteRepo) Budget(ctx context.Context, id string) (domain.Budget, error) {
	var b domain.Budget
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, category, budget_amount, month, year
		FROM budgets
		WHERE id = ?`,
		id,
	).Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Month, &b.Year)
	if err != nil {
		return domain.Budget{}, notFound(err, "budget", id)
	}
	return b, nil
}

// InsertTransaction records a single income or expense.
func (r *SQLiteRepo) InsertTransaction(ctx context.Context, t domain.Transaction) error {
	created := t.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, user_id, description, amount, category, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Description, t.Amount, t.Category, string(t.Type), created.UTC().Unix(),
	)
	return err
}

// SumTransactions adds up the amounts of a user's transactions in category
// created within [from, to]. Amounts are summed as decimals, not floats.
func (r *SQLiteRepo) SumTransactions(ctx context.Context, userID, category string, from, to time.Time) (decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT amount
		FROM transactions
		WHERE user_id = ?
		  AND category = ?
		  AND created_at >= ?
		  AND created_at <= ?`,
		userID, category, from.UTC().Unix(), to.UTC().Unix(),
	)
	if err != nil {
		return decimal.Zero, err
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, err
		}
		total = total.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// UpsertRecurringTransaction inserts or replaces a recurring transaction.
func (r *SQLiteRepo) UpsertRecurringTransaction(ctx context.Context, rt domain.RecurringTransaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recurring_transactions (id, user_id, description, amount, frequency, type, next_due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id       = excluded.user_id,
			description   = excluded.description,
			amount        = excluded.amount,
			frequency     = excluded.frequency,
			type          = excluded.type,
			next_due_date = excluded.next_due_date`,
		rt.ID, rt.UserID, rt.Description, rt.Amount, rt.Frequency, string(rt.Type), toNullInt64(rt.NextDueDate),
	)
	return err
}

// RecurringTransaction returns a recurring transaction by id.
func (r *SQLiteRepo) RecurringTransaction(ctx context.Context, id string) (domain.RecurringTransaction, error) {
	var (
		rt      domain.RecurringTransaction
		txType  string
		nextDue sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, description, amount, frequency, type, next_due_date
		FROM recurring_transactions
		WHERE id = ?`,
		id,
	).Scan(&rt.ID, &rt.UserID, &rt.Description, &rt.Amount, &rt.Frequency, &txType, &nextDue)
	if err != nil {
		return domain.RecurringTransaction{}, notFound(err, "recurring transaction", id)
	}
	rt.Type = domain.TransactionType(txType)
	rt.NextDueDate = fromNullInt64(nextDue)
	return rt, nil
}

// UpsertGoal inserts or replaces a goal. The evaluation state columns are
// only written on insert; updates leave them to the goal evaluator.
func (r *SQLiteRepo) UpsertGoal(ctx context.Context, g domain.FinancialGoal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO financial_goals (
			id, user_id, title, target_amount, current_amount, target_date,
			last_notified_milestone, deadline_notified
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id        = excluded.user_id,
			title          = excluded.title,
			target_amount  = excluded.target_amount,
			current_amount = excluded.current_amount,
			target_date    = excluded.target_date`,
		g.ID, g.UserID, g.Title, g.TargetAmount, g.CurrentAmount, toNullInt64(g.TargetDate),
		g.LastNotifiedMilestone, boolToInt(g.DeadlineNotified),
	)
	return err
}

// Goal returns a financial goal by id.
func (r *SQLiteRepo) Goal(ctx context.Context, id string) (domain.FinancialGoal, error) {
	var (
		g           domain.FinancialGoal
		targetDate  sql.NullInt64
		deadlineInt int
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, target_amount, current_amount, target_date,
		       last_notified_milestone, deadline_notified
		FROM financial_goals
		WHERE id = ?`,
		id,
	).Scan(&g.ID, &g.UserID, &g.Title, &g.TargetAmount, &g.CurrentAmount, &targetDate,
		&g.LastNotifiedMilestone, &deadlineInt)
	if err != nil {
		return domain.FinancialGoal{}, notFound(err, "goal", id)
	}
	g.TargetDate = fromNullInt64(targetDate)
	g.DeadlineNotified = deadlineInt != 0
	return g, nil
}

// SetGoalMilestone records the highest milestone notified for a goal.
func (r *SQLiteRepo) SetGoalMilestone(ctx context.Context, goalID string, milestone int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE financial_goals
		SET last_notified_milestone = ?
		WHERE id = ?`,
		milestone, goalID,
	)
	if err != nil {
		return err
	}
	return requireRow(res, "goal", goalID)
}

// SetGoalDeadlineNotified marks the goal's deadline warning as sent.
func (r *SQLiteRepo) SetGoalDeadlineNotified(ctx context.Context, goalID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE financial_goals
		SET deadline_notified = 1
		WHERE id = ?`,
		goalID,
	)
	if err != nil {
		return err
	}
	return requireRow(res, "goal", goalID)
}
