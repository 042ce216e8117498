package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// UpsertRule inserts or replaces an alert rule. Only the columns of the
// rule's condition variant are populated.
func (r *SQLiteRepo) UpsertRule(ctx context.Context, rule domain.AlertRule) error {
	if rule.Condition == nil {
		return errors.New("alert rule without condition")
	}

	var (
		budgetID, billID, timing, goalID string
		threshold                        float64
	)
	switch c := rule.Condition.(type) {
	case domain.BudgetThreshold:
		budgetID, threshold = c.BudgetID, c.Threshold
	case domain.BillDue:
		billID, timing = c.RecurringTransactionID, string(c.Timing)
	case domain.GoalProgress:
		goalID = c.GoalID
	}

	created := rule.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO alert_rules (
			id, user_id, alert_type, is_enabled, budget_id, threshold,
			recurring_transaction_id, timing, goal_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id                  = excluded.user_id,
			alert_type               = excluded.alert_type,
			is_enabled               = excluded.is_enabled,
			budget_id                = excluded.budget_id,
			threshold                = excluded.threshold,
			recurring_transaction_id = excluded.recurring_transaction_id,
			timing                   = excluded.timing,
			goal_id                  = excluded.goal_id`,
		rule.ID, rule.UserID, string(rule.Type()), boolToInt(rule.Enabled),
		toNullString(budgetID), toNullFloat64(threshold),
		toNullString(billID), toNullString(timing), toNullString(goalID),
		created.UTC().Unix(),
	)
	return err
}

// EnabledRules returns every rule with is_enabled set, oldest first.
func (r *SQLiteRepo) EnabledRules(ctx context.Context) ([]domain.AlertRule, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, alert_type, is_enabled, budget_id, threshold,
		       recurring_transaction_id, timing, goal_id, created_at
		FROM alert_rules
		WHERE is_enabled = 1
		ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.AlertRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func scanRule(s scanner) (domain.AlertRule, error) {
	var (
		id, userID, alertType            string
		enabledInt                       int
		budgetID, billID, timing, goalID sql.NullString
		threshold                        sql.NullFloat64
		createdAt                        int64
	)
	if err := s.Scan(
		&id, &userID, &alertType, &enabledInt, &budgetID, &threshold,
		&billID, &timing, &goalID, &createdAt,
	); err != nil {
		return domain.AlertRule{}, err
	}

	cond := domain.NewCondition(alertType,
		budgetID.String, threshold.Float64, billID.String, timing.String, goalID.String)
	return domain.AlertRule{
		ID:        id,
		UserID:    userID,
		Enabled:   enabledInt != 0,
		Condition: cond,
		CreatedAt: time.Unix(createdAt, 0).UTC(),
	}, nil
}
