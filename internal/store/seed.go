package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// Seed is a JSON document holding the client-owned collections under their
// persisted names.
type Seed struct {
	AlertRules            []seedRule                      `json:"alertRules"`
	Budgets               []seedBudget                    `json:"budgets"`
	Transactions          []seedTransaction               `json:"transactions"`
	RecurringTransactions []seedRecurring                 `json:"recurringTransactions"`
	FinancialGoals        []seedGoal                      `json:"financialGoals"`
	Preferences           []domain.NotificationPreference `json:"userNotificationPreferences"`
}

type seedRule struct {
	ID                     string    `json:"id"`
	UserID                 string    `json:"userId"`
	AlertType              string    `json:"alertType"`
	IsEnabled              bool      `json:"isEnabled"`
	BudgetID               string    `json:"budgetId,omitempty"`
	Threshold              float64   `json:"threshold,omitempty"`
	RecurringTransactionID string    `json:"recurringTransactionId,omitempty"`
	Timing                 string    `json:"timing,omitempty"`
	GoalID                 string    `json:"goalId,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
}

type seedBudget struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Category     string          `json:"category"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
}

type seedTransaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type seedRecurring struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   string          `json:"frequency"`
	Type        string          `json:"type"`
	NextDueDate *time.Time      `json:"nextDueDate,omitempty"`
}

type seedGoal struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"userId"`
	Title                 string          `json:"title"`
	TargetAmount          decimal.Decimal `json:"targetAmount"`
	CurrentAmount         decimal.Decimal `json:"currentAmount"`
	TargetDate            *time.Time      `json:"targetDate,omitempty"`
	LastNotifiedMilestone int             `json:"lastNotifiedMilestone"`
	DeadlineNotified      bool            `json:"deadlineNotified"`
}

// LoadSeed decodes a Seed from r and upserts every document into repo.
func LoadSeed(ctx context.Context, repo Repo, r io.Reader) error {
	var s Seed
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}

	for _, b := range s.Budgets {
		err := repo.UpsertBudget(ctx, domain.Budget{
			ID: b.ID, UserID: b.UserID, Category: b.Category,
			Amount: b.BudgetAmount, Month: b.Month, Year: b.Year,
		})
		if err != nil {
			return fmt.Errorf("seed budget %s: %w", b.ID, err)
		}
	}
	for _, t := range s.Transactions {
		err := repo.InsertTransaction(ctx, domain.Transaction{
			ID: t.ID, UserID: t.UserID, Description: t.Description, Amount: t.Amount,
			Category: t.Category, Type: domain.TransactionType(t.Type), CreatedAt: t.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("seed transaction %s: %w", t.ID, err)
		}
	}
	for _, rt := range s.RecurringTransactions {
		err := repo.UpsertRecurringTransaction(ctx, domain.RecurringTransaction{
			ID: rt.ID, UserID: rt.UserID, Description: rt.Description, Amount: rt.Amount,
			Frequency: rt.Frequency, Type: domain.TransactionType(rt.Type), NextDueDate: rt.NextDueDate,
		})
		if err != nil {
			return fmt.Errorf("seed recurring transaction %s: %w", rt.ID, err)
		}
	}
	for _, g := range s.FinancialGoals {
		err := repo.UpsertGoal(ctx, domain.FinancialGoal{
			ID: g.ID, UserID: g.UserID, Title: g.Title,
			TargetAmount: g.TargetAmount, CurrentAmount: g.CurrentAmount, TargetDate: g.TargetDate,
			LastNotifiedMilestone: g.LastNotifiedMilestone, DeadlineNotified: g.DeadlineNotified,
		})
		if err != nil {
			return fmt.Errorf("seed goal %s: %w", g.ID, err)
		}
	}
	for _, p := range s.Preferences {
		if err := repo.UpsertPreference(ctx, p); err != nil {
			return fmt.Errorf("seed preference %s: %w", p.UserID, err)
		}
	}
	for _, rule := range s.AlertRules {
		cond := domain.NewCondition(rule.AlertType, rule.BudgetID, rule.Threshold,
			rule.RecurringTransactionID, rule.Timing, rule.GoalID)
		err := repo.UpsertRule(ctx, domain.AlertRule{
			ID:        rule.ID,
			UserID:    rule.UserID,
			Enabled:   rule.IsEnabled,
			Condition: cond,
			CreatedAt: rule.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("seed rule %s: %w", rule.ID, err)
		}
	}
	return nil
}
