package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// Repo defines storage operations over the budgeting collections.
// Lookups of missing documents return domain.ErrNotFound.
type Repo interface {
	// Alert engine reads.
	EnabledRules(ctx context.Context) ([]domain.AlertRule, error)
	Budget(ctx context.Context, id string) (domain.Budget, error)
	SumTransactions(ctx context.Context, userID, category string, from, to time.Time) (decimal.Decimal, error)
	RecurringTransaction(ctx context.Context, id string) (domain.RecurringTransaction, error)
	Goal(ctx context.Context, id string) (domain.FinancialGoal, error)

	// Goal evaluation state.
	SetGoalMilestone(ctx context.Context, goalID string, milestone int) error
	SetGoalDeadlineNotified(ctx context.Context, goalID string) error

	// Notifications and delivery.
	InsertNotification(ctx context.Context, n *domain.Notification) error
	Notification(ctx context.Context, id string) (domain.Notification, error)
	ListNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	UpdateNotificationStatus(ctx context.Context, id string, upd domain.StatusUpdate) error
	Preference(ctx context.Context, userID string) (domain.NotificationPreference, error)
	OnNotificationCreated(hook CreateHook)

	// Client-side writes, used by the seed loader.
	UpsertRule(ctx context.Context, r domain.AlertRule) error
	UpsertBudget(ctx context.Context, b domain.Budget) error
	InsertTransaction(ctx context.Context, t domain.Transaction) error
	UpsertRecurringTransaction(ctx context.Context, rt domain.RecurringTransaction) error
	UpsertGoal(ctx context.Context, g domain.FinancialGoal) error
	UpsertPreference(ctx context.Context, p domain.NotificationPreference) error

	Close() error
}

// CreateHook observes committed notification inserts. It is the store-level
// create trigger that starts delivery.
type CreateHook func(n domain.Notification)
