package alert

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// Repository is the read side the engine and rule evaluators need, plus the
// two goal fields the goal evaluator owns. Lookups of missing documents
// return domain.ErrNotFound.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go -package=mock_alert
type Repository interface {
	EnabledRules(ctx context.Context) ([]domain.AlertRule, error)
	Budget(ctx context.Context, id string) (domain.Budget, error)
	SumTransactions(ctx context.Context, userID, category string, from, to time.Time) (decimal.Decimal, error)
	RecurringTransaction(ctx context.Context, id string) (domain.RecurringTransaction, error)
	Goal(ctx context.Context, id string) (domain.FinancialGoal, error)
	SetGoalMilestone(ctx context.Context, goalID string, milestone int) error
	SetGoalDeadlineNotified(ctx context.Context, goalID string) error
}

// NotificationStore persists new notifications.
type NotificationStore interface {
	InsertNotification(ctx context.Context, n *domain.Notification) error
}
