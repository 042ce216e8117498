package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType separates income from expenses.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Budget is a monthly spending limit for one category.
type Budget struct {
	ID       string
	UserID   string
	Category string
	Amount   decimal.Decimal
	Month    int // 1..12
	Year     int
}

// Window returns the budget month as [first day 00:00:00, last day 23:59:59] in UTC.
func (b Budget) Window() (from, to time.Time) {
	from = time.Date(b.Year, time.Month(b.Month), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, 0).Add(-time.Second)
	return from, to
}

// Transaction is a single income or expense record.
type Transaction struct {
	ID          string
	UserID      string
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        TransactionType
	CreatedAt   time.Time
}

// RecurringTransaction is a bill or a repeating income. NextDueDate is
// advanced by the transaction generator, never by the alert engine.
type RecurringTransaction struct {
	ID          string
	UserID      string
	Description string
	Amount      decimal.Decimal
	Frequency   string
	Type        TransactionType
	NextDueDate *time.Time
}

// FinancialGoal is a savings target.
//
// LastNotifiedMilestone and DeadlineNotified are owned by the goal
// evaluator and only exist to keep its notifications idempotent.
type FinancialGoal struct {
	ID                    string
	UserID                string
	Title                 string
	TargetAmount          decimal.Decimal
	CurrentAmount         decimal.Decimal
	TargetDate            *time.Time
	LastNotifiedMilestone int
	DeadlineNotified      bool
}

// Progress returns CurrentAmount as a percentage of TargetAmount.
// ok is false when the target is not positive.
func (g FinancialGoal) Progress() (pct decimal.Decimal, ok bool) {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero, false
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)), true
}

// DaysUntil returns the real-valued number of days from now to t.
func DaysUntil(now, t time.Time) float64 {
	return t.Sub(now).Hours() / 24
}
