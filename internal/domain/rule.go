package domain

import "time"

// AlertType is the persisted discriminator of an alert rule.
type AlertType string

const (
	AlertBudgetThreshold AlertType = "BUDGET_THRESHOLD"
	AlertBillDue         AlertType = "BILL_DUE"
	AlertGoalProgress    AlertType = "GOAL_PROGRESS"
	AlertUnusualSpending AlertType = "UNUSUAL_SPENDING"
)

// Timing says how long before a bill's due date the reminder fires.
type Timing string

const (
	TimingOnDueDate    Timing = "ON_DUE_DATE"
	TimingOneDayBefore Timing = "1_DAY_BEFORE"
	TimingThreeDays    Timing = "3_DAYS_BEFORE"
	TimingSevenDays    Timing = "7_DAYS_BEFORE"
)

// Days returns the offset in days for t. ok is false for unknown values.
func (t Timing) Days() (days int, ok bool) {
	switch t {
	case TimingOnDueDate:
		return 0, true
	case TimingOneDayBefore:
		return 1, true
	case TimingThreeDays:
		return 3, true
	case TimingSevenDays:
		return 7, true
	}
	return 0, false
}

// Condition is the type-specific part of an alert rule. Exactly one
// implementation is attached to every rule.
type Condition interface {
	Type() AlertType
	isCondition()
}

// BudgetThreshold fires when spending in a budget's month reaches
// Threshold percent of the budget amount. Threshold is 1..100; 0 means unset.
type BudgetThreshold struct {
	BudgetID  string
	Threshold float64
}

// BillDue reminds about a recurring transaction ahead of its due date.
type BillDue struct {
	RecurringTransactionID string
	Timing                 Timing
}

// GoalProgress reports goal milestones and an approaching deadline.
type GoalProgress struct {
	GoalID string
}

// UnusualSpending is evaluated by the transaction event path, not by the
// scheduled engine.
type UnusualSpending struct{}

// UnknownCondition keeps an unrecognized stored alert type so callers can
// log and skip it.
type UnknownCondition struct {
	Raw string
}

func (BudgetThreshold) Type() AlertType { return AlertBudgetThreshold }
func (BillDue) Type() AlertType         { return AlertBillDue }
func (GoalProgress) Type() AlertType    { return AlertGoalProgress }
func (UnusualSpending) Type() AlertType { return AlertUnusualSpending }
func (c UnknownCondition) Type() AlertType {
	return AlertType(c.Raw)
}

func (BudgetThreshold) isCondition()  {}
func (BillDue) isCondition()          {}
func (GoalProgress) isCondition()     {}
func (UnusualSpending) isCondition()  {}
func (UnknownCondition) isCondition() {}

// AlertRule is a user-configured alert. The core only reads rules.
type AlertRule struct {
	ID        string
	UserID    string
	Enabled   bool
	Condition Condition
	CreatedAt time.Time
}

// Type returns the rule's alert type, or "" when no condition is attached.
func (r AlertRule) Type() AlertType {
	if r.Condition == nil {
		return ""
	}
	return r.Condition.Type()
}

// NewCondition builds the condition variant for a stored rule row.
// Fields that do not belong to alertType are ignored.
func NewCondition(alertType, budgetID string, threshold float64, billID, timing, goalID string) Condition {
	switch AlertType(alertType) {
	case AlertBudgetThreshold:
		return BudgetThreshold{BudgetID: budgetID, Threshold: threshold}
	case AlertBillDue:
		return BillDue{RecurringTransactionID: billID, Timing: Timing(timing)}
	case AlertGoalProgress:
		return GoalProgress{GoalID: goalID}
	case AlertUnusualSpending:
		return UnusualSpending{}
	default:
		return UnknownCondition{Raw: alertType}
	}
}
