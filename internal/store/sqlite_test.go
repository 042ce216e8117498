package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

func openTestRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	repo, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "data", "budget.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestOpenSQLite_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "budget.db")

	first, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.UpsertBudget(ctx, domain.Budget{ID: "b1", UserID: "u1", Category: "Food", Amount: decimal.NewFromInt(10), Month: 1, Year: 2025}))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	b, err := second.Budget(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Food", b.Category)
}

func TestSQLiteRepo_Rules(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	rules := []domain.AlertRule{
		{ID: "r1", UserID: "u1", Enabled: true, CreatedAt: base, Condition: domain.BudgetThreshold{BudgetID: "b1", Threshold: 80}},
		{ID: "r2", UserID: "u1", Enabled: true, CreatedAt: base.Add(time.Minute), Condition: domain.BillDue{RecurringTransactionID: "bill1", Timing: domain.TimingOneDayBefore}},
		{ID: "r3", UserID: "u1", Enabled: false, CreatedAt: base.Add(2 * time.Minute), Condition: domain.GoalProgress{GoalID: "g1"}},
		{ID: "r4", UserID: "u2", Enabled: true, CreatedAt: base.Add(3 * time.Minute), Condition: domain.UnknownCondition{Raw: "LEGACY"}},
		{ID: "r5", UserID: "u2", Enabled: true, CreatedAt: base.Add(4 * time.Minute), Condition: domain.BudgetThreshold{BudgetID: "b9"}},
	}
	for _, r := range rules {
		require.NoError(t, repo.UpsertRule(ctx, r))
	}
	assert.Error(t, repo.UpsertRule(ctx, domain.AlertRule{ID: "bad"}))

	got, err := repo.EnabledRules(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, rules[0], got[0])
	assert.Equal(t, rules[1], got[1])
	assert.Equal(t, domain.UnknownCondition{Raw: "LEGACY"}, got[2].Condition)
	assert.Equal(t, domain.BudgetThreshold{BudgetID: "b9"}, got[3].Condition)

	// disabling removes it from the next run
	rules[0].Enabled = false
	require.NoError(t, repo.UpsertRule(ctx, rules[0]))
	got, err = repo.EnabledRules(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSQLiteRepo_SumTransactionsWindow(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	b := domain.Budget{ID: "b1", UserID: "u1", Category: "Food", Amount: decimal.NewFromInt(200), Month: 3, Year: 2025}
	require.NoError(t, repo.UpsertBudget(ctx, b))
	from, to := b.Window()

	txs := []domain.Transaction{
		{ID: "t1", UserID: "u1", Category: "Food", Amount: decimal.RequireFromString("10.10"), CreatedAt: from},
		{ID: "t2", UserID: "u1", Category: "Food", Amount: decimal.RequireFromString("20.20"), CreatedAt: to},
		{ID: "t3", UserID: "u1", Category: "Food", Amount: decimal.RequireFromString("0.70"), CreatedAt: from.Add(10 * 24 * time.Hour)},
		{ID: "t4", UserID: "u1", Category: "Food", Amount: decimal.NewFromInt(999), CreatedAt: to.Add(time.Second)},
		{ID: "t5", UserID: "u1", Category: "Food", Amount: decimal.NewFromInt(999), CreatedAt: from.Add(-time.Second)},
		{ID: "t6", UserID: "u1", Category: "Rent", Amount: decimal.NewFromInt(999), CreatedAt: from.Add(time.Hour)},
		{ID: "t7", UserID: "u2", Category: "Food", Amount: decimal.NewFromInt(999), CreatedAt: from.Add(time.Hour)},
	}
	for _, tx := range txs {
		tx.Type = domain.TransactionExpense
		require.NoError(t, repo.InsertTransaction(ctx, tx))
	}

	sum, err := repo.SumTransactions(ctx, "u1", "Food", from, to)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("31.00")), "got %s", sum)

	empty, err := repo.SumTransactions(ctx, "nobody", "Food", from, to)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestSQLiteRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	_, err := repo.Budget(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.RecurringTransaction(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Goal(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Preference(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Notification(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.SetGoalMilestone(ctx, "missing", 25), domain.ErrNotFound)
	assert.ErrorIs(t, repo.SetGoalDeadlineNotified(ctx, "missing"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateNotificationStatus(ctx, "missing", domain.StatusUpdate{Delivery: domain.DeliveryProcessed}), domain.ErrNotFound)
}

func TestSQLiteRepo_RecurringTransaction(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	due := time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC)
	rt := domain.RecurringTransaction{
		ID: "bill1", UserID: "u1", Description: "Internet", Amount: decimal.RequireFromString("49.99"),
		Frequency: "monthly", Type: domain.TransactionExpense, NextDueDate: &due,
	}
	require.NoError(t, repo.UpsertRecurringTransaction(ctx, rt))

	got, err := repo.RecurringTransaction(ctx, "bill1")
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(rt.Amount))
	require.NotNil(t, got.NextDueDate)
	assert.True(t, got.NextDueDate.Equal(due))
	assert.Equal(t, domain.TransactionExpense, got.Type)

	rt.NextDueDate = nil
	require.NoError(t, repo.UpsertRecurringTransaction(ctx, rt))
	got, err = repo.RecurringTransaction(ctx, "bill1")
	require.NoError(t, err)
	assert.Nil(t, got.NextDueDate)
}

func TestSQLiteRepo_GoalState(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	target := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	g := domain.FinancialGoal{
		ID: "g1", UserID: "u1", Title: "Trip",
		TargetAmount: decimal.NewFromInt(3000), CurrentAmount: decimal.NewFromInt(900), TargetDate: &target,
	}
	require.NoError(t, repo.UpsertGoal(ctx, g))
	require.NoError(t, repo.SetGoalMilestone(ctx, "g1", 25))
	require.NoError(t, repo.SetGoalDeadlineNotified(ctx, "g1"))

	// a client edit of the goal keeps the evaluation state
	g.CurrentAmount = decimal.NewFromInt(1600)
	require.NoError(t, repo.UpsertGoal(ctx, g))

	got, err := repo.Goal(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 25, got.LastNotifiedMilestone)
	assert.True(t, got.DeadlineNotified)
	assert.True(t, got.CurrentAmount.Equal(decimal.NewFromInt(1600)))
	require.NotNil(t, got.TargetDate)
	assert.True(t, got.TargetDate.Equal(target))
}

func TestSQLiteRepo_NotificationLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	var fired []domain.Notification
	repo.OnNotificationCreated(func(n domain.Notification) { fired = append(fired, n) })

	n := &domain.Notification{
		ID: "n1", UserID: "u1", AlertRuleID: "r1",
		Content: domain.Content{Title: "Budget Alert", Body: "You've spent 80%"},
		Status: domain.Status{
			Delivery: domain.DeliveryPending, Email: domain.StatusPending,
			Push: domain.StatusPending, InApp: domain.StatusPending,
		},
		CreatedAt: time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.InsertNotification(ctx, n))
	require.Len(t, fired, 1)
	assert.Equal(t, *n, fired[0])

	// duplicate ids are rejected and do not trigger delivery again
	assert.Error(t, repo.InsertNotification(ctx, n))
	assert.Len(t, fired, 1)

	var upd domain.StatusUpdate
	upd.Delivery = domain.DeliveryProcessed
	upd.Set(domain.ChannelEmail, domain.StatusFailed)
	upd.Set(domain.ChannelInApp, domain.StatusDelivered)
	require.NoError(t, repo.UpdateNotificationStatus(ctx, "n1", upd))
	require.NoError(t, repo.UpdateNotificationStatus(ctx, "n1", domain.StatusUpdate{}))

	got, err := repo.Notification(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, domain.Status{
		Delivery: domain.DeliveryProcessed,
		Email:    domain.StatusFailed,
		Push:     domain.StatusPending,
		InApp:    domain.StatusDelivered,
	}, got.Status)
	assert.Equal(t, n.Content, got.Content)
	assert.True(t, got.CreatedAt.Equal(n.CreatedAt))

	list, err := repo.ListNotifications(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSQLiteRepo_Preference(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	p := domain.NotificationPreference{
		UserID:       "u1",
		Email:        domain.EmailPreference{Enabled: true, Address: "ana@example.com"},
		Push:         domain.PushPreference{Enabled: true, ChatID: "12345"},
		InApp:        domain.InAppPreference{Enabled: true},
		DoNotDisturb: domain.DoNotDisturb{Enabled: true, StartTime: "22:00", EndTime: "7:05"},
	}
	require.NoError(t, repo.UpsertPreference(ctx, p))

	got, err := repo.Preference(ctx, "u1")
	require.NoError(t, err)
	p.DoNotDisturb.EndTime = "07:05"
	assert.Equal(t, p, got)

	p.DoNotDisturb.StartTime = "late"
	assert.ErrorIs(t, repo.UpsertPreference(ctx, p), domain.ErrInvalidClock)
}

func TestLoadSeed(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	const doc = `{
	  "budgets": [{"id": "b1", "userId": "u1", "category": "Food", "budgetAmount": "200", "month": 6, "year": 2025}],
	  "transactions": [{"id": "t1", "userId": "u1", "description": "Market", "amount": 160, "category": "Food", "type": "expense", "createdAt": "2025-06-03T10:00:00Z"}],
	  "recurringTransactions": [{"id": "bill1", "userId": "u1", "description": "Rent", "amount": "1250.00", "frequency": "monthly", "type": "expense", "nextDueDate": "2025-07-01T00:00:00Z"}],
	  "financialGoals": [{"id": "g1", "userId": "u1", "title": "Trip", "targetAmount": 1000, "currentAmount": 600, "lastNotifiedMilestone": 25}],
	  "userNotificationPreferences": [{"userId": "u1", "email": {"enabled": true, "address": "ana@example.com"}, "push": {"enabled": false}, "inApp": {"enabled": true}, "doNotDisturb": {"isEnabled": false}}],
	  "alertRules": [
	    {"id": "r1", "userId": "u1", "alertType": "BUDGET_THRESHOLD", "isEnabled": true, "budgetId": "b1", "threshold": 80},
	    {"id": "r2", "userId": "u1", "alertType": "GOAL_PROGRESS", "isEnabled": true, "goalId": "g1"}
	  ]
	}`
	require.NoError(t, LoadSeed(ctx, repo, strings.NewReader(doc)))

	rules, err := repo.EnabledRules(ctx)
	require.NoError(t, err)
	assert.Len(t, rules, 2)

	from, to := domain.Budget{Month: 6, Year: 2025}.Window()
	sum, err := repo.SumTransactions(ctx, "u1", "Food", from, to)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(160)))

	g, err := repo.Goal(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 25, g.LastNotifiedMilestone)

	assert.Error(t, LoadSeed(ctx, repo, strings.NewReader(`{"unknownCollection": []}`)))
}

func TestSQLiteRepo_ListNotificationsSameSecond(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	sec := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"c7", "a1", "b4"} {
		require.NoError(t, repo.InsertNotification(ctx, &domain.Notification{
			ID: id, UserID: "u1", AlertRuleID: "r1",
			CreatedAt: sec.Add(time.Duration(i) * time.Millisecond),
		}))
	}
	require.NoError(t, repo.InsertNotification(ctx, &domain.Notification{
		ID: "old", UserID: "u1", AlertRuleID: "r1", CreatedAt: sec.Add(-time.Minute),
	}))

	list, err := repo.ListNotifications(ctx, "u1", 10)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, n := range list {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"b4", "a1", "c7", "old"}, ids)
}
