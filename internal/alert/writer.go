package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// Writer builds and persists notifications on behalf of a rule.
type Writer struct {
	store NotificationStore
	now   func() time.Time
}

// NewWriter creates a Writer that stamps notifications with the current UTC time.
func NewWriter(store NotificationStore) *Writer {
	return &Writer{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// Write inserts a new notification for rule with every channel pending.
// Insert errors are returned to the rule evaluation.
func (w *Writer) Write(ctx context.Context, rule domain.AlertRule, title, body string) error {
	n := &domain.Notification{
		ID:          uuid.NewString(),
		UserID:      rule.UserID,
		AlertRuleID: rule.ID,
		Content:     domain.Content{Title: title, Body: body},
		Status: domain.Status{
			Delivery: domain.DeliveryPending,
			Email:    domain.StatusPending,
			Push:     domain.StatusPending,
			InApp:    domain.StatusPending,
		},
		CreatedAt: w.now(),
	}
	if err := w.store.InsertNotification(ctx, n); err != nil {
		return fmt.Errorf("insert notification for rule %s: %w", rule.ID, err)
	}
	return nil
}
