package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// InsertNotification stores a new notification and then fires the create
// hooks with a copy of it.
func (r *SQLiteRepo) InsertNotification(ctx context.Context, n *domain.Notification) error {
	if n == nil {
		return fmt.Errorf("nil notification")
	}
	if n.ID == "" {
		return fmt.Errorf("notification without id")
	}
	created := n.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (
			id, user_id, alert_rule_id, title, body,
			delivery_status, email_status, push_status, in_app_status,
			seen, dismissed, is_archived, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.UserID, n.AlertRuleID, n.Content.Title, n.Content.Body,
		string(n.Status.Delivery), string(n.Status.Email), string(n.Status.Push), string(n.Status.InApp),
		boolToInt(n.Status.Seen), boolToInt(n.Status.Dismissed), boolToInt(n.IsArchived),
		created.Unix(),
	)
	if err != nil {
		return err
	}

	r.fireCreated(*n)
	return nil
}

// Notification returns a notification by id.
func (r *SQLiteRepo) Notification(ctx context.Context, id string) (domain.Notification, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, alert_rule_id, title, body,
		       delivery_status, email_status, push_status, in_app_status,
		       seen, dismissed, is_archived, created_at
		FROM notifications
		WHERE id = ?`,
		id,
	)
	n, err := scanNotification(row)
	if err != nil {
		return domain.Notification{}, notFound(err, "notification", id)
	}
	return n, nil
}

// ListNotifications returns a user's notifications, newest first. Inserts
// within the same second are ordered by insertion, latest first.
func (r *SQLiteRepo) ListNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, alert_rule_id, title, body,
		       delivery_status, email_status, push_status, in_app_status,
		       seen, dismissed, is_archived, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// UpdateNotificationStatus applies every field of upd in a single UPDATE.
func (r *SQLiteRepo) UpdateNotificationStatus(ctx context.Context, id string, upd domain.StatusUpdate) error {
	var (
		sets []string
		args []any
	)
	if upd.Delivery != "" {
		sets = append(sets, "delivery_status = ?")
		args = append(args, string(upd.Delivery))
	}
	for _, c := range []struct {
		col string
		val *domain.ChannelStatus
	}{
		{"email_status", upd.Email},
		{"push_status", upd.Push},
		{"in_app_status", upd.InApp},
	} {
		if c.val != nil {
			sets = append(sets, c.col+" = ?")
			args = append(args, string(*c.val))
		}
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET "+strings.Join(sets, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return err
	}
	return requireRow(res, "notification", id)
}

func scanNotification(s scanner) (domain.Notification, error) {
	var (
		n                                 domain.Notification
		delivery, email, push, inApp      string
		seenInt, dismissedInt, archiveInt int
		createdAt                         int64
	)
	if err := s.Scan(
		&n.ID, &n.UserID, &n.AlertRuleID, &n.Content.Title, &n.Content.Body,
		&delivery, &email, &push, &inApp,
		&seenInt, &dismissedInt, &archiveInt, &createdAt,
	); err != nil {
		return domain.Notification{}, err
	}

	n.Status = domain.Status{
		Delivery:  domain.DeliveryState(delivery),
		Email:     domain.ChannelStatus(email),
		Push:      domain.ChannelStatus(push),
		InApp:     domain.ChannelStatus(inApp),
		Seen:      seenInt != 0,
		Dismissed: dismissedInt != 0,
	}
	n.IsArchived = archiveInt != 0
	n.CreatedAt = time.Unix(createdAt, 0).UTC()
	return n, nil
}
