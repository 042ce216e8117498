package store

import (
	"context"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// UpsertPreference validates and stores a user's notification preference.
// Do-not-disturb times are normalized to HH:MM.
func (r *SQLiteRepo) UpsertPreference(ctx context.Context, p domain.NotificationPreference) error {
	if err := p.Validate(); err != nil {
		return err
	}
	start := normalizeClock(p.DoNotDisturb.StartTime)
	end := normalizeClock(p.DoNotDisturb.EndTime)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_notification_preferences (
			user_id, email_enabled, email_address, push_enabled, push_chat_id,
			in_app_enabled, dnd_enabled, dnd_start, dnd_end
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			email_enabled  = excluded.email_enabled,
			email_address  = excluded.email_address,
			push_enabled   = excluded.push_enabled,
			push_chat_id   = excluded.push_chat_id,
			in_app_enabled = excluded.in_app_enabled,
			dnd_enabled    = excluded.dnd_enabled,
			dnd_start      = excluded.dnd_start,
			dnd_end        = excluded.dnd_end`,
		p.UserID, boolToInt(p.Email.Enabled), p.Email.Address,
		boolToInt(p.Push.Enabled), p.Push.ChatID, boolToInt(p.InApp.Enabled),
		boolToInt(p.DoNotDisturb.Enabled), start, end,
	)
	return err
}

// Preference returns the notification preference of a user.
func (r *SQLiteRepo) Preference(ctx context.Context, userID string) (domain.NotificationPreference, error) {
	var (
		p                                   domain.NotificationPreference
		emailInt, pushInt, inAppInt, dndInt int
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, email_enabled, email_address, push_enabled, push_chat_id,
		       in_app_enabled, dnd_enabled, dnd_start, dnd_end
		FROM user_notification_preferences
		WHERE user_id = ?`,
		userID,
	).Scan(&p.UserID, &emailInt, &p.Email.Address, &pushInt, &p.Push.ChatID,
		&inAppInt, &dndInt, &p.DoNotDisturb.StartTime, &p.DoNotDisturb.EndTime)
	if err != nil {
		return domain.NotificationPreference{}, notFound(err, "preference", userID)
	}
	p.Email.Enabled = emailInt != 0
	p.Push.Enabled = pushInt != 0
	p.InApp.Enabled = inAppInt != 0
	p.DoNotDisturb.Enabled = dndInt != 0
	return p, nil
}

// normalizeClock rewrites a valid "H:M" value as "HH:MM"; empty stays empty.
func normalizeClock(s string) string {
	m, err := domain.ParseClock(s)
	if err != nil {
		return s
	}
	return domain.FormatClock(m)
}
