package delivery

import (
	"context"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// Store is what the router reads and writes. A user without preferences
// yields domain.ErrNotFound.
//
//go:generate mockgen -destination=mocks/mock_delivery.go -source=interface.go -package=mock_delivery
type Store interface {
	Preference(ctx context.Context, userID string) (domain.NotificationPreference, error)
	UpdateNotificationStatus(ctx context.Context, id string, upd domain.StatusUpdate) error
}

// Sender delivers a notification over one external channel. address is the
// channel-specific destination taken from the user's preferences. A returned
// error is treated as a rejected attempt and recorded as failed.
type Sender interface {
	Channel() domain.Channel
	Send(ctx context.Context, n domain.Notification, address string) (domain.ChannelStatus, error)
}
