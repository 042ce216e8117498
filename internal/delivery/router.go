package delivery

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
	"github.com/Donchitos/Budgetzz-sub000/internal/settle"
)

// Router fans a newly created notification out to the user's channels and
// records the combined outcome with a single status update.
type Router struct {
	store   Store
	log     *zap.Logger
	senders map[domain.Channel]Sender
}

// NewRouter creates a Router. Senders are keyed by their Channel; a later
// sender for the same channel replaces an earlier one.
func NewRouter(store Store, log *zap.Logger, senders ...Sender) *Router {
	m := make(map[domain.Channel]Sender, len(senders))
	for _, s := range senders {
		m[s.Channel()] = s
	}
	return &Router{store: store, log: log, senders: m}
}

type target struct {
	channel domain.Channel
	enabled bool
	address string
}

// OnNotificationCreated delivers n once. In-app delivery is implicit in the
// stored record, so inApp always ends up delivered.
func (r *Router) OnNotificationCreated(ctx context.Context, n domain.Notification) error {
	log := r.log.With(zap.String("notificationID", n.ID), zap.String("userID", n.UserID))

	upd := domain.StatusUpdate{Delivery: domain.DeliveryProcessed}
	upd.Set(domain.ChannelInApp, domain.StatusDelivered)

	pref, err := r.store.Preference(ctx, n.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.Warn("no notification preferences")
		upd.Set(domain.ChannelEmail, domain.StatusFailed)
		upd.Set(domain.ChannelPush, domain.StatusFailed)
		return r.finish(ctx, log, n.ID, upd)
	case err != nil:
		return fmt.Errorf("load preferences for %s: %w", n.UserID, err)
	}

	if pref.DoNotDisturb.Enabled {
		log.Info("do not disturb enabled, outbound channels skipped")
		upd.Set(domain.ChannelEmail, domain.StatusSkipped)
		upd.Set(domain.ChannelPush, domain.StatusSkipped)
		return r.finish(ctx, log, n.ID, upd)
	}

	targets := []target{
		{channel: domain.ChannelEmail, enabled: pref.Email.Enabled, address: pref.Email.Address},
		{channel: domain.ChannelPush, enabled: pref.Push.Enabled, address: pref.Push.ChatID},
	}

	var (
		channels []domain.Channel
		tasks    []settle.Task[domain.ChannelStatus]
	)
	for _, t := range targets {
		if !t.enabled {
			upd.Set(t.channel, domain.StatusSkipped)
			continue
		}
		sender, ok := r.senders[t.channel]
		if !ok {
			log.Warn("no sender configured", zap.String("channel", string(t.channel)))
			upd.Set(t.channel, domain.StatusFailed)
			continue
		}
		channels = append(channels, t.channel)
		tasks = append(tasks, func(ctx context.Context) (domain.ChannelStatus, error) {
			return sender.Send(ctx, n, t.address)
		})
	}

	for i, out := range settle.All(ctx, tasks) {
		st := out.Value
		if out.Err != nil {
			log.Error("channel delivery failed", zap.String("channel", string(channels[i])), zap.Error(out.Err))
			st = domain.StatusFailed
		}
		if st != domain.StatusSent {
			st = domain.StatusFailed
		}
		upd.Set(channels[i], st)
	}

	return r.finish(ctx, log, n.ID, upd)
}

func (r *Router) finish(ctx context.Context, log *zap.Logger, id string, upd domain.StatusUpdate) error {
	if err := r.store.UpdateNotificationStatus(ctx, id, upd); err != nil {
		return fmt.Errorf("update notification %s status: %w", id, err)
	}
	st := upd.Apply(domain.Status{})
	log.Info("notification processed",
		zap.String("email", string(st.Email)),
		zap.String("push", string(st.Push)),
		zap.String("inApp", string(st.InApp)),
	)
	return nil
}
