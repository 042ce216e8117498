package delivery_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/delivery"
	mock_delivery "github.com/Donchitos/Budgetzz-sub000/internal/delivery/mocks"
	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

type fixture struct {
	store  *mock_delivery.MockStore
	email  *mock_delivery.MockSender
	push   *mock_delivery.MockSender
	router *delivery.Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		store: mock_delivery.NewMockStore(ctrl),
		email: mock_delivery.NewMockSender(ctrl),
		push:  mock_delivery.NewMockSender(ctrl),
	}
	f.email.EXPECT().Channel().Return(domain.ChannelEmail).AnyTimes()
	f.push.EXPECT().Channel().Return(domain.ChannelPush).AnyTimes()
	f.router = delivery.NewRouter(f.store, zap.NewNop(), f.email, f.push)
	return f
}

// expectUpdate captures the single status update written for notification n1.
func (f *fixture) expectUpdate() *domain.Status {
	var got domain.Status
	f.store.EXPECT().
		UpdateNotificationStatus(gomock.Any(), "n1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd domain.StatusUpdate) error {
			got = upd.Apply(domain.Status{})
			return nil
		}).
		Times(1)
	return &got
}

func notification() domain.Notification {
	return domain.Notification{
		ID:          "n1",
		UserID:      "u1",
		AlertRuleID: "r1",
		Content:     domain.Content{Title: "Budget Alert", Body: "You've spent 80% of your Food budget ($160.00 of $200.00)."},
		Status: domain.Status{
			Delivery: domain.DeliveryPending,
			Email:    domain.StatusPending,
			Push:     domain.StatusPending,
			InApp:    domain.StatusPending,
		},
		CreatedAt: time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC),
	}
}

func prefs() domain.NotificationPreference {
	return domain.NotificationPreference{
		UserID: "u1",
		Email:  domain.EmailPreference{Enabled: true, Address: "ana@example.com"},
		Push:   domain.PushPreference{Enabled: true, ChatID: "4242"},
		InApp:  domain.InAppPreference{Enabled: true},
	}
}

func TestRouter_MixedChannelOutcomes(t *testing.T) {
	f := newFixture(t)
	n := notification()
	f.store.EXPECT().Preference(gomock.Any(), "u1").Return(prefs(), nil)
	f.email.EXPECT().Send(gomock.Any(), n, "ana@example.com").Return(domain.StatusFailed, errors.New("smtp: 550 mailbox unavailable"))
	f.push.EXPECT().Send(gomock.Any(), n, "4242").Return(domain.StatusSent, nil)
	got := f.expectUpdate()

	require.NoError(t, f.router.OnNotificationCreated(context.Background(), n))

	assert.Equal(t, domain.Status{
		Delivery: domain.DeliveryProcessed,
		Email:    domain.StatusFailed,
		Push:     domain.StatusSent,
		InApp:    domain.StatusDelivered,
	}, *got)
}

func TestRouter_DoNotDisturbSkipsSenders(t *testing.T) {
	f := newFixture(t)
	p := prefs()
	p.DoNotDisturb = domain.DoNotDisturb{Enabled: true, StartTime: "22:00", EndTime: "07:00"}
	f.store.EXPECT().Preference(gomock.Any(), "u1").Return(p, nil)
	got := f.expectUpdate()

	require.NoError(t, f.router.OnNotificationCreated(context.Background(), notification()))

	assert.Equal(t, domain.DeliveryProcessed, got.Delivery)
	assert.Equal(t, domain.StatusSkipped, got.Email)
	assert.Equal(t, domain.StatusSkipped, got.Push)
	assert.Equal(t, domain.StatusDelivered, got.InApp)
}

func TestRouter_MissingPreferences(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Preference(gomock.Any(), "u1").Return(domain.NotificationPreference{}, domain.ErrNotFound)
	got := f.expectUpdate()

	require.NoError(t, f.router.OnNotificationCreated(context.Background(), notification()))

	assert.Equal(t, domain.DeliveryProcessed, got.Delivery)
	assert.Equal(t, domain.StatusFailed, got.Email)
	assert.Equal(t, domain.StatusFailed, got.Push)
	assert.Equal(t, domain.StatusDelivered, got.InApp)
}

func TestRouter_DisabledChannelIsSkipped(t *testing.T) {
	f := newFixture(t)
	p := prefs()
	p.Push.Enabled = false
	f.store.EXPECT().Preference(gomock.Any(), "u1").Return(p, nil)
	f.email.EXPECT().Send(gomock.Any(), gomock.Any(), "ana@example.com").Return(domain.StatusSent, nil)
	got := f.expectUpdate()

	require.NoError(t, f.router.OnNotificationCreated(context.Background(), notification()))

	assert.Equal(t, domain.StatusSent, got.Email)
	assert.Equal(t, domain.StatusSkipped, got.Push)
	assert.Equal(t, domain.StatusDelivered, got.InApp)
}

func TestRouter_SenderReportsFailureWithoutError(t *testing.T) {
	f := newFixture(t)
	p := prefs()
	p.Email.Address = ""
	f.store.EXPECT().Preference(gomock.Any(), "u1").Return(p, nil)
	f.email.EXPECT().Send(gomock.Any(), gomock.Any(), "").Return(domain.StatusFailed, nil)
	f.push.EXPECT().Send(gomock.Any(), gomock.Any(), "4242").Return(domain.StatusSent, nil)
	got := f.expectUpdate()

	require.NoError(t, f.router.OnNotificationCreated(context.Background(), notification()))

	assert.Equal(t, domain.StatusFailed, got.Email)
	assert.Equal(t, domain.StatusSent, got.Push)
}

func TestRouter_SenderPanicIsIsolated(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Preference(gomock.Any(), "u1").Return(prefs(), nil)
	f.email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.StatusSent, nil)
	f.push.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Notification, string) (domain.ChannelStatus, error) {
			panic("bot client not initialized")
		})
	got := f.expectUpdate()

	require.NoError(t, f.router.OnNotificationCreated(context.Background(), notification()))

	assert.Equal(t, domain.StatusSent, got.Email)
	assert.Equal(t, domain.StatusFailed, got.Push)
}

func TestRouter_UnconfiguredChannelFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_delivery.NewMockStore(ctrl)
	email := mock_delivery.NewMockSender(ctrl)
	email.EXPECT().Channel().Return(domain.ChannelEmail).AnyTimes()
	router := delivery.NewRouter(store, zap.NewNop(), email)

	store.EXPECT().Preference(gomock.Any(), "u1").Return(prefs(), nil)
	email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.StatusSent, nil)
	var got domain.Status
	store.EXPECT().UpdateNotificationStatus(gomock.Any(), "n1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd domain.StatusUpdate) error {
			got = upd.Apply(domain.Status{})
			return nil
		})

	require.NoError(t, router.OnNotificationCreated(context.Background(), notification()))

	assert.Equal(t, domain.StatusSent, got.Email)
	assert.Equal(t, domain.StatusFailed, got.Push)
}

func TestRouter_PreferenceLoadError(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Preference(gomock.Any(), "u1").Return(domain.NotificationPreference{}, errors.New("database is locked"))

	err := f.router.OnNotificationCreated(context.Background(), notification())

	assert.ErrorContains(t, err, "database is locked")
}

func TestRouter_StatusUpdateError(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Preference(gomock.Any(), "u1").Return(domain.NotificationPreference{}, domain.ErrNotFound)
	f.store.EXPECT().UpdateNotificationStatus(gomock.Any(), "n1", gomock.Any()).Return(errors.New("disk I/O error"))

	err := f.router.OnNotificationCreated(context.Background(), notification())

	assert.ErrorContains(t, err, "disk I/O error")
}
