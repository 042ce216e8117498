package delivery

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// Handler processes one created notification.
type Handler interface {
	OnNotificationCreated(ctx context.Context, n domain.Notification) error
}

// Dispatcher turns store create events into one asynchronous Handler
// invocation per notification, so the inserting rule evaluation never waits
// on external channels.
type Dispatcher struct {
	ctx context.Context
	h   Handler
	log *zap.Logger
	wg  sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. Deliveries inherit ctx values but not
// its cancellation, so a started delivery always records its outcome.
func NewDispatcher(ctx context.Context, h Handler, log *zap.Logger) *Dispatcher {
	return &Dispatcher{ctx: context.WithoutCancel(ctx), h: h, log: log}
}

// Notify starts delivery of n in its own goroutine. It matches the store's
// create hook signature.
func (d *Dispatcher) Notify(n domain.Notification) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.handle(n); err != nil {
			d.log.Error("notification delivery failed",
				zap.String("notificationID", n.ID),
				zap.String("userID", n.UserID),
				zap.Error(err),
			)
		}
	}()
}

func (d *Dispatcher) handle(n domain.Notification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("delivery panicked: %v", r)
		}
	}()
	return d.h.OnNotificationCreated(d.ctx, n)
}

// Wait blocks until every started delivery has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
