package domain

import "time"

// Channel is a notification delivery medium.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
	ChannelInApp Channel = "inApp"
)

// DeliveryState tracks whether the delivery router has handled a notification.
type DeliveryState string

const (
	DeliveryPending   DeliveryState = "pending"
	DeliveryProcessed DeliveryState = "processed"
)

// ChannelStatus is the per-channel outcome of a delivery.
type ChannelStatus string

const (
	StatusPending   ChannelStatus = "pending"
	StatusSent      ChannelStatus = "sent"
	StatusDelivered ChannelStatus = "delivered"
	StatusFailed    ChannelStatus = "failed"
	StatusSkipped   ChannelStatus = "skipped"
)

// Content is what the user reads.
type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Status is the delivery state of a notification. Seen and Dismissed are
// owned by the client.
type Status struct {
	Delivery  DeliveryState `json:"delivery"`
	Email     ChannelStatus `json:"email"`
	Push      ChannelStatus `json:"push"`
	InApp     ChannelStatus `json:"inApp"`
	Seen      bool          `json:"seen"`
	Dismissed bool          `json:"dismissed"`
}

// Terminal reports whether delivery is finished for every channel.
func (s Status) Terminal() bool {
	return s.Delivery == DeliveryProcessed &&
		s.Email != StatusPending && s.Push != StatusPending && s.InApp != StatusPending
}

// Notification is created once by the alert engine and finalized by the
// delivery router.
type Notification struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	AlertRuleID string    `json:"alertRuleId"`
	Content     Content   `json:"content"`
	Status      Status    `json:"status"`
	IsArchived  bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StatusUpdate is a partial status write. Nil channel fields are left as stored.
type StatusUpdate struct {
	Delivery DeliveryState
	Email    *ChannelStatus
	Push     *ChannelStatus
	InApp    *ChannelStatus
}

// Set records s for channel c.
func (u *StatusUpdate) Set(c Channel, s ChannelStatus) {
	switch c {
	case ChannelEmail:
		u.Email = &s
	case ChannelPush:
		u.Push = &s
	case ChannelInApp:
		u.InApp = &s
	}
}

// Apply returns st with the update applied.
func (u StatusUpdate) Apply(st Status) Status {
	if u.Delivery != "" {
		st.Delivery = u.Delivery
	}
	if u.Email != nil {
		st.Email = *u.Email
	}
	if u.Push != nil {
		st.Push = *u.Push
	}
	if u.InApp != nil {
		st.InApp = *u.InApp
	}
	return st
}
