package domain

import "fmt"

// EmailPreference enables email delivery to Address.
type EmailPreference struct {
	Enabled bool   `json:"enabled"`
	Address string `json:"address"`
}

// PushPreference enables push delivery. ChatID is the Telegram chat that
// receives the push message.
type PushPreference struct {
	Enabled bool   `json:"enabled"`
	ChatID  string `json:"chatId"`
}

// InAppPreference is informational; in-app records are always written.
type InAppPreference struct {
	Enabled bool `json:"enabled"`
}

// DoNotDisturb suppresses every outbound channel while Enabled is set.
// StartTime and EndTime are kept for the client; the router does not defer
// deliveries to the end of the window.
type DoNotDisturb struct {
	Enabled   bool   `json:"isEnabled"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// NotificationPreference holds one user's delivery settings.
type NotificationPreference struct {
	UserID       string          `json:"userId"`
	Email        EmailPreference `json:"email"`
	Push         PushPreference  `json:"push"`
	InApp        InAppPreference `json:"inApp"`
	DoNotDisturb DoNotDisturb    `json:"doNotDisturb"`
}

// Validate checks the do-not-disturb clock values when they are set.
func (p NotificationPreference) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("preference: empty user id")
	}
	for _, v := range []string{p.DoNotDisturb.StartTime, p.DoNotDisturb.EndTime} {
		if v == "" {
			continue
		}
		if _, err := ParseClock(v); err != nil {
			return fmt.Errorf("preference %s: do not disturb: %w", p.UserID, err)
		}
	}
	return nil
}
