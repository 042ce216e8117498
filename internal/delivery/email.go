package delivery

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// SMTPConfig describes the outgoing mail server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type mailer interface {
	DialAndSendWithContext(ctx context.Context, msgs ...*mail.Msg) error
}

// EmailSender delivers notifications as plain-text mail.
type EmailSender struct {
	client mailer
	from   string
	log    *zap.Logger
}

// NewEmailSender creates an EmailSender. SMTP auth is only used when a
// username is configured; TLS is used when the server offers it.
func NewEmailSender(cfg SMTPConfig, log *zap.Logger) (*EmailSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	c, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &EmailSender{client: c, from: cfg.From, log: log}, nil
}

func (s *EmailSender) Channel() domain.Channel { return domain.ChannelEmail }

// Send mails n to address. An empty address is reported as failed without
// contacting the server.
func (s *EmailSender) Send(ctx context.Context, n domain.Notification, address string) (domain.ChannelStatus, error) {
	if address == "" {
		s.log.Warn("email enabled without address", zap.String("userID", n.UserID))
		return domain.StatusFailed, nil
	}
	msg, err := buildMessage(s.from, address, n)
	if err != nil {
		return domain.StatusFailed, err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return domain.StatusFailed, fmt.Errorf("send mail to %s: %w", address, err)
	}
	return domain.StatusSent, nil
}

func buildMessage(from, to string, n domain.Notification) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("from address %q: %w", from, err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("to address %q: %w", to, err)
	}
	m.Subject(n.Content.Title)
	m.SetBodyString(mail.TypeTextPlain, n.Content.Body)
	return m, nil
}
