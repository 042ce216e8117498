package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

// PushSender delivers notifications as Telegram messages. The address is the
// chat id from the user's push preference.
type PushSender struct {
	bot botAPI
	log *zap.Logger
}

// NewPushSender creates a PushSender. A nil bot (no token configured) makes
// every push fail.
func NewPushSender(bot *tgbotapi.BotAPI, log *zap.Logger) *PushSender {
	s := &PushSender{log: log}
	if bot != nil {
		s.bot = bot
	}
	return s
}

func (s *PushSender) Channel() domain.Channel { return domain.ChannelPush }

// Send posts n to the chat. It makes exactly one attempt.
func (s *PushSender) Send(_ context.Context, n domain.Notification, address string) (domain.ChannelStatus, error) {
	if s.bot == nil {
		s.log.Warn("push requested but bot is not configured", zap.String("userID", n.UserID))
		return domain.StatusFailed, nil
	}
	if address == "" {
		s.log.Warn("push enabled without chat id", zap.String("userID", n.UserID))
		return domain.StatusFailed, nil
	}
	chatID, err := strconv.ParseInt(address, 10, 64)
	if err != nil {
		return domain.StatusFailed, fmt.Errorf("invalid chat id %q: %w", address, err)
	}
	text := fmt.Sprintf(pushFmt, n.Content.Title, n.Content.Body)
	if _, err := s.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return domain.StatusFailed, fmt.Errorf("telegram send to %d: %w", chatID, err)
	}
	return domain.StatusSent, nil
}
