package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// botAPI is the part of *tgbotapi.BotAPI the package uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Router answers bot commands. Its main job is telling users which chat id
// to paste into their push notification settings.
type Router struct {
	bot botAPI
	log *zap.Logger
}

// NewRouter creates a new Telegram router.
func NewRouter(bot botAPI, log *zap.Logger) *Router {
	return &Router{bot: bot, log: log}
}

// HandleUpdate routes a single update to the matching command handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch {
	case strings.HasPrefix(text, "/start"):
		r.handleStart(ctx, chatID)
	case strings.HasPrefix(text, "/help"):
		r.handleHelp(ctx, chatID)
	default:
		// Free-form text is ignored; settings live in the app.
	}
}

// Run consumes updates until ctx is canceled or the channel is closed.
func (r *Router) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			r.HandleUpdate(ctx, upd)
		}
	}
}
