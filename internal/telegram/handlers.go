package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (r *Router) sendText(chatID int64, text string) {
	if _, err := r.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.log.Warn("telegram reply failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

func (r *Router) handleStart(_ context.Context, chatID int64) {
	r.log.Info("chat linked", zap.Int64("chatID", chatID))
	r.sendText(chatID, fmt.Sprintf(startFmt, chatID))
}

func (r *Router) handleHelp(_ context.Context, chatID int64) {
	r.sendText(chatID, helpText)
}
