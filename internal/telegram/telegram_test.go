package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

type fakeBot struct {
	err  error
	sent []tgbotapi.MessageConfig
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m)
	}
	return tgbotapi.Message{}, f.err
}

var goalNotification = domain.Notification{
	ID:      "n1",
	UserID:  "u1",
	Content: domain.Content{Title: "Goal Reached!", Body: `Congratulations! You reached your goal "Trip" of $3000.00.`},
}

func TestPushSender_Send(t *testing.T) {
	bot := &fakeBot{}
	s := &PushSender{bot: bot, log: zap.NewNop()}

	st, err := s.Send(context.Background(), goalNotification, "4242")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, st)
	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(4242), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "Goal Reached!")
	assert.Contains(t, bot.sent[0].Text, `"Trip"`)
}

func TestPushSender_Failures(t *testing.T) {
	tests := []struct {
		name    string
		bot     *fakeBot
		address string
		wantErr bool
		sends   int
	}{
		{name: "empty chat id", bot: &fakeBot{}, address: "", sends: 0},
		{name: "malformed chat id", bot: &fakeBot{}, address: "@ana", wantErr: true, sends: 0},
		{name: "api rejects", bot: &fakeBot{err: errors.New("Forbidden: bot was blocked by the user")}, address: "4242", wantErr: true, sends: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &PushSender{bot: tt.bot, log: zap.NewNop()}

			st, err := s.Send(context.Background(), goalNotification, tt.address)

			assert.Equal(t, domain.StatusFailed, st)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, tt.bot.sent, tt.sends)
		})
	}
}

func TestPushSender_NoBot(t *testing.T) {
	s := NewPushSender(nil, zap.NewNop())

	st, err := s.Send(context.Background(), goalNotification, "4242")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, st)
}

func TestRouter_Commands(t *testing.T) {
	bot := &fakeBot{}
	r := NewRouter(bot, zap.NewNop())
	update := func(text string) tgbotapi.Update {
		return tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 777}, Text: text}}
	}

	r.HandleUpdate(context.Background(), update("/start"))
	r.HandleUpdate(context.Background(), update("/help"))
	r.HandleUpdate(context.Background(), update("hello"))
	r.HandleUpdate(context.Background(), tgbotapi.Update{})

	require.Len(t, bot.sent, 2)
	assert.Contains(t, bot.sent[0].Text, "777")
	assert.Contains(t, bot.sent[1].Text, "/start")
}

func TestRouter_RunStopsOnClosedChannel(t *testing.T) {
	bot := &fakeBot{}
	r := NewRouter(bot, zap.NewNop())
	updates := make(chan tgbotapi.Update, 1)
	updates <- tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 1}, Text: "/start"}}
	close(updates)

	r.Run(context.Background(), updates)

	assert.Len(t, bot.sent, 1)
}
