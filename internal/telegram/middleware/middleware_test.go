package middleware

import (
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func update(userID, chatID int64) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: "/help",
	}}
}

func TestRateLimiterBurstAndRefill(t *testing.T) {
	sender := &fakeSender{}
	rl := NewRateLimiterMiddleware(60, 2, zap.NewNop(), sender)
	defer rl.Close()

	clock := time.Now()
	rl.now = func() time.Time { return clock }

	calls := 0
	next := func(tgbotapi.Update) { calls++ }

	for i := 0; i < 3; i++ {
		rl.Handle(update(1, 10), next)
	}
	assert.Equal(t, 2, calls, "burst allows two requests")
	require.Len(t, sender.sent, 1, "one warning for the rejected request")

	// Another user has their own bucket.
	rl.Handle(update(2, 20), next)
	assert.Equal(t, 3, calls)

	// 60 per minute refills one token per second.
	clock = clock.Add(time.Second)
	rl.Handle(update(1, 10), next)
	assert.Equal(t, 4, calls)
}

func TestRateLimiterPassesUnknownUpdates(t *testing.T) {
	rl := NewRateLimiterMiddleware(1, 1, zap.NewNop(), &fakeSender{})
	defer rl.Close()

	calls := 0
	for i := 0; i < 5; i++ {
		rl.Handle(tgbotapi.Update{UpdateID: i}, func(tgbotapi.Update) { calls++ })
	}
	assert.Equal(t, 5, calls)
}

func TestRecoveryMiddleware(t *testing.T) {
	sender := &fakeSender{}
	m := NewRecoveryMiddleware(zap.NewNop(), sender)

	assert.NotPanics(t, func() {
		m.Handle(update(1, 10), func(tgbotapi.Update) { panic("boom") })
	})
	require.Len(t, sender.sent, 1)

	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(10), msg.ChatID)
}

func TestLoggingMiddlewareCallsNext(t *testing.T) {
	called := false
	NewLoggingMiddleware(zap.NewNop()).Handle(update(1, 10), func(tgbotapi.Update) { called = true })
	assert.True(t, called)
}
