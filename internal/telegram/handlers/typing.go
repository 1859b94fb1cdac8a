package handlers

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Telegram drops a chat action after 5 seconds.
const chatActionInterval = 4 * time.Second

// TypingNotifier keeps a chat action (typing, upload_photo, ...) visible while
// a long operation runs
type TypingNotifier struct {
	bot      BotAPI
	chatID   int64
	action   string
	interval time.Duration
	logger   *zap.Logger

	once sync.Once
	done chan struct{}
}

// NewTypingNotifier creates a new chat action indicator
func NewTypingNotifier(bot BotAPI, chatID int64, action string, logger *zap.Logger) *TypingNotifier {
	return &TypingNotifier{
		bot:      bot,
		chatID:   chatID,
		action:   action,
		interval: chatActionInterval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start sends the action immediately and then on every interval until Stop or
// ctx is done. It returns the stop function.
func (t *TypingNotifier) Start(ctx context.Context) func() {
	t.send()

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				t.send()
			case <-t.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return t.Stop
}

// Stop stops sending the action. Safe to call more than once.
func (t *TypingNotifier) Stop() {
	t.once.Do(func() { close(t.done) })
}

func (t *TypingNotifier) send() {
	if _, err := t.bot.Request(tgbotapi.NewChatAction(t.chatID, t.action)); err != nil {
		t.logger.Warn("failed to send chat action",
			zap.Error(err),
			zap.Int64("chat_id", t.chatID),
			zap.String("action", t.action),
		)
	}
}
