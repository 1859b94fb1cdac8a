package middleware

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// LoggingMiddleware logs all incoming updates
type LoggingMiddleware struct {
	logger *zap.Logger
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(logger *zap.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: logger,
	}
}

// Handle logs the update
func (m *LoggingMiddleware) Handle(update tgbotapi.Update, next func(tgbotapi.Update)) {
	start := time.Now()
	userID, chatID, _ := updateChat(update)

	fields := []zap.Field{
		zap.Int64("user_id", userID),
		zap.Int64("chat_id", chatID),
		zap.Int("update_id", update.UpdateID),
	}

	switch {
	case update.Message != nil && update.Message.IsCommand():
		fields = append(fields, zap.String("type", "command"), zap.String("command", update.Message.Command()))
	case update.Message != nil:
		fields = append(fields, zap.String("type", "text"))
	case update.CallbackQuery != nil:
		fields = append(fields, zap.String("type", "callback"), zap.String("data", update.CallbackQuery.Data))
	default:
		fields = append(fields, zap.String("type", "other"))
	}

	m.logger.Info("telegram update received", fields...)

	next(update)

	m.logger.Info("telegram update processed",
		zap.Int64("user_id", userID),
		zap.Int64("chat_id", chatID),
		zap.Duration("duration", time.Since(start)),
	)
}
