package handlers

import (
	"github.com/futig/fitplan-backend/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// MessageSender provides centralized message sending functionality
type MessageSender struct {
	bot    BotAPI
	logger *zap.Logger
}

// NewMessageSender creates a new MessageSender
func NewMessageSender(bot BotAPI, logger *zap.Logger) *MessageSender {
	return &MessageSender{
		bot:    bot,
		logger: logger,
	}
}

// Send sends a message to the specified chat. Text over the Telegram limit is
// split, the markup goes with the last part.
func (s *MessageSender) Send(chatID int64, text string, markup interface{}) error {
	chunks := render.SplitMessage(text, render.MaxMessageLength)

	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if markup != nil && i == len(chunks)-1 {
			msg.ReplyMarkup = markup
		}

		if _, err := s.bot.Send(msg); err != nil {
			s.logger.Error("failed to send message",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
			)
			return err
		}
	}

	return nil
}

// SendPhoto uploads an image with a caption
func (s *MessageSender) SendPhoto(chatID int64, name string, data []byte, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	photo.Caption = caption

	if _, err := s.bot.Send(photo); err != nil {
		s.logger.Error("failed to send photo",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("name", name),
		)
		return err
	}

	return nil
}

// SendAudio uploads an audio file
func (s *MessageSender) SendAudio(chatID int64, name string, data []byte) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})

	if _, err := s.bot.Send(audio); err != nil {
		s.logger.Error("failed to send audio",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		return err
	}

	return nil
}
