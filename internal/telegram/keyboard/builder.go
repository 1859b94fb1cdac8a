package keyboard

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Builder creates inline keyboards
type Builder struct{}

// NewBuilder creates a keyboard builder
func NewBuilder() *Builder {
	return &Builder{}
}

// PlanKeyboard is attached to a finished plan.
func (b *Builder) PlanKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🖼 Pictures", EncodeCallback(ActionCommand, CommandImages)),
			tgbotapi.NewInlineKeyboardButtonData("🔊 Listen", EncodeCallback(ActionCommand, CommandVoice)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Regenerate", EncodeCallback(ActionCommand, CommandRetry)),
		),
	)
}

// RetryKeyboard is attached to a retryable failure.
func (b *Builder) RetryKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Try again", EncodeCallback(ActionCommand, CommandRetry)),
		),
	)
}
