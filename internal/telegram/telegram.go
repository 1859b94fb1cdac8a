package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/telegram/bot"
	"github.com/futig/fitplan-backend/internal/telegram/handlers"
	"go.uber.org/zap"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// Usecases are the pipeline operations the bot exposes
type Usecases struct {
	Sessions handlers.SessionUsecase
	Assets   handlers.AssetsUsecase
	Speech   handlers.SpeechUsecase
}

// NewBot initializes the telegram bot with all dependencies. awaitTimeout bounds
// how long a chat waits for its plan.
func NewBot(cfg *config.TelegramConfig, uc Usecases, awaitTimeout time.Duration, logger *zap.Logger) (Bot, error) {
	b, err := bot.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	registerHandlers(b, uc, awaitTimeout, logger)

	logger.Info("telegram bot initialized successfully")

	return b, nil
}

// registerHandlers registers all command handlers with the bot
func registerHandlers(b *bot.Bot, uc Usecases, awaitTimeout time.Duration, logger *zap.Logger) {
	api := b.API()
	kb := b.Keyboard()
	sender := handlers.NewMessageSender(api, logger)

	all := []handlers.Handler{
		handlers.NewStartHandler(sender),
		handlers.NewHelpHandler(sender),
		handlers.NewPlanHandler(api, uc.Sessions, kb, sender, awaitTimeout, logger),
		handlers.NewRetryHandler(api, uc.Sessions, kb, sender, awaitTimeout, logger),
		handlers.NewImagesHandler(api, uc.Assets, sender, logger),
		handlers.NewVoiceHandler(api, uc.Sessions, uc.Speech, sender, logger),
		handlers.NewCancelHandler(uc.Sessions, sender),
	}
	for _, h := range all {
		b.RegisterHandler(h)
	}

	logger.Info("telegram handlers registered", zap.Int("handler_count", len(all)))
}
