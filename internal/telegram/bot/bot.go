package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/telegram/handlers"
	"github.com/futig/fitplan-backend/internal/telegram/keyboard"
	"github.com/futig/fitplan-backend/internal/telegram/middleware"
	"github.com/futig/fitplan-backend/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Bot represents the Telegram bot
type Bot struct {
	client      *tgbotapi.BotAPI
	api         handlers.BotAPI
	cfg         *config.TelegramConfig
	handlers    map[string]handlers.Handler
	keyboard    *keyboard.Builder
	logger      *zap.Logger
	loggingMW   *middleware.LoggingMiddleware
	recoveryMW  *middleware.RecoveryMiddleware
	rateLimitMW *middleware.RateLimiterMiddleware
	updatesChan tgbotapi.UpdatesChannel
	stopChan    chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
}

// New authorizes against the Bot API and creates a new Telegram bot
func New(cfg *config.TelegramConfig, logger *zap.Logger) (*Bot, error) {
	client, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}

	client.Debug = false

	logger.Info("telegram bot authorized",
		zap.String("username", client.Self.UserName),
		zap.Int64("id", client.Self.ID),
	)

	b := newBot(client, cfg, logger)
	b.client = client

	return b, nil
}

func newBot(api handlers.BotAPI, cfg *config.TelegramConfig, logger *zap.Logger) *Bot {
	return &Bot{
		api:         api,
		cfg:         cfg,
		keyboard:    keyboard.NewBuilder(),
		logger:      logger,
		handlers:    make(map[string]handlers.Handler),
		stopChan:    make(chan struct{}),
		loggingMW:   middleware.NewLoggingMiddleware(logger),
		recoveryMW:  middleware.NewRecoveryMiddleware(logger, api),
		rateLimitMW: middleware.NewRateLimiterMiddleware(cfg.RateLimitPerMinute, cfg.RateLimitBurst, logger, api),
	}
}

// Start starts the bot
func (b *Bot) Start(ctx context.Context) error {
	if b.client == nil {
		return fmt.Errorf("bot API is not initialized")
	}

	b.logger.Info("starting telegram bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout

	b.updatesChan = b.client.GetUpdatesChan(u)

	ctx = ctxzap.ToContext(ctx, b.logger)

	go b.processUpdates(ctx)

	b.logger.Info("telegram bot started successfully")
	return nil
}

// Stop stops the bot gracefully with timeout
func (b *Bot) Stop() error {
	b.logger.Info("stopping telegram bot")

	b.stopOnce.Do(func() {
		close(b.stopChan)
		b.rateLimitMW.Close()
		if b.client != nil {
			b.client.StopReceivingUpdates()
		}
	})

	// Wait for all active handlers to complete
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	shutdownTimeout := time.Duration(b.cfg.ShutdownTimeout) * time.Second
	select {
	case <-done:
		b.logger.Info("all handlers completed gracefully")
	case <-time.After(shutdownTimeout):
		b.logger.Warn("shutdown timeout exceeded, some handlers may not have completed",
			zap.Duration("timeout", shutdownTimeout),
		)
		return fmt.Errorf("shutdown timeout exceeded")
	}

	b.logger.Info("telegram bot stopped successfully")
	return nil
}

// processUpdates processes incoming updates
func (b *Bot) processUpdates(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			ctxzap.Info(ctx, "context cancelled, stopping update processing")
			return
		case <-b.stopChan:
			ctxzap.Info(ctx, "stop signal received, stopping update processing")
			return
		case update, ok := <-b.updatesChan:
			if !ok {
				return
			}
			b.wg.Add(1)
			go func(u tgbotapi.Update) {
				defer b.wg.Done()
				b.handleUpdateWithMiddleware(ctx, u)
			}(update)
		}
	}
}

// handleUpdateWithMiddleware processes update through middleware chain
func (b *Bot) handleUpdateWithMiddleware(ctx context.Context, update tgbotapi.Update) {
	b.rateLimitMW.Handle(update, func(u tgbotapi.Update) {
		b.loggingMW.Handle(u, func(u2 tgbotapi.Update) {
			b.recoveryMW.Handle(u2, func(u3 tgbotapi.Update) {
				b.handleUpdate(ctx, u3)
			})
		})
	})
}

// handleUpdate routes update to appropriate handler
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallbackQuery(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage handles incoming messages
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if !message.IsCommand() {
		b.sendMessage(message.Chat.ID, render.MsgWelcome)
		return
	}

	b.dispatch(ctx, &handlers.Message{
		ChatID:    message.Chat.ID,
		UserID:    message.From.ID,
		MessageID: message.MessageID,
		Command:   message.Command(),
		Args:      message.CommandArguments(),
	})
}

// handleCallbackQuery replays the command behind an inline button
func (b *Bot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	callbackData, err := keyboard.ParseCallback(query.Data)
	if err != nil || callbackData.Action != keyboard.ActionCommand || query.Message == nil {
		ctxzap.Warn(ctx, "invalid callback data",
			zap.Error(err),
			zap.String("data", query.Data),
		)
		b.answerCallback(query.ID, "❌ Invalid button")
		return
	}

	// Answer at once so Telegram does not consider the query stale.
	b.answerCallback(query.ID, "⏳ Working on it...")

	b.dispatch(ctx, &handlers.Message{
		ChatID:     query.Message.Chat.ID,
		UserID:     query.From.ID,
		MessageID:  query.Message.MessageID,
		Command:    callbackData.Value,
		CallbackID: query.ID,
	})
}

func (b *Bot) dispatch(ctx context.Context, msg *handlers.Message) {
	ctx = ctxzap.ToContext(ctx, b.logger.With(
		zap.Int64("chat_id", msg.ChatID),
		zap.String("command", msg.Command),
	))

	handler, exists := b.handlers[msg.Command]
	if !exists {
		ctxzap.Debug(ctx, "unknown command")
		b.sendMessage(msg.ChatID, render.ErrUnknownCmd)
		return
	}

	if err := handler.Handle(ctx, msg); err != nil {
		ctxzap.Error(ctx, "handler error", zap.Error(err))
		b.sendMessage(msg.ChatID, render.ErrGeneric)
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Error("failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}
}

// answerCallback answers a callback query
func (b *Bot) answerCallback(callbackID string, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.Error("failed to answer callback",
			zap.Error(err),
			zap.String("callback_id", callbackID),
		)
	}
}

// RegisterHandler registers a handler for its command
func (b *Bot) RegisterHandler(handler handlers.Handler) {
	command := handler.Command()
	if _, exists := b.handlers[command]; exists {
		b.logger.Fatal("duplicate command handler", zap.String("command", command))
	}

	b.handlers[command] = handler
	b.logger.Debug("handler registered", zap.String("command", command))
}

// API returns the bot API instance (for handlers)
func (b *Bot) API() handlers.BotAPI {
	return b.api
}

// Keyboard returns the keyboard builder (for handlers)
func (b *Bot) Keyboard() *keyboard.Builder {
	return b.keyboard
}
