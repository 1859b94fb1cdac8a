package handlers

import (
	"context"
	"time"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/futig/fitplan-backend/internal/telegram/keyboard"
	"github.com/futig/fitplan-backend/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// PlanHandler starts a plan request (/plan) or repeats the last one (/retry)
// and posts the outcome when it settles
type PlanHandler struct {
	BaseHandler
	api          BotAPI
	sessions     SessionUsecase
	keyboard     *keyboard.Builder
	awaitTimeout time.Duration
	logger       *zap.Logger
}

func NewPlanHandler(api BotAPI, sessions SessionUsecase, kb *keyboard.Builder, sender *MessageSender, awaitTimeout time.Duration, logger *zap.Logger) *PlanHandler {
	return newPlanHandler(keyboard.CommandPlan, api, sessions, kb, sender, awaitTimeout, logger)
}

func NewRetryHandler(api BotAPI, sessions SessionUsecase, kb *keyboard.Builder, sender *MessageSender, awaitTimeout time.Duration, logger *zap.Logger) *PlanHandler {
	return newPlanHandler(keyboard.CommandRetry, api, sessions, kb, sender, awaitTimeout, logger)
}

func newPlanHandler(command string, api BotAPI, sessions SessionUsecase, kb *keyboard.Builder, sender *MessageSender, awaitTimeout time.Duration, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		BaseHandler:  BaseHandler{command: command, messageSender: sender},
		api:          api,
		sessions:     sessions,
		keyboard:     kb,
		awaitTimeout: awaitTimeout,
		logger:       logger,
	}
}

func (h *PlanHandler) Handle(ctx context.Context, msg *Message) error {
	ctx = logger.WithAction(ctx, "telegram_"+h.command)
	sessionID := SessionID(msg.ChatID)
	h.sessions.Open(ctx, sessionID)

	var err error
	if h.command == keyboard.CommandRetry {
		_, err = h.sessions.Retry(ctx, sessionID)
	} else {
		var profile *entity.Profile
		if profile, err = ParseProfile(msg.Args); err != nil {
			h.sendMessage(msg.ChatID, render.RenderError(&entity.AppError{
				Kind:    entity.ErrorKindValidation,
				Message: "Invalid request parameters",
				Details: err.Error(),
				Err:     err,
			}), nil)
			return nil
		}
		_, err = h.sessions.Generate(ctx, sessionID, profile)
	}
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return nil
	}

	h.sendMessage(msg.ChatID, render.MsgGenerating, nil)

	awaitCtx, cancel := context.WithTimeout(ctx, h.awaitTimeout)
	defer cancel()

	stop := NewTypingNotifier(h.api, msg.ChatID, tgbotapi.ChatTyping, h.logger).Start(awaitCtx)
	session, err := h.sessions.Await(awaitCtx, sessionID)
	stop()
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return nil
	}

	h.deliver(ctx, msg.ChatID, session)
	return nil
}

func (h *PlanHandler) deliver(ctx context.Context, chatID int64, session *entity.SessionDTO) {
	switch session.State {
	case entity.RequestStatusSuccess:
		ctxzap.Info(ctx, "plan delivered", zap.Int64("chat_id", chatID))
		h.sendMessage(chatID, render.RenderPlan(session.Plan), h.keyboard.PlanKeyboard())
	case entity.RequestStatusError:
		var markup interface{}
		if session.CanRetry {
			markup = h.keyboard.RetryKeyboard()
		}
		ctxzap.Warn(ctx, "plan request failed",
			zap.Int64("chat_id", chatID),
			zap.String("kind", string(session.Error.Kind)),
		)
		h.sendMessage(chatID, render.RenderError(session.Error), markup)
	default:
		// Abandoned by /cancel while waiting.
		ctxzap.Debug(ctx, "plan request settled without result", zap.String("state", string(session.State)))
	}
}
