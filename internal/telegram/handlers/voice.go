package handlers

import (
	"context"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/futig/fitplan-backend/internal/telegram/keyboard"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// VoiceHandler narrates the chat's current plan
type VoiceHandler struct {
	BaseHandler
	api      BotAPI
	sessions SessionUsecase
	speech   SpeechUsecase
	logger   *zap.Logger
}

func NewVoiceHandler(api BotAPI, sessions SessionUsecase, speech SpeechUsecase, sender *MessageSender, logger *zap.Logger) *VoiceHandler {
	return &VoiceHandler{
		BaseHandler: BaseHandler{command: keyboard.CommandVoice, messageSender: sender},
		api:         api,
		sessions:    sessions,
		speech:      speech,
		logger:      logger,
	}
}

func (h *VoiceHandler) Handle(ctx context.Context, msg *Message) error {
	ctx = logger.WithAction(ctx, "telegram_voice")

	session, err := h.sessions.Get(ctx, SessionID(msg.ChatID))
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return nil
	}
	if session.State != entity.RequestStatusSuccess || session.Plan == nil {
		h.HandleError(ctx, msg.ChatID, entity.ErrNoPlan)
		return nil
	}

	stop := NewTypingNotifier(h.api, msg.ChatID, tgbotapi.ChatUploadVoice, h.logger).Start(ctx)
	// An empty voice id selects the configured default.
	audio, err := h.speech.NarratePlan(ctx, session.Plan, msg.Args)
	stop()
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return nil
	}

	if err := h.messageSender.SendAudio(msg.ChatID, "plan.mp3", audio.Data); err != nil {
		return err
	}

	ctxzap.Info(ctx, "narration delivered", zap.Int64("chat_id", msg.ChatID), zap.Int("bytes", len(audio.Data)))
	return nil
}
