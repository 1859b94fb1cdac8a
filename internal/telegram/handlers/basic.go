package handlers

import (
	"context"
	"errors"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/telegram/keyboard"
	"github.com/futig/fitplan-backend/internal/telegram/render"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// StaticHandler answers with fixed text (/start, /help)
type StaticHandler struct {
	BaseHandler
	text string
}

func NewStartHandler(sender *MessageSender) *StaticHandler {
	return &StaticHandler{BaseHandler: BaseHandler{command: keyboard.CommandStart, messageSender: sender}, text: render.MsgWelcome}
}

func NewHelpHandler(sender *MessageSender) *StaticHandler {
	return &StaticHandler{BaseHandler: BaseHandler{command: keyboard.CommandHelp, messageSender: sender}, text: render.MsgHelp}
}

func (h *StaticHandler) Handle(_ context.Context, msg *Message) error {
	h.sendMessage(msg.ChatID, h.text, nil)
	return nil
}

// CancelHandler drops the chat's session together with any in-flight request
type CancelHandler struct {
	BaseHandler
	sessions SessionUsecase
}

func NewCancelHandler(sessions SessionUsecase, sender *MessageSender) *CancelHandler {
	return &CancelHandler{
		BaseHandler: BaseHandler{command: keyboard.CommandCancel, messageSender: sender},
		sessions:    sessions,
	}
}

func (h *CancelHandler) Handle(ctx context.Context, msg *Message) error {
	err := h.sessions.Delete(ctx, SessionID(msg.ChatID))
	if err != nil && !errors.Is(err, entity.ErrSessionNotFound) {
		return err
	}

	ctxzap.Info(ctx, "telegram session cancelled", zap.Int64("chat_id", msg.ChatID))
	h.sendMessage(msg.ChatID, render.MsgCancelled, nil)
	return nil
}
