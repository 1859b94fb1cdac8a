package handlers

import (
	"context"
	"mime"
	"sort"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/futig/fitplan-backend/internal/telegram/keyboard"
	"github.com/futig/fitplan-backend/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ImagesHandler sends one picture per exercise and meal. Items that fell back
// to a placeholder are named in text instead.
type ImagesHandler struct {
	BaseHandler
	api    BotAPI
	assets AssetsUsecase
	logger *zap.Logger
}

func NewImagesHandler(api BotAPI, assets AssetsUsecase, sender *MessageSender, logger *zap.Logger) *ImagesHandler {
	return &ImagesHandler{
		BaseHandler: BaseHandler{command: keyboard.CommandImages, messageSender: sender},
		api:         api,
		assets:      assets,
		logger:      logger,
	}
}

func (h *ImagesHandler) Handle(ctx context.Context, msg *Message) error {
	ctx = logger.WithAction(ctx, "telegram_images")

	req, err := ParseAssetRequest(msg.Args)
	if err != nil {
		h.sendMessage(msg.ChatID, render.RenderError(&entity.AppError{
			Kind:    entity.ErrorKindValidation,
			Message: "Invalid request parameters",
			Details: err.Error(),
			Err:     err,
		}), nil)
		return nil
	}

	h.sendMessage(msg.ChatID, render.MsgImagesIntro, nil)

	stop := NewTypingNotifier(h.api, msg.ChatID, tgbotapi.ChatUploadPhoto, h.logger).Start(ctx)
	result, err := h.assets.Generate(ctx, req)
	stop()

	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		if result == nil {
			return nil
		}
	}

	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)

	sent := 0
	for _, name := range names {
		artifact := result[name]
		if artifact.IsPlaceholder() {
			continue
		}
		if err := h.messageSender.SendPhoto(msg.ChatID, name+extension(artifact.MIMEType), artifact.Data, name); err != nil {
			continue
		}
		sent++
	}

	if text := render.RenderPlaceholders(result); text != "" {
		h.sendMessage(msg.ChatID, text, nil)
	}

	ctxzap.Info(ctx, "images delivered",
		zap.Int64("chat_id", msg.ChatID),
		zap.Int("sent", sent),
		zap.Int("placeholders", result.Placeholders()),
	)

	return nil
}

func extension(mimeType string) string {
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".png"
}
