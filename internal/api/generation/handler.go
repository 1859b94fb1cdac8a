package generation

import (
	"context"
	"errors"
	"net/http"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/futig/fitplan-backend/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	plans       PlanUsecase
	assets      AssetsUsecase
	speech      SpeechUsecase
	maxBodySize int64
}

func NewHandler(plans PlanUsecase, assets AssetsUsecase, speech SpeechUsecase, maxBodySize int64) *Handler {
	return &Handler{
		plans:       plans,
		assets:      assets,
		speech:      speech,
		maxBodySize: maxBodySize,
	}
}

// GeneratePlan handles POST /api/generate-plan
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GeneratePlan")

	var profile entity.Profile
	if err := response.DecodeJSON(w, r, h.maxBodySize, &profile); err != nil {
		appErr := decodeError(ctx, err)
		response.JSON(w, appErr.HTTPStatus(), entity.GeneratePlanResponse{
			Error:   appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	plan, err := h.plans.Generate(ctx, &profile)
	if err != nil {
		appErr := asAppError(err)
		ctxzap.Error(ctx, "failed to generate plan", zap.String("kind", string(appErr.Kind)), zap.Error(err))
		response.JSON(w, appErr.HTTPStatus(), entity.GeneratePlanResponse{
			Error:      appErr.Message,
			Details:    appErr.Details,
			NeedsSetup: appErr.NeedsSetup,
		})
		return
	}

	response.Success(w, entity.GeneratePlanResponse{Success: true, Plan: plan})
}

// GenerateImages handles POST /api/generate-images. A missing credential still
// returns the placeholder mapping so the client can render something.
func (h *Handler) GenerateImages(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateImages")

	var req entity.AssetRequest
	if err := response.DecodeJSON(w, r, h.maxBodySize, &req); err != nil && !errors.Is(err, entity.ErrMissingField) {
		appErr := decodeError(ctx, err)
		response.JSON(w, appErr.HTTPStatus(), entity.GenerateImagesResponse{
			Error:   appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	result, err := h.assets.Generate(ctx, &req)
	if err != nil {
		appErr := asAppError(err)
		ctxzap.Warn(ctx, "image generation failed", zap.String("kind", string(appErr.Kind)), zap.Error(err))

		resp := entity.GenerateImagesResponse{
			Error:      appErr.Message,
			Details:    appErr.Details,
			NeedsSetup: appErr.NeedsSetup,
		}
		if result != nil {
			resp.Images = result.References()
		}
		response.JSON(w, appErr.HTTPStatus(), resp)
		return
	}

	response.Success(w, entity.GenerateImagesResponse{Success: true, Images: result.References()})
}

// TextToSpeech handles POST /api/text-to-speech
func (h *Handler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "TextToSpeech")

	var req entity.SpeechRequest
	if err := response.DecodeJSON(w, r, h.maxBodySize, &req); err != nil {
		appErr := decodeError(ctx, err)
		response.JSON(w, appErr.HTTPStatus(), entity.TextToSpeechResponse{
			Error:   appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	audio, err := h.speech.Synthesize(ctx, &req)
	if err != nil {
		appErr := asAppError(err)
		ctxzap.Error(ctx, "failed to synthesize speech", zap.String("kind", string(appErr.Kind)), zap.Error(err))
		response.JSON(w, appErr.HTTPStatus(), entity.TextToSpeechResponse{
			Error:      appErr.Message,
			Details:    appErr.Details,
			NeedsSetup: appErr.NeedsSetup,
		})
		return
	}

	response.Success(w, entity.TextToSpeechResponse{Success: true, Audio: audio.DataURL()})
}

func decodeError(ctx context.Context, err error) *entity.AppError {
	ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
	return &entity.AppError{
		Kind:    entity.ErrorKindValidation,
		Message: "Invalid request body",
		Details: err.Error(),
		Err:     err,
	}
}

// asAppError guards against usecases returning an unclassified error.
func asAppError(err error) *entity.AppError {
	var appErr *entity.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &entity.AppError{
		Kind:    entity.ErrorKindUpstream,
		Message: "Internal server error",
		Details: err.Error(),
		Err:     err,
	}
}
