package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/futig/fitplan-backend/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase     SessionUsecase
	maxBodySize int64
}

func NewHandler(usecase SessionUsecase, maxBodySize int64) *Handler {
	return &Handler{
		usecase:     usecase,
		maxBodySize: maxBodySize,
	}
}

// CreateSession handles POST /api/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateSession")

	response.Created(w, h.usecase.Create(ctx))
}

// GetSession handles GET /api/sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := h.sessionContext(r, "GetSession")

	session, err := h.usecase.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, session)
}

// GeneratePlan handles POST /api/sessions/{id}/generate. Generation continues in
// the background; the client polls GetSession.
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	ctx := h.sessionContext(r, "GeneratePlan")

	var profile entity.Profile
	if err := response.DecodeJSON(w, r, h.maxBodySize, &profile); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	session, err := h.usecase.Generate(ctx, chi.URLParam(r, "id"), &profile)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Accepted(w, session)
}

// RetryPlan handles POST /api/sessions/{id}/retry
func (h *Handler) RetryPlan(w http.ResponseWriter, r *http.Request) {
	ctx := h.sessionContext(r, "RetryPlan")

	session, err := h.usecase.Retry(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Accepted(w, session)
}

// SavePlan handles POST /api/sessions/{id}/save
func (h *Handler) SavePlan(w http.ResponseWriter, r *http.Request) {
	ctx := h.sessionContext(r, "SavePlan")

	saved, err := h.usecase.Save(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, saved)
}

// DeleteSession handles DELETE /api/sessions/{id}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := h.sessionContext(r, "DeleteSession")

	if err := h.usecase.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.NoContent(w)
}

func (h *Handler) sessionContext(r *http.Request, action string) context.Context {
	ctx := logger.WithAction(r.Context(), action)
	return logger.AddFields(ctx, zap.String("session_id", chi.URLParam(r, "id")))
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Debug(ctx, "responding with error", zap.Int("status", status), zap.Error(err))
		message = message + ": " + err.Error()
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var appErr *entity.AppError

	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "session not found", nil)
	case errors.Is(err, entity.ErrRequestInFlight),
		errors.Is(err, entity.ErrRetryDisabled),
		errors.Is(err, entity.ErrNothingToRetry),
		errors.Is(err, entity.ErrNoPlan):
		h.respondError(ctx, w, http.StatusConflict, err.Error(), nil)
	case errors.As(err, &appErr):
		h.respondError(ctx, w, appErr.HTTPStatus(), appErr.Message, nil)
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrMissingField):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request", err)
	default:
		ctxzap.Error(ctx, "session request failed", zap.Error(err))
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", nil)
	}
}
