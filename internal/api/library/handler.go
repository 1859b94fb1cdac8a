package library

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/futig/fitplan-backend/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase     LibraryUsecase
	maxBodySize int64
}

func NewHandler(usecase LibraryUsecase, maxBodySize int64) *Handler {
	return &Handler{
		usecase:     usecase,
		maxBodySize: maxBodySize,
	}
}

// SavePlan handles POST /api/plans
func (h *Handler) SavePlan(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SavePlan")

	var req entity.SavePlanRequest
	if err := response.DecodeJSON(w, r, h.maxBodySize, &req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	saved, err := h.usecase.Save(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, saved)
}

// ListPlans handles GET /api/plans
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListPlans")

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	ctxzap.Debug(ctx, "listing plans", zap.Int("skip", skip), zap.Int("limit", limit))

	plans, err := h.usecase.List(ctx, skip, limit)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	if plans == nil {
		plans = []*entity.SavedPlan{}
	}

	response.Success(w, plans)
}

// GetPlan handles GET /api/plans/{id}
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(logger.WithAction(r.Context(), "GetPlan"), zap.String("plan_id", chi.URLParam(r, "id")))

	plan, err := h.usecase.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, plan)
}

// DeletePlan handles DELETE /api/plans/{id}
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(logger.WithAction(r.Context(), "DeletePlan"), zap.String("plan_id", chi.URLParam(r, "id")))

	if err := h.usecase.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.NoContent(w)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Debug(ctx, "responding with error", zap.Int("status", status), zap.Error(err))
		message = message + ": " + err.Error()
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrPlanNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "plan not found", nil)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request", err)
	} else {
		ctxzap.Error(ctx, "plan library request failed", zap.Error(err))
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", nil)
	}
}
