package library

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/validator"
	"github.com/futig/fitplan-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// LibraryUsecase archives generated plans.
type LibraryUsecase struct {
	repo      repository.PlanRepository
	validator *validator.Validator
	logger    *zap.Logger
}

func NewUsecase(repo repository.PlanRepository, validator *validator.Validator, logger *zap.Logger) *LibraryUsecase {
	return &LibraryUsecase{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

func (uc *LibraryUsecase) Save(ctx context.Context, req *entity.SavePlanRequest) (*entity.SavedPlan, error) {
	if err := uc.validator.ValidateProfile(&req.Profile); err != nil {
		return nil, err
	}
	if req.Plan.FullPlan == "" && req.Plan.Workout == "" {
		return nil, fmt.Errorf("%w: plan", entity.ErrMissingField)
	}

	now := time.Now().UTC()
	saved, err := uc.repo.Create(ctx, entity.SavedPlan{
		ID:        uuid.New().String(),
		Profile:   req.Profile,
		Plan:      req.Plan,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	ctxzap.Info(ctx, "plan saved", zap.String("plan_id", saved.ID))

	return saved, nil
}

func (uc *LibraryUsecase) Get(ctx context.Context, id string) (*entity.SavedPlan, error) {
	plan, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return plan, nil
}

// List returns saved plans newest first. A non-positive limit selects the default page size.
func (uc *LibraryUsecase) List(ctx context.Context, skip, limit int) ([]*entity.SavedPlan, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", entity.ErrInvalidParameter)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	plans, err := uc.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (uc *LibraryUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}

	ctxzap.Info(ctx, "plan deleted", zap.String("plan_id", id))

	return nil
}
