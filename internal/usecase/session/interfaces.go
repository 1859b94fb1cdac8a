package session

import (
	"context"

	"github.com/futig/fitplan-backend/internal/entity"
)

// Planner runs the plan pipeline. Errors are expected to be *entity.AppError.
type Planner interface {
	Generate(ctx context.Context, profile *entity.Profile) (*entity.Plan, error)
}

type PlanSaver interface {
	Save(ctx context.Context, req *entity.SavePlanRequest) (*entity.SavedPlan, error)
}
