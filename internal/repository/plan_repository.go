package repository

import (
	"context"

	"github.com/futig/fitplan-backend/internal/entity"
)

// PlanRepository defines the interface for saved plan persistence
type PlanRepository interface {
	Create(ctx context.Context, plan entity.SavedPlan) (*entity.SavedPlan, error)
	Get(ctx context.Context, id string) (*entity.SavedPlan, error)
	// List returns plans newest first.
	List(ctx context.Context, skip, limit int) ([]*entity.SavedPlan, error)
	Delete(ctx context.Context, id string) error
}

var (
	_ PlanRepository = &PlanPostgres{}
	_ PlanRepository = &PlanMemory{}
)
