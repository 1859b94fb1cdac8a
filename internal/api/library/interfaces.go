package library

import (
	"context"

	"github.com/futig/fitplan-backend/internal/entity"
)

type LibraryUsecase interface {
	Save(ctx context.Context, req *entity.SavePlanRequest) (*entity.SavedPlan, error)
	Get(ctx context.Context, id string) (*entity.SavedPlan, error)
	List(ctx context.Context, skip, limit int) ([]*entity.SavedPlan, error)
	Delete(ctx context.Context, id string) error
}
