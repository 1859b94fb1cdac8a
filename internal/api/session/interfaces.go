package session

import (
	"context"

	"github.com/futig/fitplan-backend/internal/entity"
)

type SessionUsecase interface {
	Create(ctx context.Context) *entity.SessionDTO
	Get(ctx context.Context, id string) (*entity.SessionDTO, error)
	Generate(ctx context.Context, id string, profile *entity.Profile) (*entity.SessionDTO, error)
	Retry(ctx context.Context, id string) (*entity.SessionDTO, error)
	Save(ctx context.Context, id string) (*entity.SavedPlan, error)
	Delete(ctx context.Context, id string) error
}
