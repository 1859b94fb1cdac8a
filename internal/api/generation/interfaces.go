package generation

import (
	"context"

	"github.com/futig/fitplan-backend/internal/entity"
)

type PlanUsecase interface {
	Generate(ctx context.Context, profile *entity.Profile) (*entity.Plan, error)
}

type AssetsUsecase interface {
	Generate(ctx context.Context, req *entity.AssetRequest) (entity.AssetResult, error)
}

type SpeechUsecase interface {
	Synthesize(ctx context.Context, req *entity.SpeechRequest) (*entity.Audio, error)
}
