package speech

import (
	"context"

	"github.com/futig/fitplan-backend/internal/entity"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) (*entity.Audio, error)
}
