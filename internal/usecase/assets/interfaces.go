package assets

import (
	"context"

	"github.com/futig/fitplan-backend/internal/entity"
)

// ImageGenerator is the image-generation service boundary. A nil image with a nil
// error means the call succeeded but the response carried no inline image.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (*entity.GeneratedImage, error)
}
