package gemini

import (
	"context"
	"fmt"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/classifier"
	"github.com/futig/fitplan-backend/internal/pkg/retry"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type ImageConnector struct {
	client *Client
	model  string
	retry  *retry.RetryConfig
}

func NewImageConnector(client *Client) *ImageConnector {
	return &ImageConnector{
		client: client,
		model:  client.cfg.ImageModel,
		retry:  &client.cfg.Retry,
	}
}

// GenerateImage returns the first inline image of the response.
// A successful response without an image yields (nil, nil).
func (c *ImageConnector) GenerateImage(ctx context.Context, prompt string) (*entity.GeneratedImage, error) {
	models, err := c.client.models(ctx)
	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityText), string(genai.ModalityImage)},
	}

	resp, err := retry.Do(ctx, c.retry, classifier.IsTransient, func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		resp, err := models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
		if err != nil {
			return nil, transportError(err)
		}
		return resp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate image: %w", err)
	}

	image := firstInlineImage(resp)
	if image == nil {
		ctxzap.Debug(ctx, "gemini response has no inline image", zap.String("model", c.model))
	}

	return image, nil
}

func firstInlineImage(resp *genai.GenerateContentResponse) *entity.GeneratedImage {
	if resp == nil {
		return nil
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = "image/png"
			}
			return &entity.GeneratedImage{MIMEType: mimeType, Data: part.InlineData.Data}
		}
	}
	return nil
}
