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

type TextConnector struct {
	client *Client
	model  string
	retry  *retry.RetryConfig
}

func NewTextConnector(client *Client) *TextConnector {
	return &TextConnector{
		client: client,
		model:  client.cfg.TextModel,
		retry:  &client.cfg.Retry,
	}
}

// GenerateText sends the prompt and returns the model's raw text.
func (c *TextConnector) GenerateText(ctx context.Context, prompt string) (string, error) {
	models, err := c.client.models(ctx)
	if err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "generating text via gemini", zap.String("model", c.model), zap.Int("prompt_length", len(prompt)))

	text, err := retry.Do(ctx, c.retry, classifier.IsTransient, func(ctx context.Context) (string, error) {
		resp, err := models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
		if err != nil {
			return "", transportError(err)
		}
		return resp.Text(), nil
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if text == "" {
		return "", entity.ErrEmptyResponse
	}

	ctxzap.Info(ctx, "text generated successfully", zap.Int("result_length", len(text)))

	return text, nil
}
