// Package ollama generates plan text with a local ollama server.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/integration/common"
	"github.com/futig/fitplan-backend/internal/pkg/classifier"
	"github.com/futig/fitplan-backend/internal/pkg/retry"
	pkgHTTP "github.com/futig/fitplan-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

type Connector struct {
	client *api.Client
	config config.OllamaConfig
	logger *zap.Logger
}

func NewConnector(cfg config.OllamaConfig, logger *zap.Logger) (*Connector, error) {
	u, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("ollama: bad host %q: %w", cfg.Host, err)
	}

	return &Connector{
		client: api.NewClient(u, common.NewSDKClient(cfg.Timeout)),
		config: cfg,
		logger: logger,
	}, nil
}

// GenerateText runs a non-streaming generation and returns the concatenated response.
func (c *Connector) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "generating text via ollama", zap.String("model", c.config.Model), zap.Int("prompt_length", len(prompt)))

	text, err := retry.Do(ctx, &c.config.Retry, classifier.IsTransient, func(ctx context.Context) (string, error) {
		stream := false
		req := &api.GenerateRequest{
			Model:  c.config.Model,
			Prompt: prompt,
			Stream: &stream,
		}

		var out strings.Builder
		if err := c.client.Generate(ctx, req, func(gr api.GenerateResponse) error {
			out.WriteString(gr.Response)
			return nil
		}); err != nil {
			var urlErr *url.Error
			if errors.As(err, &urlErr) {
				return "", &pkgHTTP.NetworkError{Err: err}
			}
			return "", err
		}
		return out.String(), nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return "", entity.ErrEmptyResponse
	}

	ctxzap.Info(ctx, "text generated successfully", zap.Int("result_length", len(text)))

	return text, nil
}
