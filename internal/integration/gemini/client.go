// Package gemini generates plan text and item images with the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/integration/common"
	pkgHTTP "github.com/futig/fitplan-backend/pkg/http"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Client lazily creates one genai client shared by the text and image connectors.
// An empty API key is reported as entity.ErrMissingCredential on first use.
type Client struct {
	cfg    config.GeminiConfig
	logger *zap.Logger

	once   sync.Once
	client *genai.Client
	err    error
}

func NewClient(cfg config.GeminiConfig, logger *zap.Logger) *Client {
	return &Client{cfg: cfg, logger: logger}
}

func (c *Client) models(ctx context.Context) (*genai.Models, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, entity.ErrMissingCredential
	}

	c.once.Do(func() {
		cc := &genai.ClientConfig{
			APIKey:     c.cfg.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: common.NewSDKClient(c.cfg.Timeout),
		}
		if c.cfg.BaseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.cfg.BaseURL}
		}

		c.client, c.err = genai.NewClient(ctx, cc)
		if c.err != nil {
			c.err = fmt.Errorf("create genai client: %w", c.err)
			return
		}
		c.logger.Info("genai client initialized",
			zap.String("text_model", c.cfg.TextModel),
			zap.String("image_model", c.cfg.ImageModel),
		)
	})
	if c.err != nil {
		return nil, c.err
	}

	return c.client.Models, nil
}

// transportError marks a failed round trip as a network error so it is retried.
func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &pkgHTTP.NetworkError{Err: err}
	}
	return err
}
