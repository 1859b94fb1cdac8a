// Package elevenlabs synthesizes speech with the ElevenLabs text-to-speech API.
package elevenlabs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/integration/common"
	"github.com/futig/fitplan-backend/internal/pkg/classifier"
	"github.com/futig/fitplan-backend/internal/pkg/retry"
	pkghttp "github.com/futig/fitplan-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	apiKeyHeader = "xi-api-key"
	audioMPEG    = "audio/mpeg"

	defaultStability       = 0.5
	defaultSimilarityBoost = 0.75
)

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type Connector struct {
	config    config.ElevenLabsConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.ElevenLabsConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger, pkghttp.WithAPIKeyHeader(apiKeyHeader, cfg.APIKey)),
		config:    cfg,
		logger:    logger,
	}
}

// Synthesize narrates text with the given voice.
func (c *Connector) Synthesize(ctx context.Context, text, voiceID string) (*entity.Audio, error) {
	if strings.TrimSpace(c.config.APIKey) == "" {
		return nil, entity.ErrMissingCredential
	}

	ctxzap.Info(ctx, "synthesizing speech via elevenlabs", zap.String("voice_id", voiceID), zap.Int("text_length", len(text)))

	req := &synthesizeRequest{
		Text:    text,
		ModelID: c.config.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       defaultStability,
			SimilarityBoost: defaultSimilarityBoost,
		},
	}
	endpoint := "/v1/text-to-speech/" + url.PathEscape(voiceID)

	raw, err := retry.Do(ctx, &c.config.Retry, classifier.IsTransient, func(ctx context.Context) (*pkghttp.RawResponse, error) {
		return c.connector.DoRawRequest(ctx, http.MethodPost, endpoint, req, audioMPEG)
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}

	if len(raw.Body) == 0 {
		return nil, entity.ErrEmptyResponse
	}

	ctxzap.Info(ctx, "speech synthesized successfully", zap.Int("audio_bytes", len(raw.Body)))

	// data URLs are always rendered as audio/mpeg, whatever the upstream content type
	return &entity.Audio{MIMEType: audioMPEG, Data: raw.Body}, nil
}
