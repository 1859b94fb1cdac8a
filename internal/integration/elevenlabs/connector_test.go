package elevenlabs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/retry"
	pkghttp "github.com/futig/fitplan-backend/pkg/http"
)

func testConfig(url, key string) config.ElevenLabsConfig {
	return config.ElevenLabsConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           time.Second,
			KeepAlive:             time.Second,
			IdleConnTimeout:       time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
			Url:                   url,
		},
		APIKey:  key,
		ModelID: "eleven_monolingual_v1",
		Retry:   retry.RetryConfig{Attempts: 2, Delay: time.Millisecond, MaxDelay: time.Millisecond},
	}
}

func TestSynthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/text-to-speech/voice-1", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("xi-api-key"))
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))

		var req synthesizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Keep going", req.Text)
		assert.Equal(t, "eleven_monolingual_v1", req.ModelID)
		assert.Equal(t, 0.5, req.VoiceSettings.Stability)
		assert.Equal(t, 0.75, req.VoiceSettings.SimilarityBoost)

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	audio, err := NewConnector(testConfig(srv.URL, "secret"), zap.NewNop()).
		Synthesize(context.Background(), "Keep going", "voice-1")

	require.NoError(t, err)
	assert.Equal(t, "audio/mpeg", audio.MIMEType)
	assert.Equal(t, []byte("mp3-bytes"), audio.Data)
	assert.Equal(t, "data:audio/mpeg;base64,bXAzLWJ5dGVz", audio.DataURL())
}

func TestSynthesizeErrors(t *testing.T) {
	t.Run("missing key never calls upstream", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("unexpected upstream call")
		}))
		defer srv.Close()

		_, err := NewConnector(testConfig(srv.URL, ""), zap.NewNop()).Synthesize(context.Background(), "hi", "v")
		assert.ErrorIs(t, err, entity.ErrMissingCredential)
	})

	t.Run("unauthorized is returned as http error", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			http.Error(w, `{"detail":"invalid_api_key"}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := NewConnector(testConfig(srv.URL, "bad"), zap.NewNop()).Synthesize(context.Background(), "hi", "v")

		var httpErr *pkghttp.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
		assert.Equal(t, 1, calls)
	})
}
