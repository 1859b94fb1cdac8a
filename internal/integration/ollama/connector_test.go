package ollama

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
	pkgHTTP "github.com/futig/fitplan-backend/pkg/http"
)

func testConfig(host string) config.OllamaConfig {
	return config.OllamaConfig{
		Host:    host,
		Model:   "llama3.1",
		Timeout: 5 * time.Second,
		Retry:   retry.RetryConfig{Attempts: 1, Delay: time.Millisecond, MaxDelay: time.Millisecond},
	}
}

func TestGenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.1", req["model"])
		assert.Equal(t, false, req["stream"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"model": "llama3.1", "response": "## WORKOUT PLAN\nRun", "done": true})
	}))
	defer srv.Close()

	conn, err := NewConnector(testConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)

	text, err := conn.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "## WORKOUT PLAN\nRun", text)
}

func TestGenerateTextEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "", "done": true})
	}))
	defer srv.Close()

	conn, err := NewConnector(testConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)

	_, err = conn.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, entity.ErrEmptyResponse)
}

func TestGenerateTextUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	host := srv.URL
	srv.Close()

	conn, err := NewConnector(testConfig(host), zap.NewNop())
	require.NoError(t, err)

	_, err = conn.GenerateText(context.Background(), "prompt")

	var netErr *pkgHTTP.NetworkError
	assert.True(t, errors.As(err, &netErr))
}
