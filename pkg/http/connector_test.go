package http

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
)

func newTestConnector(url string, opts ...HttpOpts) *Connector {
	return NewConnector(&ConnectorConfig{BaseURL: url, Logger: zap.NewNop()}, opts...)
}

func TestDoRawRequestSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": body["text"]})
	}))
	defer srv.Close()

	conn := newTestConnector(srv.URL, WithAuthToken("secret"), WithRequestLogging())

	raw, err := conn.DoRawRequest(context.Background(), http.MethodPost, "/echo", map[string]string{"text": "hi"}, "application/json")
	require.NoError(t, err)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(raw.Body, &resp))
	assert.Equal(t, "hi", resp["echo"])
}

func TestDoRawRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))
		assert.Equal(t, "key-1", r.Header.Get("xi-api-key"))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte{0xff, 0xfb, 0x90})
	}))
	defer srv.Close()

	conn := newTestConnector(srv.URL, WithRequestLogging(), WithAPIKeyHeader("xi-api-key", "key-1"))

	raw, err := conn.DoRawRequest(context.Background(), http.MethodPost, "/tts", map[string]string{"text": "hi"}, "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "audio/mpeg", raw.ContentType)
	assert.Equal(t, []byte{0xff, 0xfb, 0x90}, raw.Body)
}

func TestDoRawRequestErrors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantTemporary bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "rate limited", status: http.StatusTooManyRequests, wantTemporary: true},
		{name: "server error", status: http.StatusBadGateway, wantTemporary: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", tc.status)
			}))
			defer srv.Close()

			_, err := newTestConnector(srv.URL).DoRawRequest(context.Background(), http.MethodGet, "/", nil, "application/json")

			var httpErr *HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tc.status, httpErr.StatusCode)
			assert.Equal(t, tc.wantTemporary, httpErr.Temporary())
		})
	}
}

func TestDoRawRequestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestConnector(url).DoRawRequest(context.Background(), http.MethodGet, "/", nil, "application/json")

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestLogTransportRedactsSecrets(t *testing.T) {
	lt := &logTransport{secretHeaders: []string{"xi-api-key"}}
	h := http.Header{}
	h.Set("xi-api-key", "key-1")
	h.Set("Authorization", "Bearer t")
	h.Set("Accept", "audio/mpeg")

	got := lt.redact(h)

	assert.Equal(t, redacted, got.Get("xi-api-key"))
	assert.Equal(t, redacted, got.Get("Authorization"))
	assert.Equal(t, "audio/mpeg", got.Get("Accept"))
	assert.Equal(t, "key-1", h.Get("xi-api-key"))
}

func TestNewClientAppliesPoolOptions(t *testing.T) {
	client := NewClient(
		WithRequestTimeout(5*time.Second),
		WithTLSHandshakeTimeout(3*time.Second),
		WithMaxIdleConns(7),
		WithMaxIdleConnsPerHost(0),
	)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, client.Timeout)
	assert.Equal(t, 3*time.Second, transport.TLSHandshakeTimeout)
	assert.Equal(t, 7, transport.MaxIdleConns)
	assert.Equal(t, 10, transport.MaxIdleConnsPerHost)
}
