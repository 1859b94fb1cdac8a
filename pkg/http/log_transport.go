package http

import (
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const redacted = "[REDACTED]"

// context keys for attaching request metadata
type payloadContextKey struct{}

type logTransport struct {
	transport     http.RoundTripper
	secretHeaders []string
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Any("headers", t.redact(req.Header)),
	}

	if payload, ok := ctx.Value(payloadContextKey{}).([]byte); ok && len(payload) > 0 {
		fields = append(fields, zap.ByteString("payload", payload))
	}

	ctxzap.Debug(ctx, "HTTP outbound request", fields...)

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		ctxzap.Debug(ctx, "HTTP outbound request failed", zap.String("url", req.URL.String()), zap.Error(err))
		return nil, err
	}

	ctxzap.Debug(ctx, "HTTP outbound response",
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Int64("content_length", resp.ContentLength),
	)
	return resp, nil
}

func (t *logTransport) redact(h http.Header) http.Header {
	clone := h.Clone()
	for _, name := range append([]string{"Authorization"}, t.secretHeaders...) {
		if clone.Get(name) != "" {
			clone.Set(name, redacted)
		}
	}
	return clone
}

// WithRequestLogging wraps the HTTP transport with logging of method, URL, headers and payload.
// Authorization and headers registered with WithAPIKeyHeader are redacted.
func WithRequestLogging() HttpOpts {
	return func(c *httpConfig) {
		c.transports = append(c.transports, func(rt http.RoundTripper) http.RoundTripper {
			return &logTransport{
				transport:     rt,
				secretHeaders: c.secretHeaders,
			}
		})
	}
}

// WithRedactedHeaders marks headers set outside this package (by an SDK) as secret.
func WithRedactedHeaders(headers ...string) HttpOpts {
	return func(c *httpConfig) {
		c.secretHeaders = append(c.secretHeaders, headers...)
	}
}
