package http

import "net/http"

type authTransport struct {
	header    string
	value     string
	transport http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())

	if t.value != "" {
		reqCopy.Header.Set(t.header, t.value)
	}

	return t.transport.RoundTrip(reqCopy)
}

func WithAuthToken(token string) HttpOpts {
	if token == "" {
		return WithAPIKeyHeader("Authorization", "")
	}
	return WithAPIKeyHeader("Authorization", "Bearer "+token)
}

// WithAPIKeyHeader sets a secret header (e.g. xi-api-key) on every request.
// The header is redacted by the logging transport.
func WithAPIKeyHeader(header, key string) HttpOpts {
	return func(c *httpConfig) {
		c.secretHeaders = append(c.secretHeaders, header)
		c.transports = append(c.transports, func(rt http.RoundTripper) http.RoundTripper {
			return &authTransport{
				header:    header,
				value:     key,
				transport: rt,
			}
		})
	}
}
