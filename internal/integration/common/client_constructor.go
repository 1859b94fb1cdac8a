package common

import (
	"net/http"
	"time"

	"github.com/futig/fitplan-backend/internal/config"
	pkgHTTP "github.com/futig/fitplan-backend/pkg/http"
	"go.uber.org/zap"
)

// NewBaseConnector builds a JSON connector for services reached over plain HTTP.
// authOpts carry the service's credential transport.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger, authOpts ...pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	opts := []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithTLSHandshakeTimeout(cfg.TLSHandshakeTimeout),
		pkgHTTP.WithMaxIdleConns(cfg.MaxIdleConns),
		pkgHTTP.WithMaxIdleConnsPerHost(cfg.MaxIdleConnsPerHost),
	}
	opts = append(opts, authOpts...)
	opts = append(opts, pkgHTTP.WithRequestLogging())

	return pkgHTTP.NewConnector(connCfg, opts...)
}

// NewSDKClient builds the *http.Client handed to SDK clients (genai, ollama),
// so their traffic goes through the same logging transport.
func NewSDKClient(timeout time.Duration) *http.Client {
	return pkgHTTP.NewClient(
		pkgHTTP.WithRequestTimeout(timeout),
		pkgHTTP.WithResponseHeaderTimeout(timeout),
		pkgHTTP.WithRedactedHeaders("x-goog-api-key"),
		pkgHTTP.WithRequestLogging(),
	)
}
