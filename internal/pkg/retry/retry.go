package retry

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	defaultAttempts = 3
	defaultMaxDelay = 2 * time.Second
	defaultDelay    = 100 * time.Millisecond
)

type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"3"`
	Delay    time.Duration `env:"DELAY" envDefault:"500ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"5s"`
	// Timeout bounds all attempts together, zero means no bound
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.MaxDelay(rc.MaxDelay),
		retry.Delay(rc.Delay),
		retry.LastErrorOnly(true),
	}
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		Attempts: defaultAttempts,
		Delay:    defaultDelay,
		MaxDelay: defaultMaxDelay,
	}
}

// Do runs fn until it succeeds, retryIf rejects the error or attempts run out.
// The returned error is the last attempt's error, unwrapped, so callers can
// still inspect it with errors.Is / errors.As.
func Do[T any](ctx context.Context, rc *RetryConfig, retryIf func(error) bool, fn func(context.Context) (T, error)) (T, error) {
	if rc == nil {
		rc = DefaultRetryConfig()
	}
	if rc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rc.Timeout)
		defer cancel()
	}

	opts := append(rc.ToRetryOptions(),
		retry.Context(ctx),
		retry.RetryIf(retryIf),
		retry.OnRetry(func(n uint, err error) {
			ctxzap.Debug(ctx, "retrying upstream call", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)

	return retry.DoWithData(func() (T, error) {
		return fn(ctx)
	}, opts...)
}
