package async

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
)

// Dispatch runs handler in a new goroutine on a background context that keeps
// the caller's logger. The caller's cancellation does not propagate, so a
// request that returns early does not abort the job. Errors and panics are logged.
func Dispatch(ctx context.Context, name string, handler func(ctx context.Context) error) {
	logger := logging.From(ctx).With("job", name)
	bgCtx := logging.With(context.Background(), logger)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logger.Error("async handler failed", "error", goerr.Unwrap(err))
		}
	}()
}
