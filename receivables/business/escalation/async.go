package escalation

import (
	"context"
	"time"

	"encore.dev/rlog"
)

const asyncTimeout = 10 * time.Second

// safeAsync runs fn in a goroutine with its own timeout. Failures are logged and never
// reach the caller.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}
