package resilience

import (
	"context"
	"fmt"
	"time"
)

// WithTimeout bounds a single store call so a hung insert or scan cannot
// stall a pass indefinitely: fn runs under a derived context that is
// cancelled after timeout, and context.DeadlineExceeded is returned once
// the budget is spent. The index and resolution passes wrap every Postgres
// and Redis round trip in this before handing it to Retry. A timeout of
// zero or less disables the bound.
func WithTimeout(ctx context.Context, timeout time.Duration, name string, fn func(ctx context.Context) error) error {
	if timeout <= 0 {
		return fn(ctx)
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- fn(timeoutCtx)
	}()
	select {
	case err := <-done:
		return err
	case <-timeoutCtx.Done():
		if ctx.Err() != nil {
			return fmt.Errorf("%s: parent context cancelled: %w", name, ctx.Err())
		}
		return fmt.Errorf("%s: %w (limit: %v)", name, context.DeadlineExceeded, timeout)
	}
}
