package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// RunWithRetry connects and runs b, reconnecting when the connection fails.
// attempts bounds consecutive failures; a session that got connected resets
// the count. Attempts are spaced at least delay apart.
func RunWithRetry(ctx context.Context, b *Bot, serverURL, game string, attempts int, delay time.Duration) error {
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	var lastErr error
	for failures := 0; failures < max(attempts, 1); {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		if err := b.Connect(ctx, serverURL, game); err != nil {
			failures++
			lastErr = err
			b.base.Warn("Connect failed", "attempt", failures, "of", attempts, "error", err)
			continue
		}
		failures = 0

		err := b.Run(ctx)
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		failures++
		lastErr = err
		b.base.Warn("Connection lost", "attempt", failures, "of", attempts, "error", err)
	}
	return fmt.Errorf("giving up after %d attempts: %w", attempts, lastErr)
}
