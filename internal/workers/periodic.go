package workers

import (
	"context"
	"time"
)

// runEvery calls task once per interval until ctx is done.
func runEvery(ctx context.Context, interval time.Duration, task func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			task(ctx)
		}
	}
}
