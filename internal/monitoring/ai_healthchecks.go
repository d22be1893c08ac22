package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) bool

// MonitorAnalyzerHealth runs check every interval and stores the result in
// healthy until ctx is cancelled. The first check runs immediately.
func MonitorAnalyzerHealth(ctx context.Context, healthy *atomic.Bool, interval time.Duration, check HealthCheck) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	probe := func() {
		checkCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()

		isHealthy := check(checkCtx)
		if healthy.Swap(isHealthy) != isHealthy {
			if isHealthy {
				slog.Info("[HealthCheck] Analyzer is healthy again")
			} else {
				slog.Warn("[HealthCheck] Analyzer is unhealthy")
			}
		}
	}

	probe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}
