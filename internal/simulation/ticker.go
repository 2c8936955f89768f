package simulation

import (
	"context"
	"log/slog"
	"time"
)

// Every calls fn once per interval until ctx ends. A failing call is logged
// and the loop keeps going. A non-positive interval returns immediately.
func Every(ctx context.Context, interval time.Duration, logger *slog.Logger, name string, fn func(ctx context.Context) error) {
	if interval <= 0 {
		logger.Info("[Simulation] Runner disabled", slog.String("runner", name))

		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("[Simulation] Runner started",
		slog.String("runner", name),
		slog.Duration("interval", interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("[Simulation] Runner stopped", slog.String("runner", name))

			return
		case <-ticker.C:
			if err := fn(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("[Simulation] Tick failed",
					slog.String("runner", name),
					slog.Any("error", err),
				)
			}
		}
	}
}
