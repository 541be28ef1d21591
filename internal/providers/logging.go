package providers

import (
	"context"
	"log/slog"
)

// logWithProvider tags every entry with the provider name so schedule and
// play-by-play fetch logs stay distinguishable. Nil loggers are dropped.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}
