package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nhl-scoreboard/internal/domain"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = time.Second
)

// retryingProvider wraps a FeedProvider with exponential backoff retries.
type retryingProvider struct {
	inner       FeedProvider
	logger      *slog.Logger
	maxAttempts int
	base        time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/base are <= 0, defaults are used.
func NewRetryingProvider(inner FeedProvider, logger *slog.Logger, maxAttempts int, base time.Duration) FeedProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if base <= 0 {
		base = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		base:        base,
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context) (*domain.ScheduleDay, error) {
	var day *domain.ScheduleDay
	err := r.retry(ctx, "schedule", func() error {
		d, err := r.inner.FetchSchedule(ctx)
		if err != nil {
			return err
		}
		day = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (r *retryingProvider) FetchPlayByPlay(ctx context.Context, gameID int64) (*domain.GameFeed, error) {
	var feed *domain.GameFeed
	err := r.retry(ctx, "playbyplay", func() error {
		f, err := r.inner.FetchPlayByPlay(ctx, gameID)
		if err != nil {
			return err
		}
		feed = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return feed, nil
}

func (r *retryingProvider) retry(ctx context.Context, op string, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.base
	bo.RandomizationFactor = 0.2

	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, "retry", "provider fetch retry",
			slog.String("op", op),
			slog.Duration("delay", delay),
			slog.Any("err", err))
	}

	err := backoff.RetryNotify(fn,
		backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx),
		notify)
	if err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, "retry", "provider fetch failed",
			slog.String("op", op),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Any("err", err))
	}
	return err
}
