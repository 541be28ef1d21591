package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nhl-scoreboard/internal/domain"
)

// rateLimitedProvider wraps a FeedProvider and enforces a minimum interval
// between upstream calls, shared across both endpoints.
type rateLimitedProvider struct {
	next     FeedProvider
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	nextAt time.Time
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewRateLimitedProvider returns a FeedProvider that spaces calls at least
// interval apart. Calls block until their slot to avoid hammering the
// upstream API when several pollers share one provider.
func NewRateLimitedProvider(next FeedProvider, interval time.Duration, logger *slog.Logger) FeedProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context) (*domain.ScheduleDay, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.waitTurn(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchSchedule(ctx)
}

func (p *rateLimitedProvider) FetchPlayByPlay(ctx context.Context, gameID int64) (*domain.GameFeed, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.waitTurn(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPlayByPlay(ctx, gameID)
}

// waitTurn reserves the next call slot and blocks until it arrives.
func (p *rateLimitedProvider) waitTurn(ctx context.Context) error {
	p.mu.Lock()
	now := p.now()
	wait := p.nextAt.Sub(now)
	if wait < 0 {
		wait = 0
	}
	start := now.Add(wait)
	p.nextAt = start.Add(p.interval)
	p.mu.Unlock()

	if wait == 0 {
		return nil
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, "rate-limited", "delaying provider call",
		slog.Duration("wait", wait))
	return p.sleep(ctx, wait)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
