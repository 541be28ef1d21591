package providers

import (
	"context"

	"nhl-scoreboard/internal/domain"
)

// ScheduleProvider fetches the current day's slate of games, normalized to
// domain models.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context) (*domain.ScheduleDay, error)
}

// PlayByPlayProvider fetches the live feed for a single game.
type PlayByPlayProvider interface {
	FetchPlayByPlay(ctx context.Context, gameID int64) (*domain.GameFeed, error)
}

// FeedProvider combines all provider capabilities.
type FeedProvider interface {
	ScheduleProvider
	PlayByPlayProvider
}
