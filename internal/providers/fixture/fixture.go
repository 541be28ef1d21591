package fixture

import (
	"context"
	"sync"

	"nhl-scoreboard/internal/domain"
)

// Provider serves a static game useful for local testing without reaching the
// NHL API. Each play-by-play fetch advances a small scripted game so goal
// detection and the celebration overlay can be exercised offline.
type Provider struct {
	mu      sync.Mutex
	fetches int
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchSchedule returns a single-game slate.
func (p *Provider) FetchSchedule(ctx context.Context) (*domain.ScheduleDay, error) {
	_ = ctx
	return &domain.ScheduleDay{
		Date: "2026-03-01",
		Games: []domain.ScheduledGame{
			{
				GameID:       2024029999,
				GameState:    domain.StateLive,
				StartTimeUTC: "2026-03-01T23:30:00Z",
				UTCOffset:    "-05:00",
				Away:         domain.ScheduledTeam{Abbrev: "MTL", Name: "Canadiens", Score: 1, SOG: 12},
				Home:         domain.ScheduledTeam{Abbrev: "TOR", Name: "Maple Leafs", Score: 1, SOG: 15},
				Period:       2,
			},
		},
	}, nil
}

// FetchPlayByPlay returns the scripted feed. The third fetch and later carry
// a goal event so the edge fires once polling is underway.
func (p *Provider) FetchPlayByPlay(ctx context.Context, gameID int64) (*domain.GameFeed, error) {
	_ = ctx

	p.mu.Lock()
	p.fetches++
	fetches := p.fetches
	p.mu.Unlock()

	feed := &domain.GameFeed{
		GameID:        gameID,
		GameState:     domain.StateLive,
		StartTimeUTC:  "2026-03-01T23:30:00Z",
		UTCOffset:     "-05:00",
		Period:        2,
		TimeRemaining: "08:15",
		ClockRunning:  true,
		Away:          domain.FeedTeam{ID: 8, Abbrev: "MTL", Name: "Montreal Canadiens", Score: 1, SOG: 12},
		Home:          domain.FeedTeam{ID: 10, Abbrev: "TOR", Name: "Toronto Maple Leafs", Score: 1, SOG: 15},
		Roster: []domain.RosterEntry{
			{PlayerID: 8480018, Name: "Nick Suzuki"},
			{PlayerID: 8481540, Name: "Cole Caufield"},
		},
		Plays: []domain.Play{
			{EventID: 101, SortOrder: 50, Type: "shot-on-goal", Period: 2},
		},
	}

	if fetches >= 3 {
		feed.Away.Score = 2
		feed.Plays = append(feed.Plays, domain.Play{
			EventID:         102,
			SortOrder:       75,
			Type:            "goal",
			Period:          2,
			TimeRemaining:   "08:15",
			OwnerTeamID:     8,
			ScoringPlayerID: 8480018,
			ScorerName:      "Nick Suzuki",
			Assist1PlayerID: 8481540,
			Assist1Name:     "Cole Caufield",
		})
	}

	return feed, nil
}
