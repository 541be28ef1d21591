package fixture

import (
	"context"
	"testing"
)

func TestFetchScheduleIsStable(t *testing.T) {
	p := New()
	day, err := p.FetchSchedule(context.Background())
	if err != nil {
		t.Fatalf("FetchSchedule: %v", err)
	}
	if len(day.Games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(day.Games))
	}
	if day.Games[0].GameID != 2024029999 {
		t.Fatalf("unexpected game id %d", day.Games[0].GameID)
	}
}

func TestFetchPlayByPlayScriptsGoal(t *testing.T) {
	p := New()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		feed, err := p.FetchPlayByPlay(ctx, 2024029999)
		if err != nil {
			t.Fatalf("fetch %d: %v", i+1, err)
		}
		if len(feed.Plays) != 1 {
			t.Fatalf("fetch %d: expected no goal yet, got %d plays", i+1, len(feed.Plays))
		}
	}

	feed, err := p.FetchPlayByPlay(ctx, 2024029999)
	if err != nil {
		t.Fatalf("third fetch: %v", err)
	}
	if len(feed.Plays) != 2 || feed.Plays[1].Type != "goal" {
		t.Fatalf("expected scripted goal on third fetch, got %+v", feed.Plays)
	}
	if feed.Away.Score != 2 {
		t.Fatalf("expected score bump with goal, got %d", feed.Away.Score)
	}
}
