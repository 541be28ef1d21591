package nhlweb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nhl-scoreboard/internal/providers"
)

const scoreboardFixture = `{
  "focusedDate": "2026-03-01",
  "gamesByDate": [
    {
      "date": "2026-02-28",
      "games": [{"id": 2024020099, "gameState": "OFF"}]
    },
    {
      "date": "2026-03-01",
      "games": [
        {
          "id": 2024020123,
          "startTimeUTC": "2026-03-01T23:30:00Z",
          "easternUTCOffset": "-05:00",
          "gameState": "LIVE",
          "awayTeam": {"abbrev": "MTL", "name": {"default": "Canadiens"}, "score": 2, "sog": 18},
          "homeTeam": {"abbrev": "TOR", "name": {"default": "Maple Leafs"}, "score": 1, "sog": 22},
          "periodDescriptor": {"number": 2},
          "clock": {"timeRemaining": "08:15", "inIntermission": false, "running": true}
        }
      ]
    }
  ]
}`

const playByPlayFixture = `{
  "gameState": "LIVE",
  "startTimeUTC": "2026-03-01T23:30:00Z",
  "venueUTCOffset": "-05:00",
  "periodDescriptor": {"number": 2},
  "clock": {"timeRemaining": "08:15", "inIntermission": false, "running": true},
  "awayTeam": {"id": 8, "abbrev": "MTL", "placeName": {"default": "Montreal"}, "commonName": {"default": "Canadiens"}, "score": 2, "sog": 18},
  "homeTeam": {"id": 10, "abbrev": "TOR", "placeName": {"default": "Toronto"}, "commonName": {"default": "Maple Leafs"}, "score": 1, "sog": 22},
  "situation": {
    "awayTeam": {"situationDescriptions": ["PP"]},
    "homeTeam": {"situationDescriptions": []}
  },
  "rosterSpots": [
    {"playerId": 8480018, "firstName": {"default": "Nick"}, "lastName": {"default": "Suzuki"}}
  ],
  "plays": [
    {"eventId": 101, "sortOrder": 50, "typeDescKey": "shot-on-goal", "periodDescriptor": {"number": 2}},
    {
      "eventId": 102,
      "sortOrder": 75,
      "typeDescKey": "goal",
      "timeRemaining": "08:15",
      "periodDescriptor": {"number": 2},
      "details": {
        "eventOwnerTeamId": 8,
        "scoringPlayerId": 8480018,
        "scoringPlayerName": {"default": "Nick Suzuki"},
        "assist1PlayerId": 8481540,
        "assist1PlayerName": {"default": "Cole Caufield"}
      }
    }
  ]
}`

func TestFetchSchedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scoreboard/now" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != defaultUserAgent {
			t.Fatalf("unexpected user agent %q", ua)
		}
		w.Write([]byte(scoreboardFixture))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	day, err := c.FetchSchedule(context.Background())
	if err != nil {
		t.Fatalf("FetchSchedule: %v", err)
	}

	if day.Date != "2026-03-01" {
		t.Fatalf("expected focused day, got %q", day.Date)
	}
	if len(day.Games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(day.Games))
	}
	g := day.Games[0]
	if g.GameID != 2024020123 || g.GameState != "LIVE" {
		t.Fatalf("unexpected game %+v", g)
	}
	if g.UTCOffset != "-05:00" {
		t.Fatalf("UTCOffset = %q", g.UTCOffset)
	}
	if g.Away.Abbrev != "MTL" || g.Away.Score != 2 || g.Home.SOG != 22 {
		t.Fatalf("unexpected teams %+v / %+v", g.Away, g.Home)
	}
	if g.TimeRemaining != "08:15" || !g.ClockRunning {
		t.Fatalf("unexpected clock %+v", g)
	}
}

func TestFetchPlayByPlay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gamecenter/2024020123/play-by-play" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(playByPlayFixture))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	feed, err := c.FetchPlayByPlay(context.Background(), 2024020123)
	if err != nil {
		t.Fatalf("FetchPlayByPlay: %v", err)
	}

	if feed.GameID != 2024020123 || feed.GameState != "LIVE" {
		t.Fatalf("unexpected feed header %+v", feed)
	}
	if feed.Away.Name != "Montreal Canadiens" {
		t.Fatalf("away name = %q", feed.Away.Name)
	}
	if !feed.AwayPP || feed.HomePP {
		t.Fatalf("power play flags = %v/%v", feed.AwayPP, feed.HomePP)
	}
	if len(feed.Roster) != 1 || feed.Roster[0].Name != "Nick Suzuki" {
		t.Fatalf("unexpected roster %+v", feed.Roster)
	}
	if len(feed.Plays) != 2 {
		t.Fatalf("expected 2 plays, got %d", len(feed.Plays))
	}
	goal := feed.Plays[1]
	if goal.Type != "goal" || goal.EventID != 102 || goal.SortOrder != 75 {
		t.Fatalf("unexpected goal play %+v", goal)
	}
	if goal.ScorerName != "Nick Suzuki" || goal.Assist1Name != "Cole Caufield" {
		t.Fatalf("unexpected goal names %+v", goal)
	}
}

func TestFetchPlayByPlayRequiresGameID(t *testing.T) {
	c := NewClient(Config{})
	if _, err := c.FetchPlayByPlay(context.Background(), 0); err == nil {
		t.Fatalf("expected error for zero game id")
	}
}

func TestGetJSONSkipsLeadingGarbage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\xef\xbb\xbf\r\n" + scoreboardFixture))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	day, err := c.FetchSchedule(context.Background())
	if err != nil {
		t.Fatalf("FetchSchedule: %v", err)
	}
	if day.Date != "2026-03-01" {
		t.Fatalf("expected parsed day, got %q", day.Date)
	}
}

func TestGetJSONRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.FetchSchedule(context.Background())
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rl.RetryAfter != 7*time.Second {
		t.Fatalf("RetryAfter = %v", rl.RetryAfter)
	}
}

func TestGetJSONUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if _, err := c.FetchSchedule(context.Background()); err == nil {
		t.Fatalf("expected error on 502")
	}
}
