package nhlweb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nhl-scoreboard/internal/domain"
	"nhl-scoreboard/internal/providers"
)

// Config controls how the client reaches the NHL web API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client fetches scoreboard and play-by-play feeds from the NHL web API and
// maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	userAgent  string
}

// NewClient constructs an NHL web API client with the provided configuration.
func NewClient(cfg Config) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		userAgent:  ua,
	}
}

// FetchSchedule retrieves the current scoreboard and returns the focused
// day's games.
func (c *Client) FetchSchedule(ctx context.Context) (*domain.ScheduleDay, error) {
	var payload scoreboardResponse
	if err := c.getJSON(ctx, c.baseURL+"/scoreboard/now", &payload); err != nil {
		return nil, err
	}
	return mapScoreboard(&payload), nil
}

// FetchPlayByPlay retrieves the live feed for one game.
func (c *Client) FetchPlayByPlay(ctx context.Context, gameID int64) (*domain.GameFeed, error) {
	if gameID == 0 {
		return nil, fmt.Errorf("nhlweb: game id required")
	}
	url := fmt.Sprintf("%s/gamecenter/%d/play-by-play", c.baseURL, gameID)
	var payload playByPlayResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return mapPlayByPlay(gameID, &payload), nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("nhlweb: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return err
	}

	// The feed occasionally leads with junk bytes; decode from the first
	// brace.
	start := bytes.IndexByte(body, '{')
	if start < 0 {
		return fmt.Errorf("nhlweb: no JSON object in response")
	}
	return json.Unmarshal(body[start:], out)
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
