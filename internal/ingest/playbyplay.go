package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"nhl-scoreboard/internal/domain"
	"nhl-scoreboard/internal/logging"
	"nhl-scoreboard/internal/metrics"
	"nhl-scoreboard/internal/providers"
	"nhl-scoreboard/internal/store"
)

const (
	defaultPlayByPlayInterval = 5 * time.Second
	playByPlayFailBackoff     = 5 * time.Second

	// rosterCacheSize bounds the player id to name map kept per game.
	rosterCacheSize = 80
)

// LiveSink receives normalized play-by-play updates for the selected game.
type LiveSink interface {
	UpdateFromLiveFeed(u store.LiveUpdate) bool
}

// PlayByPlayPoller fetches the live feed for the selected game. It detects
// new goals by sort order, resolves player names through a per-game roster
// cache, and assembles the recap once the game goes final.
type PlayByPlayPoller struct {
	provider providers.PlayByPlayProvider
	sel      SelectionSource
	sink     LiveSink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	mu        sync.RWMutex
	status    Status
	gameID    int64
	lastFetch time.Time
	lastFail  time.Time
	lastJSON  []byte

	// goal detection cursor
	primed        bool
	lastSortOrder int

	roster       map[int64]string
	rosterGameID int64
}

// NewPlayByPlayPoller constructs a play-by-play poller with sane defaults.
func NewPlayByPlayPoller(provider providers.PlayByPlayProvider, sel SelectionSource, sink LiveSink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *PlayByPlayPoller {
	if interval <= 0 {
		interval = defaultPlayByPlayInterval
	}
	return &PlayByPlayPoller{
		provider: provider,
		sel:      sel,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *PlayByPlayPoller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	ticker := time.NewTicker(checkInterval)

	go func() {
		defer ticker.Stop()
		logging.Info(p.logger, "play-by-play poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.Step(ctx)

		for {
			select {
			case <-ctx.Done():
				logging.Info(p.logger, "play-by-play poller stopped")
				return
			case <-p.done:
				logging.Info(p.logger, "play-by-play poller stopped")
				return
			case <-ticker.C:
				p.Step(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *PlayByPlayPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

// Step runs one loop iteration. Selecting a new game resets the goal cursor
// and fetches immediately; otherwise fetches are spaced by the interval and
// held back while the failure backoff runs down.
func (p *PlayByPlayPoller) Step(ctx context.Context) {
	if p.sel == nil {
		return
	}
	id := p.sel.SelectedGameID()
	if id == 0 {
		p.setIdle(true)
		return
	}
	p.setIdle(false)

	p.mu.Lock()
	if id != p.gameID {
		p.gameID = id
		p.lastJSON = nil
		p.lastFetch = time.Time{}
		p.lastFail = time.Time{}
		p.primed = false
		p.lastSortOrder = -1
		p.roster = nil
		p.rosterGameID = 0
		p.mu.Unlock()
		logging.Info(p.logger, "play-by-play tracking new game", slog.Int64(logging.FieldGameID, id))
		p.fetchOnce(ctx, id)
		return
	}
	lastFetch := p.lastFetch
	lastFail := p.lastFail
	p.mu.Unlock()

	now := p.now()
	if !lastFail.IsZero() && now.Sub(lastFail) < playByPlayFailBackoff {
		return
	}
	if !lastFetch.IsZero() && now.Sub(lastFetch) < p.interval {
		return
	}
	p.fetchOnce(ctx, id)
}

func (p *PlayByPlayPoller) fetchOnce(ctx context.Context, id int64) {
	start := p.now()
	p.recordAttempt(start)

	feed, err := p.provider.FetchPlayByPlay(ctx, id)
	elapsed := time.Since(start)
	p.metrics.RecordPollerCycle(elapsed, err)
	p.metrics.RecordProviderAttempt("nhlweb", elapsed, err)
	if err != nil {
		if rl, ok := providers.AsRateLimitError(err); ok {
			p.metrics.RecordRateLimit(rl.Provider, rl.RetryAfter)
		}
		logging.Error(p.logger, "play-by-play fetch failed", err, slog.Int64(logging.FieldGameID, id))
		p.recordFailure(err, start)
		return
	}

	p.mu.Lock()
	if p.roster == nil || p.rosterGameID != id {
		p.roster = buildRoster(feed.Roster)
		p.rosterGameID = id
	}
	goal := p.detectNewGoalLocked(feed.Plays)
	roster := p.roster
	p.mu.Unlock()

	update := store.LiveUpdate{
		GameID:         id,
		GameState:      feed.GameState,
		StartTimeUTC:   feed.StartTimeUTC,
		UTCOffset:      feed.UTCOffset,
		Period:         feed.Period,
		TimeRemaining:  feed.TimeRemaining,
		InIntermission: feed.InIntermission,
		AwayTeam:       store.TeamIdentity{ID: feed.Away.ID, Abbrev: feed.Away.Abbrev, Name: feed.Away.Name},
		HomeTeam:       store.TeamIdentity{ID: feed.Home.ID, Abbrev: feed.Home.Abbrev, Name: feed.Home.Name},
		AwayScore:      feed.Away.Score,
		HomeScore:      feed.Home.Score,
		AwaySOG:        feed.Away.SOG,
		HomeSOG:        feed.Home.SOG,
		AwayPP:         feed.AwayPP,
		HomePP:         feed.HomePP,
		Goal:           goal,
	}

	if domain.IsFinal(feed.GameState) {
		update.RecapReady = true
		update.RecapGoals = buildRecapGoals(feed, roster)
	}

	if p.sink != nil {
		p.sink.UpdateFromLiveFeed(update)
	}

	raw, marshalErr := json.Marshal(buildPlayByPlayPayload(id, feed, goal))
	if marshalErr != nil {
		logging.Error(p.logger, "play-by-play payload encode failed", marshalErr)
		p.recordFailure(marshalErr, start)
		return
	}

	p.mu.Lock()
	p.lastJSON = raw
	p.lastFetch = start
	p.lastFail = time.Time{}
	p.mu.Unlock()

	p.recordSuccess(start)
	if goal != nil {
		logging.Info(p.logger, "goal detected",
			slog.Int64(logging.FieldGameID, id),
			slog.Int64(logging.FieldEventID, goal.EventID),
			slog.String("scorer", goal.Scorer))
	}
}

// detectNewGoalLocked advances the sort-order cursor and returns the first
// goal past it, if any. The first fetch for a game only primes the cursor so
// history never replays as a fresh goal.
func (p *PlayByPlayPoller) detectNewGoalLocked(plays []domain.Play) *domain.GoalEvent {
	if len(plays) == 0 {
		return nil
	}
	last := plays[len(plays)-1].SortOrder

	if !p.primed {
		p.lastSortOrder = last
		p.primed = true
		return nil
	}
	if p.lastSortOrder < 0 {
		p.lastSortOrder = last
		return nil
	}

	var goal *domain.GoalEvent
	for i := range plays {
		play := plays[i]
		if play.SortOrder <= p.lastSortOrder {
			continue
		}
		if !strings.EqualFold(play.Type, "goal") {
			continue
		}
		goal = &domain.GoalEvent{
			EventID:       play.EventID,
			OwnerTeamID:   play.OwnerTeamID,
			Scorer:        p.resolveNameLocked(play.ScorerName, play.ScoringPlayerID),
			Assist1:       p.resolveNameLocked(play.Assist1Name, play.Assist1PlayerID),
			Assist2:       p.resolveNameLocked(play.Assist2Name, play.Assist2PlayerID),
			TimeRemaining: play.TimeRemaining,
			Period:        play.Period,
		}
		break
	}

	p.lastSortOrder = last
	return goal
}

func (p *PlayByPlayPoller) resolveNameLocked(apiName string, playerID int64) string {
	if apiName != "" {
		return apiName
	}
	if playerID == 0 {
		return ""
	}
	return p.roster[playerID]
}

// LastResponse returns the last good feed as admin API JSON. ok is false
// until the first successful fetch for the current game.
func (p *PlayByPlayPoller) LastResponse() ([]byte, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.lastJSON) == 0 {
		return nil, false
	}
	return p.lastJSON, true
}

// Status returns a snapshot of the poller's recent health.
func (p *PlayByPlayPoller) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// setIdle marks the poller paused while no game is selected so readiness
// probes do not fail an intentionally idle loop.
func (p *PlayByPlayPoller) setIdle(idle bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status.Paused == idle {
		return
	}
	p.status.Paused = idle
	if idle {
		logging.Info(p.logger, "play-by-play poller idle")
	} else {
		logging.Info(p.logger, "play-by-play poller active")
	}
}

func (p *PlayByPlayPoller) recordAttempt(at time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status.LastAttempt = at
}

func (p *PlayByPlayPoller) recordSuccess(at time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *PlayByPlayPoller) recordFailure(err error, at time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
	p.lastFail = at
}

func buildRoster(entries []domain.RosterEntry) map[int64]string {
	roster := make(map[int64]string, rosterCacheSize)
	for _, e := range entries {
		if len(roster) >= rosterCacheSize {
			break
		}
		if e.PlayerID == 0 || e.Name == "" {
			continue
		}
		roster[e.PlayerID] = e.Name
	}
	return roster
}

// buildRecapGoals collects every goal in the feed for the post-game recap,
// attributing each to a team abbrev.
func buildRecapGoals(feed *domain.GameFeed, roster map[int64]string) []domain.RecapGoal {
	var goals []domain.RecapGoal
	for _, play := range feed.Plays {
		if !strings.EqualFold(play.Type, "goal") {
			continue
		}
		abbrev := ""
		switch play.OwnerTeamID {
		case feed.Away.ID:
			abbrev = feed.Away.Abbrev
		case feed.Home.ID:
			abbrev = feed.Home.Abbrev
		}
		scorer := play.ScorerName
		if scorer == "" {
			scorer = roster[play.ScoringPlayerID]
		}
		assist1 := play.Assist1Name
		if assist1 == "" && play.Assist1PlayerID != 0 {
			assist1 = roster[play.Assist1PlayerID]
		}
		assist2 := play.Assist2Name
		if assist2 == "" && play.Assist2PlayerID != 0 {
			assist2 = roster[play.Assist2PlayerID]
		}
		goals = append(goals, domain.RecapGoal{
			EventID:       play.EventID,
			TeamAbbrev:    abbrev,
			Scorer:        scorer,
			Assist1:       assist1,
			Assist2:       assist2,
			TimeRemaining: play.TimeRemaining,
			Period:        play.Period,
		})
	}
	return domain.BoundRecapGoals(goals)
}

func buildPlayByPlayPayload(id int64, feed *domain.GameFeed, goal *domain.GoalEvent) playByPlayPayload {
	payload := playByPlayPayload{
		GameID:    id,
		GameState: feed.GameState,
		Period:    feed.Period,
		Clock: clockPayload{
			TimeRemaining:  feed.TimeRemaining,
			InIntermission: feed.InIntermission,
			Running:        feed.ClockRunning,
		},
		Away:      scorePayload{Score: feed.Away.Score, SOG: feed.Away.SOG},
		Home:      scorePayload{Score: feed.Home.Score, SOG: feed.Home.SOG},
		GoalIsNew: goal != nil,
	}

	if len(feed.Plays) > 0 {
		last := feed.Plays[len(feed.Plays)-1]
		payload.LastPlay = &lastPlayPayload{
			Type:          last.Type,
			TimeRemaining: last.TimeRemaining,
			Period:        last.Period,
			EventID:       last.EventID,
			SortOrder:     last.SortOrder,
		}
	}

	if goal != nil {
		payload.LastGoal = &lastGoalPayload{
			TimeRemaining:     goal.TimeRemaining,
			Period:            goal.Period,
			EventOwnerTeamID:  goal.OwnerTeamID,
			ScoringPlayerName: goal.Scorer,
			Assist1PlayerName: goal.Assist1,
			Assist2PlayerName: goal.Assist2,
		}
	}

	return payload
}
