package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"nhl-scoreboard/internal/domain"
	"nhl-scoreboard/internal/logging"
	"nhl-scoreboard/internal/metrics"
	"nhl-scoreboard/internal/providers"
	"nhl-scoreboard/internal/store"
)

const (
	defaultScheduleInterval = 30 * time.Second
	scheduleFailBackoff     = 30 * time.Second

	// checkInterval is how often a poller loop re-evaluates pause state and
	// fetch timing between fetches.
	checkInterval = time.Second
)

// ScheduleSink receives normalized schedule updates for the selected game.
type ScheduleSink interface {
	UpdateFromSchedule(u store.ScheduleUpdate) bool
}

// SchedulePoller fetches the day's slate on an interval. It pauses while a
// game is selected; the play-by-play feed owns the data from then on.
type SchedulePoller struct {
	provider providers.ScheduleProvider
	sel      SelectionSource
	sink     ScheduleSink
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
	lastFetch time.Time
	lastFail  time.Time
	day       *domain.ScheduleDay
	lastJSON  []byte
}

// NewSchedulePoller constructs a schedule poller with sane defaults.
func NewSchedulePoller(provider providers.ScheduleProvider, sel SelectionSource, sink ScheduleSink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *SchedulePoller {
	if interval <= 0 {
		interval = defaultScheduleInterval
	}
	return &SchedulePoller{
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
func (p *SchedulePoller) Start(ctx context.Context) {
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
		logging.Info(p.logger, "schedule poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.Step(ctx)

		for {
			select {
			case <-ctx.Done():
				logging.Info(p.logger, "schedule poller stopped")
				return
			case <-p.done:
				logging.Info(p.logger, "schedule poller stopped")
				return
			case <-ticker.C:
				p.Step(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *SchedulePoller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

// Step runs one loop iteration: it re-checks pause state and fetches when the
// interval (or the failure backoff) has elapsed.
func (p *SchedulePoller) Step(ctx context.Context) {
	if p.sel != nil && p.sel.SelectedGameID() != 0 {
		p.setPaused(true)
		return
	}
	p.setPaused(false)

	now := p.now()
	p.mu.RLock()
	lastFetch := p.lastFetch
	lastFail := p.lastFail
	p.mu.RUnlock()

	if !lastFail.IsZero() && now.Sub(lastFail) < scheduleFailBackoff {
		return
	}
	if !lastFetch.IsZero() && now.Sub(lastFetch) < p.interval {
		return
	}
	p.fetchOnce(ctx)
}

func (p *SchedulePoller) fetchOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	day, err := p.provider.FetchSchedule(ctx)
	elapsed := time.Since(start)
	p.metrics.RecordPollerCycle(elapsed, err)
	p.metrics.RecordProviderAttempt("nhlweb", elapsed, err)
	if err != nil {
		if rl, ok := providers.AsRateLimitError(err); ok {
			p.metrics.RecordRateLimit(rl.Provider, rl.RetryAfter)
		}
		logging.Error(p.logger, "schedule fetch failed", err)
		p.recordFailure(err, start)
		return
	}

	payload := buildSchedulePayload(day)
	raw, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		logging.Error(p.logger, "schedule payload encode failed", marshalErr)
		p.recordFailure(marshalErr, start)
		return
	}

	p.mu.Lock()
	p.day = day
	p.lastJSON = raw
	p.lastFetch = start
	p.lastFail = time.Time{}
	p.mu.Unlock()

	p.applySelected(day)
	p.recordSuccess(start)
	logging.Info(p.logger, "schedule refreshed",
		slog.Int(logging.FieldCount, len(day.Games)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
}

// applySelected seeds the snapshot when the slate happens to contain the
// selected game. This covers the window between selection and the first
// play-by-play fetch.
func (p *SchedulePoller) applySelected(day *domain.ScheduleDay) {
	if p.sel == nil || p.sink == nil {
		return
	}
	id := p.sel.SelectedGameID()
	if id == 0 {
		return
	}
	for _, g := range day.Games {
		if g.GameID == id {
			p.sink.UpdateFromSchedule(scheduleUpdateFor(g))
			return
		}
	}
}

// SeedSelection applies the cached slate entry for a newly selected game so
// the display has data before the first play-by-play fetch lands.
func (p *SchedulePoller) SeedSelection(id int64) bool {
	g, ok := p.GameByID(id)
	if !ok || p.sink == nil {
		return false
	}
	return p.sink.UpdateFromSchedule(scheduleUpdateFor(g))
}

// GameByID looks up a game in the last fetched slate.
func (p *SchedulePoller) GameByID(id int64) (domain.ScheduledGame, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.day == nil {
		return domain.ScheduledGame{}, false
	}
	for _, g := range p.day.Games {
		if g.GameID == id {
			return g, true
		}
	}
	return domain.ScheduledGame{}, false
}

// LastResponse returns the last good slate as admin API JSON. ok is false
// until the first successful fetch.
func (p *SchedulePoller) LastResponse() ([]byte, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.lastJSON) == 0 {
		return nil, false
	}
	return p.lastJSON, true
}

// Status returns a snapshot of the poller's recent health.
func (p *SchedulePoller) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

func (p *SchedulePoller) setPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status.Paused == paused {
		return
	}
	p.status.Paused = paused
	if paused {
		logging.Info(p.logger, "schedule poller paused")
	} else {
		logging.Info(p.logger, "schedule poller resumed")
	}
}

func (p *SchedulePoller) recordAttempt(at time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status.LastAttempt = at
}

func (p *SchedulePoller) recordSuccess(at time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *SchedulePoller) recordFailure(err error, at time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
	p.lastFail = at
}

func buildSchedulePayload(day *domain.ScheduleDay) schedulePayload {
	payload := schedulePayload{Games: make([]scheduleGamePayload, 0, len(day.Games))}
	for _, g := range day.Games {
		out := scheduleGamePayload{
			ID:               g.GameID,
			Date:             day.Date,
			StartTimeUTC:     g.StartTimeUTC,
			EasternUTCOffset: g.UTCOffset,
			GameState:        g.GameState,
			Away:             buildTeamPayload(g.Away),
			Home:             buildTeamPayload(g.Home),
			Period:           g.Period,
		}
		if g.TimeRemaining != "" || g.InIntermission || g.ClockRunning {
			out.Clock = &clockPayload{
				TimeRemaining:  g.TimeRemaining,
				InIntermission: g.InIntermission,
				Running:        g.ClockRunning,
			}
		}
		payload.Games = append(payload.Games, out)
	}
	return payload
}

func buildTeamPayload(t domain.ScheduledTeam) teamPayload {
	return teamPayload{
		Abbrev: t.Abbrev,
		Place:  t.Place,
		Name:   t.Name,
		Score:  t.Score,
		SOG:    t.SOG,
	}
}

func scheduleUpdateFor(g domain.ScheduledGame) store.ScheduleUpdate {
	return store.ScheduleUpdate{
		GameID:       g.GameID,
		GameState:    g.GameState,
		StartTimeUTC: g.StartTimeUTC,
		UTCOffset:    g.UTCOffset,
		Away: domain.TeamInfo{
			Abbrev: g.Away.Abbrev,
			Name:   g.Away.Name,
			Score:  g.Away.Score,
		},
		Home: domain.TeamInfo{
			Abbrev: g.Home.Abbrev,
			Name:   g.Home.Name,
			Score:  g.Home.Score,
		},
	}
}
