// Package display owns the per-frame state machine that decides which scene
// draws the panel: the standard scoreboard, the post-game recap carousel, or
// the goal celebration overlay preempting either.
package display

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"nhl-scoreboard/internal/domain"
	"nhl-scoreboard/internal/logging"
	"nhl-scoreboard/internal/metrics"
	"nhl-scoreboard/internal/panel"
	"nhl-scoreboard/internal/render"
	"nhl-scoreboard/internal/scenes"
)

const (
	// DefaultFrameInterval paces the display loop at roughly 30 fps.
	DefaultFrameInterval = 33 * time.Millisecond

	// overlayDuration caps the goal celebration overlay; the scene's own
	// content runs slightly shorter.
	overlayDuration = 17 * time.Second

	// standardDwell is the minimum time the final score stays up before
	// the recap carousel may take over.
	standardDwell = 20 * time.Second
)

// SnapshotSource is the store surface the director reads each frame.
type SnapshotSource interface {
	Snapshot() (domain.GameSnapshot, bool)
	ClearGoalFlag()
}

// LogoCache is the logo surface the director invalidates on game change.
type LogoCache interface {
	Get(abbrev string) (render.Bitmap, bool)
	Clear()
}

type baseMode int

const (
	modeStandard baseMode = iota
	modeRecap
)

// Director drives the panel. Tick is cheap and safe to call faster than the
// frame interval; extra calls are no-ops.
type Director struct {
	log     *slog.Logger
	rec     *metrics.Recorder
	store   SnapshotSource
	logos   LogoCache
	panel   *panel.Panel
	clock   func() time.Time
	instant time.Duration

	scoreboard *scenes.Scoreboard
	goal       *scenes.Goal
	recap      *scenes.Recap

	mu            sync.Mutex
	frameInterval time.Duration
	epoch         time.Time
	epochSet      bool
	lastFrame     time.Duration
	lastGameID    int64

	overlayActive bool
	overlayStart  time.Duration
	overlaySnap   domain.GameSnapshot
	goalKey       string

	mode      baseMode
	modeStart time.Duration
}

// New wires a director over the store, logo cache and panel.
func New(store SnapshotSource, logos LogoCache, pnl *panel.Panel, rec *metrics.Recorder, log *slog.Logger) *Director {
	return &Director{
		log:           log,
		rec:           rec,
		store:         store,
		logos:         logos,
		panel:         pnl,
		clock:         time.Now,
		frameInterval: DefaultFrameInterval,
		lastFrame:     -DefaultFrameInterval,
		scoreboard:    scenes.NewScoreboard(logos),
		goal:          scenes.NewGoal(logos),
		recap:         scenes.NewRecap(logos),
	}
}

// WithFrameInterval overrides the pacing interval.
func (d *Director) WithFrameInterval(interval time.Duration) *Director {
	if interval > 0 {
		d.frameInterval = interval
		d.lastFrame = -interval
	}
	return d
}

// WithClock overrides the wall clock. Intended for tests.
func (d *Director) WithClock(now func() time.Time) *Director {
	d.clock = now
	d.scoreboard.WithClock(now)
	return d
}

// Run ticks the display until the context ends.
func (d *Director) Run(ctx context.Context) {
	ticker := time.NewTicker(d.frameInterval)
	defer ticker.Stop()

	logging.Info(d.log, "display loop started", slog.Duration("frame_interval", d.frameInterval))
	for {
		select {
		case <-ctx.Done():
			logging.Info(d.log, "display loop stopped")
			return
		case now := <-ticker.C:
			d.Tick(now)
		}
	}
}

// SetEnabled turns panel output on or off. While off, Tick does no scene
// work and the panel shows black.
func (d *Director) SetEnabled(enabled bool) {
	d.panel.SetEnabled(enabled)
}

// Enabled reports whether panel output is on.
func (d *Director) Enabled() bool {
	return d.panel.Enabled()
}

// PreviewGoal plays the goal celebration against the current snapshot with
// placeholder names. It fails when no game is selected.
func (d *Director) PreviewGoal() bool {
	snap, ok := d.store.Snapshot()
	if !ok || snap.GameID == 0 {
		return false
	}

	snap.Goal.Scorer = "Connor McDavid"
	snap.Goal.Assist1 = "Nick Suzuki"
	snap.Goal.Assist2 = "Juraj Slafkovsky"
	snap.Goal.TimeRemaining = "00:00"
	if snap.Period > 0 {
		snap.Goal.Period = snap.Period
	} else {
		snap.Goal.Period = 1
	}
	if snap.Home.ID != 0 {
		snap.Goal.OwnerTeamID = snap.Home.ID
	} else {
		snap.Goal.OwnerTeamID = snap.Away.ID
	}

	d.mu.Lock()
	d.startOverlay(snap, d.sinceEpochLocked(d.clock()))
	d.mu.Unlock()

	logging.Info(d.log, "goal preview started", slog.Int64(logging.FieldGameID, snap.GameID))
	return true
}

// Tick renders at most one frame for the given instant.
func (d *Director) Tick(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.panel.Enabled() {
		return
	}

	t := d.sinceEpochLocked(now)
	if t-d.lastFrame < d.frameInterval {
		return
	}
	d.lastFrame = t

	started := d.clock()
	snap, _ := d.store.Snapshot()

	if snap.GameID != d.lastGameID {
		d.lastGameID = snap.GameID
		d.goalKey = ""
		d.overlayActive = false
		d.mode = modeStandard
		d.modeStart = t
		d.logos.Clear()
		logging.Info(d.log, "tracked game changed", slog.Int64(logging.FieldGameID, snap.GameID))
	}

	if snap.GoalIsNew {
		key := goalKey(snap)
		if key != d.goalKey {
			d.startOverlay(snap, t)
		}
		d.store.ClearGoalFlag()
	}

	canvas := d.panel.Back()

	if d.overlayActive {
		elapsed := t - d.overlayStart
		if elapsed <= overlayDuration {
			// The overlay renders the snapshot frozen at trigger time so
			// later polls cannot shift the animation mid-play.
			d.goal.Render(canvas, d.overlaySnap, elapsed)
			d.publish(started)
			return
		}
		d.overlayActive = false
	}

	if domain.IsFinal(snap.GameState) && snap.RecapReady {
		if d.mode == modeStandard && t-d.modeStart >= standardDwell {
			d.mode = modeRecap
			d.modeStart = t
			d.recap.Start(t, snap)
			d.rec.RecordSceneSwitch("recap")
		}
		if d.mode == modeRecap {
			d.recap.Render(canvas, snap, t)
			if d.recap.IsComplete(t) {
				d.mode = modeStandard
				d.modeStart = t
				d.rec.RecordSceneSwitch("standard")
			}
			d.publish(started)
			return
		}
		d.scoreboard.Render(canvas, snap, t)
		d.publish(started)
		return
	}

	// Not in a final+recap situation: the dwell window restarts so a
	// freshly final game shows its score for the full dwell first.
	d.mode = modeStandard
	d.modeStart = t
	d.scoreboard.Render(canvas, snap, t)
	d.publish(started)
}

func (d *Director) startOverlay(snap domain.GameSnapshot, t time.Duration) {
	d.overlayActive = true
	d.overlayStart = t
	d.overlaySnap = snap
	d.goalKey = goalKey(snap)
	d.rec.RecordSceneSwitch("goal")
	logging.Info(d.log, "goal overlay started",
		slog.Int64(logging.FieldGameID, snap.GameID),
		slog.Int64(logging.FieldEventID, snap.Goal.EventID))
}

func (d *Director) publish(started time.Time) {
	d.panel.Swap()
	d.rec.RecordFrame(d.clock().Sub(started))
}

// sinceEpochLocked maps wall time onto the director's monotonic timeline,
// anchoring the epoch on first use.
func (d *Director) sinceEpochLocked(now time.Time) time.Duration {
	if !d.epochSet {
		d.epoch = now
		d.epochSet = true
	}
	return now.Sub(d.epoch)
}

func goalKey(snap domain.GameSnapshot) string {
	return fmt.Sprintf("%d|%d", snap.GameID, snap.Goal.EventID)
}
