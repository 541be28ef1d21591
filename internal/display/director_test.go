package display

import (
	"testing"
	"time"

	"nhl-scoreboard/internal/domain"
	"nhl-scoreboard/internal/metrics"
	"nhl-scoreboard/internal/panel"
	"nhl-scoreboard/internal/render"
)

type fakeStore struct {
	snap       domain.GameSnapshot
	ok         bool
	clearCalls int
}

func (f *fakeStore) Snapshot() (domain.GameSnapshot, bool) { return f.snap, f.ok }

func (f *fakeStore) ClearGoalFlag() {
	f.clearCalls++
	f.snap.GoalIsNew = false
}

type fakeLogos struct {
	clears int
}

func (f *fakeLogos) Get(abbrev string) (render.Bitmap, bool) {
	pixels := make([]render.Color, 20*20)
	for i := range pixels {
		pixels[i] = render.RGB(40, 40, 120)
	}
	return render.Bitmap{Width: 20, Height: 20, Pixels: pixels}, true
}

func (f *fakeLogos) Clear() { f.clears++ }

func trackedGame() domain.GameSnapshot {
	return domain.GameSnapshot{
		GameID:        2024020001,
		GameState:     domain.StateLive,
		Away:          domain.TeamInfo{ID: 8, Abbrev: "MTL", Score: 3},
		Home:          domain.TeamInfo{ID: 10, Abbrev: "TOR", Score: 2},
		Period:        3,
		TimeRemaining: "02:00",
	}
}

func newTestDirector(store *fakeStore) (*Director, *fakeLogos, *metrics.Recorder, func(time.Duration)) {
	logos := &fakeLogos{}
	rec := metrics.NewRecorder()
	base := time.Unix(1700000000, 0)
	now := base
	d := New(store, logos, panel.New(64, 32), rec, nil).
		WithClock(func() time.Time { return now })
	tickAt := func(offset time.Duration) {
		now = base.Add(offset)
		d.Tick(now)
	}
	return d, logos, rec, tickAt
}

func TestDirectorGoalOverlayLifecycle(t *testing.T) {
	store := &fakeStore{snap: trackedGame(), ok: true}
	store.snap.GoalIsNew = true
	store.snap.Goal = domain.GoalEvent{EventID: 77, OwnerTeamID: 10, Scorer: "Auston Matthews", Period: 3, TimeRemaining: "02:00"}

	_, logos, rec, tickAt := newTestDirector(store)

	tickAt(0)

	if logos.clears != 1 {
		t.Fatalf("expected logo cache cleared on game change, got %d", logos.clears)
	}
	if store.clearCalls != 1 {
		t.Fatalf("expected goal flag consumed on trigger, got %d", store.clearCalls)
	}
	if got := rec.SceneSwitches("goal"); got != 1 {
		t.Fatalf("expected goal overlay started once, got %d", got)
	}
	if got := rec.FramesRendered(); got != 1 {
		t.Fatalf("expected 1 frame, got %d", got)
	}

	// Faster than the frame interval: no-op.
	tickAt(10 * time.Millisecond)
	if got := rec.FramesRendered(); got != 1 {
		t.Fatalf("expected pacing to skip fast tick, got %d frames", got)
	}

	// The same goal edge re-raised must not retrigger the overlay.
	store.snap.GoalIsNew = true
	tickAt(40 * time.Millisecond)
	if got := rec.SceneSwitches("goal"); got != 1 {
		t.Fatalf("expected same goal key ignored, got %d switches", got)
	}
	if store.clearCalls != 2 {
		t.Fatalf("expected flag consumed anyway, got %d", store.clearCalls)
	}

	// A distinct event retriggers.
	store.snap.GoalIsNew = true
	store.snap.Goal.EventID = 78
	tickAt(80 * time.Millisecond)
	if got := rec.SceneSwitches("goal"); got != 2 {
		t.Fatalf("expected new goal key to retrigger, got %d switches", got)
	}

	// Past the overlay window the scoreboard resumes.
	tickAt(80*time.Millisecond + 17*time.Second + time.Millisecond)
	if got := rec.SceneSwitches("goal"); got != 2 {
		t.Fatalf("unexpected overlay restart, got %d switches", got)
	}
}

func TestDirectorRecapAfterDwell(t *testing.T) {
	store := &fakeStore{snap: trackedGame(), ok: true}
	_, _, rec, tickAt := newTestDirector(store)

	tickAt(0) // game change reset; standard mode

	store.snap.GameState = domain.StateFinal
	store.snap.RecapReady = true
	store.snap.RecapGoals = []domain.RecapGoal{{EventID: 1, TeamAbbrev: "MTL", Scorer: "Suzuki", Period: 1, TimeRemaining: "10:00"}}

	// Dwell not yet elapsed: stays on the scoreboard.
	tickAt(19 * time.Second)
	if got := rec.SceneSwitches("recap"); got != 0 {
		t.Fatalf("expected no recap before dwell, got %d", got)
	}

	tickAt(20 * time.Second)
	if got := rec.SceneSwitches("recap"); got != 1 {
		t.Fatalf("expected recap after dwell, got %d", got)
	}
}

func TestDirectorGameChangeResetsOverlay(t *testing.T) {
	store := &fakeStore{snap: trackedGame(), ok: true}
	store.snap.GoalIsNew = true
	store.snap.Goal = domain.GoalEvent{EventID: 77, OwnerTeamID: 10}

	_, logos, rec, tickAt := newTestDirector(store)
	tickAt(0)
	if rec.SceneSwitches("goal") != 1 {
		t.Fatalf("expected overlay active")
	}

	// New game mid-overlay: overlay dropped, caches cleared, and the same
	// event id on the new game counts as a fresh goal.
	store.snap.GameID = 2024020050
	tickAt(40 * time.Millisecond)
	if logos.clears != 2 {
		t.Fatalf("expected logo cache cleared again, got %d", logos.clears)
	}

	store.snap.GoalIsNew = true
	tickAt(80 * time.Millisecond)
	if got := rec.SceneSwitches("goal"); got != 2 {
		t.Fatalf("expected fresh goal on new game, got %d", got)
	}
}

func TestDirectorPreviewGoal(t *testing.T) {
	store := &fakeStore{snap: trackedGame(), ok: true}
	d, _, rec, tickAt := newTestDirector(store)
	tickAt(0)

	if !d.PreviewGoal() {
		t.Fatalf("expected preview to start with a selected game")
	}
	if got := rec.SceneSwitches("goal"); got != 1 {
		t.Fatalf("expected preview overlay, got %d switches", got)
	}
}

func TestDirectorPreviewGoalFailsWithoutGame(t *testing.T) {
	store := &fakeStore{ok: false}
	d, _, _, _ := newTestDirector(store)

	if d.PreviewGoal() {
		t.Fatalf("expected preview to fail with no game selected")
	}
}

func TestDirectorDisabledSkipsSceneWork(t *testing.T) {
	store := &fakeStore{snap: trackedGame(), ok: true}
	d, _, rec, tickAt := newTestDirector(store)

	d.SetEnabled(false)
	tickAt(0)
	tickAt(100 * time.Millisecond)

	if got := rec.FramesRendered(); got != 0 {
		t.Fatalf("expected no frames while disabled, got %d", got)
	}

	d.SetEnabled(true)
	tickAt(200 * time.Millisecond)
	if got := rec.FramesRendered(); got != 1 {
		t.Fatalf("expected rendering to resume, got %d", got)
	}
}

func TestDirectorPublishesFramesToSinks(t *testing.T) {
	store := &fakeStore{snap: trackedGame(), ok: true}
	var frames []render.Bitmap
	pnl := panel.New(64, 32, panel.SinkFunc(func(frame render.Bitmap) {
		frames = append(frames, frame)
	}))
	base := time.Unix(1700000000, 0)
	now := base
	d := New(store, &fakeLogos{}, pnl, metrics.NewRecorder(), nil).
		WithClock(func() time.Time { return now })

	d.Tick(now)
	if len(frames) != 1 {
		t.Fatalf("expected 1 published frame, got %d", len(frames))
	}

	// Disabling pushes one blank frame so the matrix goes dark at once.
	d.SetEnabled(false)
	if len(frames) != 2 {
		t.Fatalf("expected blank frame on disable, got %d", len(frames))
	}
	for _, px := range frames[1].Pixels {
		if px != (render.Color{}) {
			t.Fatalf("expected blank frame, got %+v", px)
		}
	}

	now = base.Add(100 * time.Millisecond)
	d.Tick(now)
	if len(frames) != 2 {
		t.Fatalf("expected no frames while disabled, got %d", len(frames))
	}
}
