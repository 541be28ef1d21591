package scenes

import (
	"testing"
	"time"

	"nhl-scoreboard/internal/domain"
	"nhl-scoreboard/internal/render"
)

func recapSnapshot() domain.GameSnapshot {
	snap := liveSnapshot()
	snap.GameState = domain.StateFinal
	snap.Away.Score = 1
	snap.Home.Score = 3
	snap.RecapReady = true
	snap.RecapGoals = []domain.RecapGoal{
		{EventID: 10, TeamAbbrev: "TOR", Scorer: "Matthews", Period: 1, TimeRemaining: "15:00"},
		{EventID: 20, TeamAbbrev: "MTL", Scorer: "Suzuki", Period: 2, TimeRemaining: "10:00"},
		{EventID: 30, TeamAbbrev: "TOR", Scorer: "Marner", Period: 3, TimeRemaining: "05:00"},
		{EventID: 40, TeamAbbrev: "TOR", Scorer: "Nylander", Period: 3, TimeRemaining: "01:00"},
	}
	return snap
}

func pageTypes(r *Recap) []recapPageType {
	types := make([]recapPageType, len(r.pages))
	for i, p := range r.pages {
		types[i] = p.typ
	}
	return types
}

func TestRecapPageOrderHomeWinnerFirst(t *testing.T) {
	r := NewRecap(newStubLogos("MTL", "TOR"))
	snap := recapSnapshot() // home (TOR) wins 3-1

	r.Start(0, snap)

	want := []recapPageType{
		pageTitleIntro, pageTitleFinal, pageScore, pageTitleSog, pageSog, pageTitleGoals,
		pageTeamGoalsTitle, pageGoalDetail, pageGoalDetail, pageGoalDetail, // home (TOR) leads when it wins
		pageTeamGoalsTitle, pageGoalDetail,
	}
	got := pageTypes(r)
	if len(got) != len(want) {
		t.Fatalf("got %d pages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("page %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if r.pages[6].teamIndex != 1 {
		t.Fatalf("expected home team's goals first, got team %d", r.pages[6].teamIndex)
	}
	if r.pages[10].teamIndex != 0 {
		t.Fatalf("expected away team's goals second, got team %d", r.pages[10].teamIndex)
	}
}

func TestRecapTieShowsAwayFirst(t *testing.T) {
	r := NewRecap(newStubLogos("MTL", "TOR"))
	snap := recapSnapshot()
	snap.Away.Score = 3 // tie

	r.Start(0, snap)

	if r.pages[6].teamIndex != 0 {
		t.Fatalf("expected away team first on equal score")
	}
}

func TestRecapPageSelectionBoundary(t *testing.T) {
	r := NewRecap(newStubLogos("MTL", "TOR"))
	snap := recapSnapshot()
	r.Start(0, snap)
	c := render.NewCanvas(64, 32)

	// First page is a 3000ms title; elapsed just below stays on page 0.
	r.Render(c, snap, 2999*time.Millisecond)
	if r.lastPage != 0 {
		t.Fatalf("expected page 0 at 2999ms, got %d", r.lastPage)
	}

	// The boundary instant belongs to the next page.
	r.Render(c, snap, 3000*time.Millisecond)
	if r.lastPage != 1 {
		t.Fatalf("expected page 1 at 3000ms, got %d", r.lastPage)
	}
	if r.prevPage != 0 {
		t.Fatalf("expected previous page tracked, got %d", r.prevPage)
	}
}

func TestRecapCompletionIncludesExitSlide(t *testing.T) {
	r := NewRecap(newStubLogos("MTL", "TOR"))
	snap := recapSnapshot()
	r.Start(0, snap)

	// 6 title-length pages and 6 content pages.
	total := r.contentTotal()
	wantTotal := 6*recapTitleDuration + 6*recapPageDuration
	if total != wantTotal {
		t.Fatalf("content total %v, want %v", total, wantTotal)
	}

	if r.IsComplete(total) {
		t.Fatalf("expected exit slide still playing at content end")
	}
	if r.IsComplete(total + recapTransitionDuration - time.Millisecond) {
		t.Fatalf("expected exit slide still playing")
	}
	if !r.IsComplete(total + recapTransitionDuration) {
		t.Fatalf("expected completion after exit slide")
	}
}

func TestRecapEmptyIsComplete(t *testing.T) {
	r := NewRecap(newStubLogos())

	r.Start(0, domain.GameSnapshot{}) // not recap-ready

	if !r.IsComplete(0) {
		t.Fatalf("expected empty recap to be complete immediately")
	}
}

func TestRecapRebuildsOnContentChange(t *testing.T) {
	r := NewRecap(newStubLogos("MTL", "TOR"))
	snap := recapSnapshot()
	r.Start(0, snap)
	c := render.NewCanvas(64, 32)
	r.Render(c, snap, 10*time.Second)

	before := r.contentHash
	snap.Home.Score = 4
	snap.RecapGoals = append(snap.RecapGoals, domain.RecapGoal{
		EventID: 50, TeamAbbrev: "TOR", Scorer: "Tavares", Period: 3, TimeRemaining: "00:30",
	})

	r.Render(c, snap, 11*time.Second)

	if r.contentHash == before {
		t.Fatalf("expected hash rebuild on content change")
	}
	if r.start != 11*time.Second {
		t.Fatalf("expected carousel restarted at rebuild, start=%v", r.start)
	}
	if len(r.pages) != 13 {
		t.Fatalf("expected 13 pages after extra goal, got %d", len(r.pages))
	}
}

func TestRecapNotReadyRendersBlank(t *testing.T) {
	r := NewRecap(newStubLogos("MTL", "TOR"))
	c := render.NewCanvas(64, 32)
	c.SetPixel(0, 0, render.RGB(9, 9, 9))

	r.Render(c, domain.GameSnapshot{}, time.Second)

	if !canvasBlank(c) {
		t.Fatalf("expected blank frame when recap not ready")
	}
}
