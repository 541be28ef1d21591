package scenes

import (
	"fmt"
	"strings"
	"time"

	"nhl-scoreboard/internal/domain"
	"nhl-scoreboard/internal/render"
	"nhl-scoreboard/internal/timeutil"
)

const (
	recapTitleDuration      = 3000 * time.Millisecond
	recapPageDuration       = 6500 * time.Millisecond
	recapTransitionDuration = 350 * time.Millisecond

	recapMaxPages      = 40
	recapMaxLineChars  = 16
	recapMaxTitleChars = 10
)

type recapPageType int

const (
	pageTitleIntro recapPageType = iota
	pageTitleFinal
	pageScore
	pageTitleSog
	pageSog
	pageTitleGoals
	pageTeamGoalsTitle
	pageGoalDetail
)

type recapPage struct {
	typ       recapPageType
	teamIndex int // 0 away, 1 home
	goalIndex int
}

func (p recapPage) duration() time.Duration {
	switch p.typ {
	case pageTitleIntro, pageTitleFinal, pageTitleSog, pageTitleGoals, pageTeamGoalsTitle:
		return recapTitleDuration
	default:
		return recapPageDuration
	}
}

// Recap plays the post-game summary carousel: title cards, final score,
// shots on goal, then every goal grouped by team. The away team's goal
// group comes first unless the home team won.
type Recap struct {
	logos LogoSource

	pages       []recapPage
	contentHash uint32
	start       time.Duration

	lastPage        int
	prevPage        int
	transitionStart time.Duration
}

// NewRecap builds the recap scene.
func NewRecap(logos LogoSource) *Recap {
	return &Recap{logos: logos, lastPage: -1, prevPage: -1}
}

// Start (re)builds the page list from the snapshot and anchors the carousel
// at now on the display timeline.
func (r *Recap) Start(now time.Duration, snap domain.GameSnapshot) {
	if !snap.RecapReady {
		r.pages = nil
		return
	}
	r.rebuildPages(snap, now)
	r.lastPage = -1
	r.prevPage = -1
	r.transitionStart = now
}

// IsComplete reports whether the carousel, including its exit slide, has
// finished.
func (r *Recap) IsComplete(now time.Duration) bool {
	if len(r.pages) == 0 {
		return true
	}
	return now-r.start >= r.contentTotal()+recapTransitionDuration
}

func (r *Recap) contentTotal() time.Duration {
	var total time.Duration
	for _, p := range r.pages {
		total += p.duration()
	}
	return total
}

// hashRecap folds the fields that change page content into an FNV-1a style
// hash so mid-carousel data updates rebuild the page list.
func hashRecap(snap domain.GameSnapshot) uint32 {
	h := uint32(2166136261)
	mix := func(v uint32) {
		h ^= v
		h *= 16777619
	}
	mix(uint32(snap.GameID))
	mix(uint32(snap.Away.Score))
	mix(uint32(snap.Home.Score))
	mix(uint32(snap.Away.SOG))
	mix(uint32(snap.Home.SOG))
	mix(uint32(len(snap.RecapGoals)))
	for _, g := range snap.RecapGoals {
		mix(uint32(g.EventID))
		mix(uint32(g.Period))
	}
	return h
}

func (r *Recap) rebuildPages(snap domain.GameSnapshot, now time.Duration) {
	r.pages = r.pages[:0]
	r.contentHash = hashRecap(snap)
	r.start = now

	push := func(typ recapPageType, teamIndex, goalIndex int) {
		if len(r.pages) >= recapMaxPages {
			return
		}
		r.pages = append(r.pages, recapPage{typ: typ, teamIndex: teamIndex, goalIndex: goalIndex})
	}

	push(pageTitleIntro, 0, 0)
	push(pageTitleFinal, 0, 0)
	push(pageScore, 0, 0)
	push(pageTitleSog, 0, 0)
	push(pageSog, 0, 0)
	push(pageTitleGoals, 0, 0)

	var awayGoals, homeGoals []int
	for i, g := range snap.RecapGoals {
		if strings.EqualFold(g.TeamAbbrev, snap.Away.Abbrev) {
			awayGoals = append(awayGoals, i)
		} else {
			homeGoals = append(homeGoals, i)
		}
	}

	// Away team's goals come first unless the home team won the game.
	teamOrder := [2]int{0, 1}
	if snap.Home.Score > snap.Away.Score {
		teamOrder = [2]int{1, 0}
	}

	for _, teamIndex := range teamOrder {
		goals := awayGoals
		if teamIndex == 1 {
			goals = homeGoals
		}
		if len(goals) == 0 {
			continue
		}
		push(pageTeamGoalsTitle, teamIndex, 0)
		for _, gi := range goals {
			push(pageGoalDetail, teamIndex, gi)
		}
	}
}

// Render draws one recap frame at the given point on the display timeline.
func (r *Recap) Render(c *render.Canvas, snap domain.GameSnapshot, now time.Duration) {
	c.Clear()
	if !snap.RecapReady {
		return
	}

	if h := hashRecap(snap); h != r.contentHash {
		r.rebuildPages(snap, now)
	}
	if len(r.pages) == 0 {
		return
	}

	elapsed := now - r.start
	contentTotal := r.contentTotal()

	pageIndex := len(r.pages) - 1
	var acc time.Duration
	for i, p := range r.pages {
		if elapsed < acc+p.duration() {
			pageIndex = i
			break
		}
		acc += p.duration()
	}

	if pageIndex != r.lastPage {
		r.prevPage = r.lastPage
		r.lastPage = pageIndex
		r.transitionStart = now
	}

	w := c.Width()
	if elapsed >= contentTotal {
		// Exit slide: the final page leaves to the left.
		endElapsed := elapsed - contentTotal
		if endElapsed > recapTransitionDuration {
			endElapsed = recapTransitionDuration
		}
		shift := int(endElapsed.Milliseconds() * int64(w) / recapTransitionDuration.Milliseconds())
		if shift > w {
			shift = w
		}
		r.renderPage(c, snap, r.pages[pageIndex], -shift)
		return
	}

	transElapsed := now - r.transitionStart
	if transElapsed < recapTransitionDuration {
		shift := int(transElapsed.Milliseconds() * int64(w) / recapTransitionDuration.Milliseconds())
		if shift > w {
			shift = w
		}
		if r.prevPage >= 0 && r.prevPage < len(r.pages) {
			r.renderPage(c, snap, r.pages[r.prevPage], -shift)
		}
		r.renderPage(c, snap, r.pages[pageIndex], w-shift)
		return
	}
	r.renderPage(c, snap, r.pages[pageIndex], 0)
}

func (r *Recap) renderPage(c *render.Canvas, snap domain.GameSnapshot, page recapPage, xOffset int) {
	w := c.Width()
	white := render.RGB(255, 255, 255)

	switch page.typ {
	case pageTitleIntro:
		drawTitle(c, "GAME", "RECAP", xOffset)
	case pageTitleFinal:
		drawTitle(c, "FINAL", "SCORE", xOffset)
	case pageTitleSog:
		drawTitle(c, "SOG", "", xOffset)
	case pageTitleGoals:
		drawTitle(c, "GOALS", "RECAP", xOffset)

	case pageScore:
		r.drawTeamLogos(c, snap, xOffset)

		scoreLine := fmt.Sprintf("%d-%d", snap.Away.Score, snap.Home.Score)
		scoreX := (w-render.TextWidth(scoreLine))/2 + xOffset
		render.DrawText(c, scoreX, 11, scoreLine, white)

		if snap.Period > 3 {
			extra := "OT"
			if snap.Period >= 5 {
				extra = "SO"
			}
			extraX := (w-render.MiniTextWidth(extra))/2 + xOffset
			render.DrawMiniText(c, extraX, 20, extra, render.RGB(180, 200, 255))
		}

	case pageSog:
		r.drawTeamLogos(c, snap, xOffset)

		sogLine := fmt.Sprintf("%d-%d", snap.Away.SOG, snap.Home.SOG)
		sogX := (w-render.MiniTextWidth(sogLine))/2 + xOffset
		render.DrawMiniText(c, sogX, 12, sogLine, white)

	case pageTeamGoalsTitle:
		team := snap.Away
		if page.teamIndex == 1 {
			team = snap.Home
		}
		logo, hasLogo := r.logos.Get(team.Abbrev)
		abbrevY := 10
		if hasLogo {
			c.DrawBitmapScaled(xOffset+(w-20)/2, 2, 20, logo)
			abbrevY = 22
		}
		abbrevX := xOffset + (w-render.MiniTextWidth(team.Abbrev))/2 + 1
		render.DrawMiniText(c, abbrevX, abbrevY, team.Abbrev, white)

	case pageGoalDetail:
		if page.goalIndex >= len(snap.RecapGoals) {
			return
		}
		goal := snap.RecapGoals[page.goalIndex]

		scorer := goal.Scorer
		if scorer == "" {
			scorer = "GOAL"
		}
		scorer = clampLine(scorer)
		a1 := clampLine(assistLine("A1", goal.Assist1))
		a2 := clampLine(assistLine("A2", goal.Assist2))
		timeLine := clampLine(fmt.Sprintf("P%d %s", goal.Period, timeutil.ElapsedFromRemaining(goal.TimeRemaining)))

		grey := render.RGB(200, 200, 200)
		render.DrawMiniText(c, (w-render.MiniTextWidth(scorer))/2+xOffset, 2, scorer, white)
		render.DrawMiniText(c, (w-render.MiniTextWidth(a1))/2+xOffset, 9, a1, grey)
		render.DrawMiniText(c, (w-render.MiniTextWidth(a2))/2+xOffset, 16, a2, grey)
		render.DrawMiniText(c, (w-render.MiniTextWidth(timeLine))/2+xOffset, 23, timeLine, render.RGB(180, 200, 255))
	}
}

// drawTeamLogos renders both 20px logos with abbreviations at the panel
// edges, as used by the score and SOG pages.
func (r *Recap) drawTeamLogos(c *render.Canvas, snap domain.GameSnapshot, xOffset int) {
	if logo, ok := r.logos.Get(snap.Away.Abbrev); ok {
		drawLogoWithAbbrev(c, logo, snap.Away.Abbrev, xOffset, 4, 20)
	}
	if logo, ok := r.logos.Get(snap.Home.Abbrev); ok {
		drawLogoWithAbbrev(c, logo, snap.Home.Abbrev, xOffset+c.Width()-21, 4, 20)
	}
}

func drawLogoWithAbbrev(c *render.Canvas, logo render.Bitmap, abbrev string, x, y, size int) {
	c.DrawBitmapScaled(x, y, size, logo)
	if abbrev == "" {
		return
	}
	textX := x + (size-render.MiniTextWidth(abbrev))/2 + 1
	render.DrawMiniText(c, textX, y+size, abbrev, render.RGB(255, 255, 255))
}

// drawTitle centers one or two lines of standard-font title text.
func drawTitle(c *render.Canvas, line1, line2 string, xOffset int) {
	white := render.RGB(255, 255, 255)
	const lineHeight = 8
	line1 = clampTitle(line1)
	line2 = clampTitle(line2)

	totalHeight := lineHeight
	gap := 0
	if line2 != "" {
		gap = 2
		totalHeight += lineHeight + gap
	}
	y := (c.Height() - totalHeight) / 2

	x1 := (c.Width()-render.TextWidth(line1))/2 + xOffset
	render.DrawText(c, x1, y, line1, white)
	if line2 != "" {
		x2 := (c.Width()-render.TextWidth(line2))/2 + xOffset
		render.DrawText(c, x2, y+lineHeight+gap, line2, white)
	}
}

func assistLine(tag, name string) string {
	if name == "" {
		return tag + " -"
	}
	return tag + " " + name
}

func clampLine(s string) string {
	if len(s) > recapMaxLineChars {
		return s[:recapMaxLineChars]
	}
	return s
}

func clampTitle(s string) string {
	if len(s) > recapMaxTitleChars {
		return s[:recapMaxTitleChars]
	}
	return s
}
