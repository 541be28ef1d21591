package scenes

import (
	"fmt"
	"time"

	"nhl-scoreboard/internal/domain"
	"nhl-scoreboard/internal/render"
	"nhl-scoreboard/internal/timeutil"
)

// sogToggleInterval controls how often the live center line alternates
// between the game clock and shots on goal.
const sogToggleInterval = 4 * time.Second

// Scoreboard renders the standard game view. It is stateless across frames
// except for the clock/SOG toggle timer.
type Scoreboard struct {
	logos LogoSource
	now   func() time.Time

	showSOG    bool
	toggleAt   time.Duration
	toggleInit bool
}

// NewScoreboard builds the scoreboard scene.
func NewScoreboard(logos LogoSource) *Scoreboard {
	return &Scoreboard{logos: logos, now: time.Now}
}

// WithClock overrides the wall clock used for the SOON check. Intended for
// tests.
func (s *Scoreboard) WithClock(now func() time.Time) *Scoreboard {
	s.now = now
	return s
}

// Render draws one scoreboard frame. t is the display's monotonic timeline,
// used for the PP flash and the clock/SOG toggle.
func (s *Scoreboard) Render(c *render.Canvas, snap domain.GameSnapshot, t time.Duration) {
	c.Clear()

	if snap.GameID == 0 {
		drawCenteredText(c, 12, "NO GAME", render.RGB(220, 220, 220))
		return
	}

	isLive := domain.IsLive(snap.GameState)
	statusLine := s.statusLine(snap)

	awayLogo, hasAway := s.logos.Get(snap.Away.Abbrev)
	homeLogo, hasHome := s.logos.Get(snap.Home.Abbrev)
	if !hasAway || !hasHome {
		drawCenteredText(c, 12, "LOADING", render.RGB(200, 200, 200))
		return
	}

	panelW := c.Width()
	c.DrawBitmap(0, 0, awayLogo)
	homeLogoX := panelW - homeLogo.Width
	if homeLogoX < 0 {
		homeLogoX = 0
	}
	c.DrawBitmap(homeLogoX, 0, homeLogo)

	scoreLine := fmt.Sprintf("%d-%d", snap.Away.Score, snap.Home.Score)
	drawCenteredText(c, 5, scoreLine, render.RGB(255, 255, 255))

	statusColor := render.RGB(180, 200, 255)
	centerLine := ""
	if isLive && !snap.InIntermission && snap.TimeRemaining != "" {
		centerLine = snap.TimeRemaining
		if s.updateToggle(t) {
			centerLine = fmt.Sprintf("SOG %d-%d", snap.Away.SOG, snap.Home.SOG)
		}
	}
	if isLive && centerLine != "" {
		drawCenteredMiniText(c, 14, statusLine, statusColor)
		drawCenteredMiniText(c, 21, centerLine, statusColor)
	} else {
		drawCenteredMiniText(c, 16, statusLine, statusColor)
	}

	awayLabel := teamLabel(snap.Away)
	homeLabel := teamLabel(snap.Home)
	awayNameY := awayLogo.Height + 1
	homeNameY := homeLogo.Height + 1
	awayTextW := render.MiniTextWidth(awayLabel) - 1
	awayTextX := (awayLogo.Width - awayTextW) / 2
	if awayTextX < 0 {
		awayTextX = 0
	}
	homeTextW := render.MiniTextWidth(homeLabel) - 1
	homeTextX := homeLogoX + (homeLogo.Width-homeTextW)/2
	if homeTextX < 0 {
		homeTextX = 0
	}
	white := render.RGB(255, 255, 255)
	render.DrawMiniText(c, awayTextX, awayNameY, awayLabel, white)
	render.DrawMiniText(c, homeTextX, homeNameY, homeLabel, white)

	if snap.AwayPP {
		s.drawPPMarker(c, t, awayTextX, awayTextW, awayNameY+6)
	}
	if snap.HomePP {
		s.drawPPMarker(c, t, homeTextX, homeTextW, homeNameY+6)
	}
}

func (s *Scoreboard) drawPPMarker(c *render.Canvas, t time.Duration, labelX, labelW, y int) {
	flash := (t.Milliseconds()/300)%2 == 0
	col := render.RGB(200, 200, 200)
	if flash {
		col = render.RGB(255, 80, 80)
	}
	ppW := render.MiniTextWidth("PP") - 1
	x := labelX + (labelW-ppW)/2
	if x < 0 {
		x = 0
	}
	render.DrawMiniText(c, x, y, "PP", col)
}

// statusLine classifies the snapshot into the short status shown between
// the logos.
func (s *Scoreboard) statusLine(snap domain.GameSnapshot) string {
	switch {
	case domain.IsPreGame(snap.GameState):
		if s.startTimePassed(snap) {
			return "SOON"
		}
		return timeutil.LocalizeStartTime(snap.StartTimeUTC, snap.UTCOffset)
	case domain.IsFinal(snap.GameState):
		return "FINAL"
	case domain.IsLive(snap.GameState):
		if snap.InIntermission {
			switch snap.Period {
			case 1:
				return "END 1ST"
			case 2:
				return "END 2ND"
			case 3:
				return "END 3RD"
			default:
				return "INT"
			}
		}
		if snap.Period > 0 && snap.TimeRemaining != "" {
			return fmt.Sprintf("P-%d", snap.Period)
		}
		return "LIVE"
	default:
		return snap.GameState
	}
}

// updateToggle advances the clock/SOG alternation and reports whether SOG is
// currently shown.
func (s *Scoreboard) updateToggle(t time.Duration) bool {
	if !s.toggleInit {
		s.toggleInit = true
		s.toggleAt = t
	}
	if t-s.toggleAt >= sogToggleInterval {
		s.showSOG = !s.showSOG
		s.toggleAt = t
	}
	return s.showSOG
}

// startTimePassed reports whether a pre-game start time is on the current
// local day and already behind us.
func (s *Scoreboard) startTimePassed(snap domain.GameSnapshot) bool {
	date, minute, shift, ok := timeutil.StartTimeLocal(snap.StartTimeUTC, snap.UTCOffset)
	if !ok {
		return false
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	localDate := day.AddDate(0, 0, shift).Format("2006-01-02")

	zone := time.FixedZone("game", timeutil.ParseOffsetMinutes(snap.UTCOffset)*60)
	nowLocal := s.now().In(zone)
	if nowLocal.Format("2006-01-02") != localDate {
		return false
	}
	return nowLocal.Hour()*60+nowLocal.Minute() >= minute
}

func teamLabel(team domain.TeamInfo) string {
	label := team.Abbrev
	if label == "" {
		label = team.Name
	}
	if label == "" {
		label = "?"
	}
	return domain.TruncateAbbrev(label)
}

func drawCenteredText(c *render.Canvas, y int, s string, col render.Color) {
	x := (c.Width() - render.TextWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	render.DrawText(c, x, y, s, col)
}

func drawCenteredMiniText(c *render.Canvas, y int, s string, col render.Color) {
	if s == "" {
		return
	}
	x := (c.Width() - (render.MiniTextWidth(s) - 1)) / 2
	if x < 0 {
		x = 0
	}
	render.DrawMiniText(c, x, y, s, col)
}
