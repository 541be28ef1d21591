package scenes

import (
	"strings"
	"time"

	"nhl-scoreboard/internal/assets"
	"nhl-scoreboard/internal/domain"
	"nhl-scoreboard/internal/render"
)

// Goal celebration phase lengths. The scene is a pure function of elapsed
// time since the animation started, so every frame is reproducible.
const (
	goalPhaseText  = 5000 * time.Millisecond
	goalPhaseFlash = 900 * time.Millisecond
	goalPhaseZoom  = 800 * time.Millisecond
	goalPhaseHold  = 1700 * time.Millisecond
	goalPhaseName  = 8400 * time.Millisecond

	// GoalDuration is the full celebration length; Render draws nothing at
	// or past this point.
	GoalDuration = goalPhaseText + goalPhaseFlash + goalPhaseZoom + goalPhaseHold + goalPhaseName
)

// Goal renders the goal celebration overlay.
type Goal struct {
	logos LogoSource
}

// NewGoal builds the goal scene.
func NewGoal(logos LogoSource) *Goal {
	return &Goal{logos: logos}
}

// Done reports whether the animation has played out.
func (g *Goal) Done(elapsed time.Duration) bool {
	return elapsed >= GoalDuration
}

// Render draws one frame of the celebration at the given elapsed time.
func (g *Goal) Render(c *render.Canvas, snap domain.GameSnapshot, elapsed time.Duration) {
	c.Clear()
	if g.Done(elapsed) {
		return
	}

	tTextEnd := goalPhaseText
	tFlashEnd := tTextEnd + goalPhaseFlash
	tZoomEnd := tFlashEnd + goalPhaseZoom
	tHoldEnd := tZoomEnd + goalPhaseHold

	abbrev := goalTeamAbbrev(snap)
	logo, hasLogo := render.Bitmap{}, false
	if abbrev != "" {
		logo, hasLogo = g.logos.Get(abbrev)
	}

	ms := elapsed.Milliseconds()

	if elapsed < tTextEnd {
		g.renderGoalText(c, ms)
		return
	}

	// The three logo phases render blank frames when no logo is cached;
	// the name phase still starts at its scheduled time.
	if elapsed < tFlashEnd {
		if hasLogo {
			// Alternate the logo between opposite corners.
			if (ms/220)%2 == 0 {
				x := c.Width() - logo.Width
				if x < 0 {
					x = 0
				}
				c.DrawBitmap(x, 0, logo)
			} else {
				y := c.Height() - logo.Height
				if y < 0 {
					y = 0
				}
				c.DrawBitmap(0, y, logo)
			}
		}
		return
	}

	if elapsed < tZoomEnd {
		if hasLogo {
			zoomMs := (elapsed - tFlashEnd).Milliseconds()
			const minSize, maxSize = 4, 25
			size := minSize + int(int64(maxSize-minSize)*zoomMs/goalPhaseZoom.Milliseconds())
			if size > maxSize {
				size = maxSize
			}
			if size < minSize {
				size = minSize
			}
			c.DrawBitmapScaled((c.Width()-size)/2, (c.Height()-size)/2, size, logo)
		}
		return
	}

	if elapsed < tHoldEnd {
		if hasLogo {
			const size = 25
			c.DrawBitmapScaled((c.Width()-size)/2, (c.Height()-size)/2, size, logo)
		}
		return
	}

	colors := assets.TeamColors(abbrev, 3)
	if len(colors) == 0 && hasLogo {
		colors = assets.DominantColors(logo, 3)
	}
	g.renderNamePhase(c, snap, (elapsed - tHoldEnd).Milliseconds(), colors)
}

// renderGoalText draws the letter-by-letter "GOAL" reveal with sirens.
func (g *Goal) renderGoalText(c *render.Canvas, ms int64) {
	const msg = "GOAL"
	const letterDelay = 400
	const revealEnd = int64(letterDelay * len(msg))

	baseX := (c.Width() - render.TextWidth(msg)) / 2
	baseY := (c.Height() - 8) / 2

	textColor := render.RGB(255, 255, 255)
	if ms >= revealEnd {
		if (ms/300)%2 != 0 {
			textColor = render.RGB(120, 120, 120)
		}
	}

	for i := 0; i < len(msg); i++ {
		letterStart := int64(i * letterDelay)
		if ms < letterStart {
			continue
		}
		lt := ms - letterStart
		bounceY := 0
		switch {
		case lt < 100:
			bounceY = -4 + int(lt*4/100)
		case lt < 200:
			bounceY = int((lt - 100) * 2 / 100)
		case lt < 300:
			bounceY = 2 - int((lt-200)*2/100)
		}
		render.DrawText(c, baseX+i*6, baseY+bounceY, msg[i:i+1], textColor)
	}

	sirenY := baseY - 2
	drawSiren(c, 4, sirenY, 9, 9, ms)
	drawSiren(c, c.Width()-13, sirenY, 9, 9, ms)
}

// renderNamePhase slides the scorer's names in, pulses a heartbeat shadow,
// rains confetti in team colors, and reveals the assists.
func (g *Goal) renderNamePhase(c *render.Canvas, snap domain.GameSnapshot, t int64, colors []render.Color) {
	const (
		firstPhase  = 1200
		lastPhase   = 1200
		assistStart = firstPhase + lastPhase + 800
		assistSlide = 800
	)

	width := c.Width()
	first, last := splitName(snap.Goal.Scorer)
	wFirst := render.TextWidth(first)
	wLast := render.TextWidth(last)
	const yFirst, yLast = 1, 11
	shadow := render.RGB(58, 58, 58)
	main := render.RGB(150, 150, 150)

	xFirst := 0
	if first != "" && t < firstPhase {
		xFirst = width - int(t*int64(width+wFirst)/firstPhase)
		if xFirst < 0 {
			xFirst = 0
		}
	}

	xLast := 0
	if last != "" {
		if t < firstPhase {
			xLast = width
		} else if tLast := t - firstPhase; tLast < lastPhase {
			xLast = width - int(tLast*int64(width+wLast)/lastPhase)
			if xLast < 0 {
				xLast = 0
			}
		}
	}

	shadowOn := false
	if t >= firstPhase+lastPhase {
		tFull := t - (firstPhase + lastPhase)
		beatOn := func(local int64) bool {
			if local >= 800 {
				return false
			}
			return (local/200)%2 == 0
		}
		if (tFull < 800 && beatOn(tFull)) ||
			(tFull >= 2000 && tFull < 2800 && beatOn(tFull-2000)) {
			shadowOn = true
		}
	}

	drawConfetti(c, t, colors)

	if t >= assistStart {
		tA := t - assistStart
		slideX := func(textW int) int {
			if tA >= assistSlide {
				return 0
			}
			x := width - int(tA*int64(width+textW)/assistSlide)
			if x < 0 {
				x = 0
			}
			return x
		}
		assistColor := render.RGB(120, 120, 120)
		_, a1 := splitName(snap.Goal.Assist1)
		_, a2 := splitName(snap.Goal.Assist2)
		switch {
		case a1 == "" && a2 == "":
			const txt = "UNASSISTED"
			render.DrawMiniText(c, slideX(render.MiniTextWidth(txt)), 24, txt, assistColor)
		case a1 != "" && a2 == "":
			render.DrawMiniText(c, slideX(render.MiniTextWidth(a1)), 24, a1, assistColor)
		default:
			render.DrawMiniText(c, slideX(render.MiniTextWidth(a1)), 21, a1, assistColor)
			render.DrawMiniText(c, slideX(render.MiniTextWidth(a2)), 27, a2, assistColor)
		}
	}

	if first != "" {
		if shadowOn {
			render.DrawText(c, xFirst+1, yFirst+1, first, shadow)
		}
		render.DrawText(c, xFirst, yFirst, first, main)
	}
	if last != "" && t >= firstPhase {
		if shadowOn {
			render.DrawText(c, xLast+1, yLast+1, last, shadow)
		}
		render.DrawText(c, xLast, yLast, last, main)
	}
}

func goalTeamAbbrev(snap domain.GameSnapshot) string {
	switch {
	case snap.Goal.OwnerTeamID != 0 && snap.Goal.OwnerTeamID == snap.Home.ID:
		return snap.Home.Abbrev
	case snap.Goal.OwnerTeamID != 0 && snap.Goal.OwnerTeamID == snap.Away.ID:
		return snap.Away.Abbrev
	default:
		return snap.Home.Abbrev
	}
}

// drawSiren draws a flashing beacon with a sweeping highlight stripe.
func drawSiren(c *render.Canvas, x, y, w, h int, ms int64) {
	body := render.RGB(140, 0, 0)
	if (ms/120)%2 == 0 {
		body = render.RGB(255, 0, 0)
	}
	c.FillRect(x, y+h, w, 2, render.RGB(140, 140, 140))
	c.FillRect(x, y, w, h, body)
	if (ms/80)%2 == 0 {
		offset := 1
		if (ms/160)%2 == 0 {
			offset = -1
		}
		stripeX := x + w/2 + offset
		if stripeX < x {
			stripeX = x
		}
		if stripeX >= x+w {
			stripeX = x + w - 1
		}
		c.VLine(stripeX, y, h, render.RGB(255, 80, 80))
	}
}

// drawConfetti renders the deterministic particle rain. Positions derive
// from a fixed-seed linear congruential sequence so a given (particle,
// elapsed) pair always lands on the same pixel.
func drawConfetti(c *render.Canvas, t int64, colors []render.Color) {
	w, h := c.Width(), c.Height()
	const particles = 18
	fallback := render.RGB(255, 255, 255)
	if len(colors) == 0 {
		colors = []render.Color{fallback}
	}

	rng := uint32(0xDEADBEEF)
	for i := 0; i < particles; i++ {
		rng = rng*1664525 + 1013904223 + uint32(i*73)
		baseX := int(rng % uint32(w))
		rng = rng*1664525 + 1013904223
		speed := 8 + int(rng%15)
		rng = rng*1664525 + 1013904223
		startY := -1 - int(rng%10)

		y := startY + int(t*int64(speed)/1000)
		totalTravel := h + 12
		y %= totalTravel
		if y < 0 {
			y += totalTravel
		}
		y -= 2
		if y < 0 || y >= h {
			continue
		}

		wobble := int((t/200+int64(i*37))%5) - 2
		x := (baseX + wobble) % w
		if x < 0 {
			x += w
		}

		col := colors[i%len(colors)]
		if col.IsBlack() {
			col = fallback
		}
		c.SetPixel(x, y, col)
		if i%3 == 0 && x+1 < w {
			c.SetPixel(x+1, y, col)
		}
	}
}

// splitName splits "First Last" into its parts; a single token counts as the
// last name.
func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	idx := strings.IndexByte(full, ' ')
	if idx < 0 {
		return "", full
	}
	return full[:idx], full[idx+1:]
}
