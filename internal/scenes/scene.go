// Package scenes implements the three presentations the display loop can
// drive: the standard scoreboard, the goal celebration overlay, and the
// post-game recap carousel.
package scenes

import (
	"time"

	"nhl-scoreboard/internal/domain"
	"nhl-scoreboard/internal/render"
)

// LogoSource supplies team logo bitmaps. Lookups must be cheap enough to
// call every frame.
type LogoSource interface {
	Get(abbrev string) (render.Bitmap, bool)
}

// Scene renders one frame. The meaning of t differs per scene: the goal
// scene takes time since the animation started, the others take the
// display's monotonic timeline.
type Scene interface {
	Render(c *render.Canvas, snap domain.GameSnapshot, t time.Duration)
}
