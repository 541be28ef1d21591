// Package panel models the physical LED matrix as a double-buffered frame
// target. Scenes draw into the back canvas; Swap publishes an immutable copy
// so no consumer ever observes a partially drawn frame.
package panel

import (
	"sync"

	"nhl-scoreboard/internal/render"
)

// Sink receives every published frame. Implementations must not retain the
// bitmap's pixel slice past the call unless they copy it; the slice they get
// is owned by them (Swap hands out fresh copies).
type Sink interface {
	PresentFrame(frame render.Bitmap)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(frame render.Bitmap)

func (f SinkFunc) PresentFrame(frame render.Bitmap) { f(frame) }

// Panel is the double-buffered output surface.
type Panel struct {
	mu      sync.Mutex
	back    *render.Canvas
	front   render.Bitmap
	enabled bool
	sinks   []Sink
}

// New constructs an enabled panel of the given dimensions.
func New(w, h int, sinks ...Sink) *Panel {
	p := &Panel{
		back:    render.NewCanvas(w, h),
		enabled: true,
		sinks:   sinks,
	}
	p.front = render.Bitmap{Width: p.back.Width(), Height: p.back.Height(), Pixels: make([]render.Color, w*h)}
	return p
}

func (p *Panel) Width() int  { return p.back.Width() }
func (p *Panel) Height() int { return p.back.Height() }

// Back returns the drawing target for the next frame. Only the display loop
// goroutine may draw into it.
func (p *Panel) Back() *render.Canvas { return p.back }

// Swap publishes the back canvas as the visible frame and fans it out to all
// sinks. A disabled panel publishes black regardless of what was drawn.
func (p *Panel) Swap() {
	p.mu.Lock()
	src := p.back.Pixels()
	pixels := make([]render.Color, len(src))
	if p.enabled {
		copy(pixels, src)
	}
	p.front = render.Bitmap{Width: p.back.Width(), Height: p.back.Height(), Pixels: pixels}
	frame := p.front
	sinks := p.sinks
	p.mu.Unlock()

	for _, s := range sinks {
		out := render.Bitmap{Width: frame.Width, Height: frame.Height, Pixels: make([]render.Color, len(frame.Pixels))}
		copy(out.Pixels, frame.Pixels)
		s.PresentFrame(out)
	}
}

// SetEnabled gates output. Disabling immediately publishes a blank frame so
// the matrix goes dark without waiting for the next tick.
func (p *Panel) SetEnabled(enabled bool) {
	p.mu.Lock()
	was := p.enabled
	p.enabled = enabled
	p.mu.Unlock()

	if was && !enabled {
		p.back.Clear()
		p.Swap()
	}
}

// Enabled reports whether output is on.
func (p *Panel) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Frame returns a copy of the most recently published frame.
func (p *Panel) Frame() render.Bitmap {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := render.Bitmap{Width: p.front.Width, Height: p.front.Height, Pixels: make([]render.Color, len(p.front.Pixels))}
	copy(out.Pixels, p.front.Pixels)
	return out
}
