package stream

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"time"

	"nhl-scoreboard/internal/render"
)

// FramePayload is the wire shape of one panel frame. Pixels is base64 of
// little-endian RGB565 words, row-major, matching the logo asset format.
type FramePayload struct {
	Type   string `json:"type"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
	Pixels string `json:"pixels"`
}

// EncodeFrame packs a bitmap into a broadcastable payload.
func EncodeFrame(frame render.Bitmap) FramePayload {
	buf := make([]byte, len(frame.Pixels)*2)
	for i, c := range frame.Pixels {
		binary.LittleEndian.PutUint16(buf[i*2:], render.EncodeRGB565(c))
	}
	return FramePayload{
		Type:   "frame",
		Width:  frame.Width,
		Height: frame.Height,
		Pixels: base64.StdEncoding.EncodeToString(buf),
	}
}

// Sink adapts the hub to the panel's frame fan-out, throttling broadcasts so
// websocket clients are not fed the full panel refresh rate.
type Sink struct {
	hub      *Hub
	minGap   time.Duration
	now      func() time.Time
	lastSent time.Time
}

// NewSink creates a panel sink that forwards at most one frame per minGap.
func NewSink(hub *Hub, minGap time.Duration) *Sink {
	if minGap <= 0 {
		minGap = 100 * time.Millisecond
	}
	return &Sink{hub: hub, minGap: minGap, now: time.Now}
}

// PresentFrame implements panel.Sink. It is only called from the render
// loop, so lastSent needs no locking.
func (s *Sink) PresentFrame(frame render.Bitmap) {
	if s.hub == nil || s.hub.ClientCount() == 0 {
		return
	}
	now := s.now()
	if !s.lastSent.IsZero() && now.Sub(s.lastSent) < s.minGap {
		return
	}
	s.lastSent = now

	raw, err := json.Marshal(EncodeFrame(frame))
	if err != nil {
		return
	}
	s.hub.Broadcast(raw)
}
