package render

// Bitmap is an immutable rectangle of pixels, row-major.
type Bitmap struct {
	Width  int
	Height int
	Pixels []Color
}

// At returns the pixel at (x, y); out-of-range coordinates are black.
func (b Bitmap) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Color{}
	}
	idx := y*b.Width + x
	if idx >= len(b.Pixels) {
		return Color{}
	}
	return b.Pixels[idx]
}

// Canvas is an off-screen frame buffer the scenes draw into. All drawing
// calls clip to the canvas bounds.
type Canvas struct {
	w, h int
	pix  []Color
}

// NewCanvas allocates a cleared canvas.
func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Canvas{w: w, h: h, pix: make([]Color, w*h)}
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// Pixels exposes the row-major backing slice. Callers must not hold it
// across a Clear.
func (c *Canvas) Pixels() []Color { return c.pix }

// Clear resets every pixel to black.
func (c *Canvas) Clear() {
	for i := range c.pix {
		c.pix[i] = Color{}
	}
}

// SetPixel writes one pixel, ignoring out-of-bounds coordinates.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.pix[y*c.w+x] = col
}

// At reads one pixel; out-of-bounds reads are black.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return Color{}
	}
	return c.pix[y*c.w+x]
}

// FillRect fills the rectangle with one color.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.SetPixel(xx, yy, col)
		}
	}
}

// VLine draws a vertical line of the given height.
func (c *Canvas) VLine(x, y, h int, col Color) {
	for yy := y; yy < y+h; yy++ {
		c.SetPixel(x, yy, col)
	}
}

// DrawBitmap blits a bitmap at (x, y), painting every source pixel.
func (c *Canvas) DrawBitmap(x, y int, bm Bitmap) {
	for yy := 0; yy < bm.Height; yy++ {
		for xx := 0; xx < bm.Width; xx++ {
			c.SetPixel(x+xx, y+yy, bm.At(xx, yy))
		}
	}
}

// DrawBitmapScaled blits a bitmap resized to size x size pixels using
// nearest-neighbor sampling. A bitmap already at the target size is blitted
// directly.
func (c *Canvas) DrawBitmapScaled(x, y, size int, bm Bitmap) {
	if bm.Width == 0 || bm.Height == 0 || size <= 0 {
		return
	}
	if bm.Width == size && bm.Height == size {
		c.DrawBitmap(x, y, bm)
		return
	}
	for yy := 0; yy < size; yy++ {
		sy := yy * bm.Height / size
		for xx := 0; xx < size; xx++ {
			sx := xx * bm.Width / size
			c.SetPixel(x+xx, y+yy, bm.At(sx, sy))
		}
	}
}
