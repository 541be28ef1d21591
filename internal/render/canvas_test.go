package render

import "testing"

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)

	c.SetPixel(-1, 0, RGB(255, 0, 0))
	c.SetPixel(0, -1, RGB(255, 0, 0))
	c.SetPixel(4, 0, RGB(255, 0, 0))
	c.SetPixel(0, 4, RGB(255, 0, 0))

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if !c.At(x, y).IsBlack() {
				t.Fatalf("pixel (%d,%d) written by out-of-bounds set", x, y)
			}
		}
	}
	if !c.At(-1, 99).IsBlack() {
		t.Fatalf("out-of-bounds read not black")
	}
}

func TestCanvasFillRectAndClear(t *testing.T) {
	c := NewCanvas(8, 8)
	red := RGB(255, 0, 0)

	c.FillRect(6, 6, 4, 4, red)

	if c.At(6, 6) != red || c.At(7, 7) != red {
		t.Fatalf("expected clipped fill inside bounds")
	}
	if !c.At(5, 5).IsBlack() {
		t.Fatalf("fill leaked outside rect")
	}

	c.Clear()
	if !c.At(7, 7).IsBlack() {
		t.Fatalf("clear left pixels set")
	}
}

func TestCanvasDrawBitmap(t *testing.T) {
	c := NewCanvas(8, 8)
	bm := Bitmap{
		Width:  2,
		Height: 2,
		Pixels: []Color{RGB(1, 1, 1), RGB(2, 2, 2), RGB(3, 3, 3), RGB(4, 4, 4)},
	}

	c.DrawBitmap(3, 3, bm)

	if c.At(3, 3) != RGB(1, 1, 1) || c.At(4, 4) != RGB(4, 4, 4) {
		t.Fatalf("bitmap not blitted at offset")
	}

	// Partially off-screen blits must clip, not wrap.
	c.Clear()
	c.DrawBitmap(7, 7, bm)
	if c.At(7, 7) != RGB(1, 1, 1) {
		t.Fatalf("visible corner not drawn")
	}
	if !c.At(0, 0).IsBlack() {
		t.Fatalf("blit wrapped around canvas edge")
	}
}

func TestCanvasDrawBitmapScaled(t *testing.T) {
	src := Bitmap{Width: 2, Height: 2, Pixels: []Color{
		RGB(10, 0, 0), RGB(0, 10, 0),
		RGB(0, 0, 10), RGB(10, 10, 10),
	}}
	c := NewCanvas(8, 8)

	c.DrawBitmapScaled(0, 0, 4, src)

	// Nearest neighbor: each source pixel covers a 2x2 block.
	if c.At(0, 0) != RGB(10, 0, 0) || c.At(1, 1) != RGB(10, 0, 0) {
		t.Fatalf("top-left block wrong")
	}
	if c.At(3, 3) != RGB(10, 10, 10) {
		t.Fatalf("bottom-right block wrong")
	}

	// Native-size blit goes through unscaled.
	c.Clear()
	c.DrawBitmapScaled(0, 0, 2, src)
	if c.At(1, 0) != RGB(0, 10, 0) {
		t.Fatalf("native-size blit wrong")
	}
}

func TestFontWidths(t *testing.T) {
	if got := TextWidth("GOAL"); got != 24 {
		t.Fatalf("std width: got %d, want 24", got)
	}
	if got := MiniTextWidth("PP"); got != 8 {
		t.Fatalf("mini width: got %d, want 8", got)
	}
	if got := MiniTextWidth(""); got != 0 {
		t.Fatalf("empty width: got %d, want 0", got)
	}
}

func TestDrawTextFoldsCaseAndSkipsUnknown(t *testing.T) {
	upper := NewCanvas(16, 8)
	lower := NewCanvas(16, 8)
	DrawText(upper, 0, 0, "AB", RGB(255, 255, 255))
	DrawText(lower, 0, 0, "ab", RGB(255, 255, 255))

	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if upper.At(x, y) != lower.At(x, y) {
				t.Fatalf("case fold mismatch at (%d,%d)", x, y)
			}
		}
	}

	blank := NewCanvas(8, 8)
	DrawText(blank, 0, 0, "~", RGB(255, 255, 255))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !blank.At(x, y).IsBlack() {
				t.Fatalf("unknown glyph drew pixels")
			}
		}
	}
}

func TestDrawMiniTextRendersGlyphs(t *testing.T) {
	c := NewCanvas(8, 8)
	white := RGB(255, 255, 255)

	// '1' top row is just the middle column.
	DrawMiniText(c, 0, 0, "1", white)
	if c.At(1, 0) != white {
		t.Fatalf("expected center pixel of '1' set")
	}
	if c.At(0, 0) == white || c.At(2, 0) == white {
		t.Fatalf("unexpected pixels in top row of '1'")
	}
}
