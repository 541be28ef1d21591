package assets

import (
	"testing"

	"nhl-scoreboard/internal/render"
)

func TestTeamColorsLookup(t *testing.T) {
	colors := TeamColors("mtl", 3)
	if len(colors) != 2 {
		t.Fatalf("expected 2 colors for MTL, got %d", len(colors))
	}
	if colors[0] != render.RGB(175, 30, 45) {
		t.Fatalf("unexpected primary %+v", colors[0])
	}

	if got := TeamColors("FLA", 1); len(got) != 1 {
		t.Fatalf("expected palette truncated to 1, got %d", len(got))
	}
	if got := TeamColors("XXX", 3); got != nil {
		t.Fatalf("expected nil for unknown team, got %v", got)
	}
	if got := TeamColors("MTL", 0); got != nil {
		t.Fatalf("expected nil for zero budget, got %v", got)
	}
}

func TestTeamColorsReturnsCopy(t *testing.T) {
	a := TeamColors("TOR", 2)
	a[0] = render.RGB(1, 2, 3)
	b := TeamColors("TOR", 2)
	if b[0] == render.RGB(1, 2, 3) {
		t.Fatalf("palette mutated through returned slice")
	}
}

func TestDominantColorsOrdersByFrequency(t *testing.T) {
	red := render.RGB(200, 0, 0)
	blue := render.RGB(0, 0, 200)
	bm := render.Bitmap{Width: 3, Height: 2, Pixels: []render.Color{
		red, red, blue,
		red, {}, blue,
	}}

	colors := DominantColors(bm, 3)
	if len(colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(colors))
	}
	if colors[0] != red || colors[1] != blue {
		t.Fatalf("unexpected order: %v", colors)
	}
}

func TestDominantColorsIgnoresAllBlackLogo(t *testing.T) {
	bm := render.Bitmap{Width: 2, Height: 2, Pixels: make([]render.Color, 4)}
	if got := DominantColors(bm, 3); got != nil {
		t.Fatalf("expected nil for all-black bitmap, got %v", got)
	}
}
