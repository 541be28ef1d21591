package assets

import (
	"errors"
	"sort"
	"strings"

	"nhl-scoreboard/internal/render"
)

var errBadLogoSize = errors.New("assets: logo file is not 20x20 or 25x25 rgb565")

// teamPalettes maps team abbreviations to their jersey colors, brightest
// first. Near-black entries are avoided so animation code never has to fall
// back to white mid-palette.
var teamPalettes = map[string][]render.Color{
	"ANA": {render.RGB(252, 76, 2), render.RGB(185, 151, 91)},
	"BOS": {render.RGB(252, 181, 20), render.RGB(17, 17, 17)},
	"BUF": {render.RGB(0, 48, 135), render.RGB(255, 184, 28)},
	"CAR": {render.RGB(204, 0, 0), render.RGB(162, 169, 175)},
	"CBJ": {render.RGB(0, 38, 84), render.RGB(206, 17, 38)},
	"CGY": {render.RGB(200, 16, 46), render.RGB(241, 190, 72)},
	"CHI": {render.RGB(207, 10, 44), render.RGB(255, 209, 0)},
	"COL": {render.RGB(111, 38, 61), render.RGB(35, 97, 146)},
	"DAL": {render.RGB(0, 104, 71), render.RGB(143, 143, 140)},
	"DET": {render.RGB(206, 17, 38), render.RGB(255, 255, 255)},
	"EDM": {render.RGB(252, 76, 2), render.RGB(4, 30, 66)},
	"FLA": {render.RGB(200, 16, 46), render.RGB(185, 151, 91), render.RGB(4, 30, 66)},
	"LAK": {render.RGB(162, 170, 173), render.RGB(17, 17, 17)},
	"MIN": {render.RGB(2, 73, 48), render.RGB(175, 35, 36)},
	"MTL": {render.RGB(175, 30, 45), render.RGB(25, 33, 104)},
	"NJD": {render.RGB(206, 17, 38), render.RGB(17, 17, 17)},
	"NSH": {render.RGB(255, 184, 28), render.RGB(4, 30, 66)},
	"NYI": {render.RGB(0, 83, 155), render.RGB(244, 125, 48)},
	"NYR": {render.RGB(0, 56, 168), render.RGB(206, 17, 38)},
	"OTT": {render.RGB(218, 26, 50), render.RGB(179, 134, 0)},
	"PHI": {render.RGB(250, 70, 22), render.RGB(255, 255, 255)},
	"PIT": {render.RGB(252, 181, 20), render.RGB(16, 24, 32)},
	"SEA": {render.RGB(153, 217, 217), render.RGB(0, 22, 41)},
	"SJS": {render.RGB(0, 109, 117), render.RGB(234, 114, 0)},
	"STL": {render.RGB(0, 47, 135), render.RGB(252, 181, 20)},
	"TBL": {render.RGB(0, 40, 104), render.RGB(255, 255, 255)},
	"TOR": {render.RGB(0, 32, 91), render.RGB(255, 255, 255)},
	"UTA": {render.RGB(105, 190, 231), render.RGB(255, 255, 255)},
	"VAN": {render.RGB(0, 32, 91), render.RGB(0, 132, 61)},
	"VGK": {render.RGB(185, 151, 91), render.RGB(51, 63, 72)},
	"WPG": {render.RGB(4, 30, 66), render.RGB(172, 22, 44)},
	"WSH": {render.RGB(200, 16, 46), render.RGB(4, 30, 66)},
}

// TeamColors returns up to maxColors palette entries for a team, or nil if
// the team is unknown.
func TeamColors(abbrev string, maxColors int) []render.Color {
	palette, ok := teamPalettes[strings.ToUpper(strings.TrimSpace(abbrev))]
	if !ok || maxColors <= 0 {
		return nil
	}
	if len(palette) > maxColors {
		palette = palette[:maxColors]
	}
	out := make([]render.Color, len(palette))
	copy(out, palette)
	return out
}

// DominantColors extracts the most frequent colors from a logo, ignoring the
// black transparency key. At most twelve distinct colors are counted; the
// scan stops adding new ones past that.
func DominantColors(bm render.Bitmap, maxColors int) []render.Color {
	if maxColors <= 0 || bm.Width == 0 || bm.Height == 0 {
		return nil
	}

	const maxUnique = 12
	type bucket struct {
		color render.Color
		count int
	}
	var buckets []bucket

	for y := 0; y < bm.Height; y++ {
	pixel:
		for x := 0; x < bm.Width; x++ {
			c := bm.At(x, y)
			if c.IsBlack() {
				continue
			}
			for i := range buckets {
				if buckets[i].color == c {
					buckets[i].count++
					continue pixel
				}
			}
			if len(buckets) < maxUnique {
				buckets = append(buckets, bucket{color: c, count: 1})
			}
		}
	}
	if len(buckets) == 0 {
		return nil
	}

	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].count > buckets[j].count })
	if len(buckets) > maxColors {
		buckets = buckets[:maxColors]
	}
	out := make([]render.Color, len(buckets))
	for i, b := range buckets {
		out[i] = b.color
	}
	return out
}
