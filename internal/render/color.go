package render

// Color is an 8-bit-per-channel RGB pixel. The zero value is black, which
// doubles as the transparent key in logo bitmaps.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsBlack reports whether the color is the zero (transparent-key) color.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// EncodeRGB565 packs a color into the 16-bit 5-6-5 panel format.
func EncodeRGB565(c Color) uint16 {
	return uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B>>3)
}

// DecodeRGB565 expands a 5-6-5 value back to 8-bit channels.
func DecodeRGB565(v uint16) Color {
	return Color{
		R: uint8((v >> 11 & 0x1F) * 255 / 31),
		G: uint8((v >> 5 & 0x3F) * 255 / 63),
		B: uint8((v & 0x1F) * 255 / 31),
	}
}

// AdjustForLowDepth cleans up a 5-6-5 color for panels driven at reduced
// color depth. Near-black snaps to black, near-white to white, and the green
// tint that low depth gives near-greys is pulled back to neutral.
func AdjustForLowDepth(v uint16) uint16 {
	if v == 0 {
		return 0
	}
	c := DecodeRGB565(v)
	maxc := max8(c.R, max8(c.G, c.B))
	minc := min8(c.R, min8(c.G, c.B))

	if maxc < 20 {
		return 0
	}
	if minc > 220 {
		return 0xFFFF
	}

	if absDiff(c.R, c.B) < 12 && c.G > c.R+8 && c.G > c.B+8 {
		c.G = max8(c.R, c.B)
	}

	return EncodeRGB565(c)
}

func max8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func min8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
