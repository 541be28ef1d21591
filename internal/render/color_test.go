package render

import "testing"

func TestRGB565RoundTripExtremes(t *testing.T) {
	cases := []struct {
		name string
		in   Color
		want uint16
	}{
		{name: "black", in: RGB(0, 0, 0), want: 0x0000},
		{name: "white", in: RGB(255, 255, 255), want: 0xFFFF},
		{name: "red", in: RGB(255, 0, 0), want: 0xF800},
		{name: "green", in: RGB(0, 255, 0), want: 0x07E0},
		{name: "blue", in: RGB(0, 0, 255), want: 0x001F},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EncodeRGB565(tc.in)
			if got != tc.want {
				t.Fatalf("encode %+v: got %#04x, want %#04x", tc.in, got, tc.want)
			}
			back := DecodeRGB565(got)
			if back != tc.in {
				t.Fatalf("decode %#04x: got %+v, want %+v", got, back, tc.in)
			}
		})
	}
}

func TestAdjustForLowDepth(t *testing.T) {
	t.Run("zero passes through", func(t *testing.T) {
		if got := AdjustForLowDepth(0); got != 0 {
			t.Fatalf("got %#04x", got)
		}
	})

	t.Run("near black snaps to black", func(t *testing.T) {
		in := EncodeRGB565(RGB(10, 12, 8))
		if in == 0 {
			t.Fatalf("test color collapsed to zero")
		}
		if got := AdjustForLowDepth(in); got != 0 {
			t.Fatalf("got %#04x, want 0", got)
		}
	})

	t.Run("near white snaps to white", func(t *testing.T) {
		in := EncodeRGB565(RGB(240, 245, 238))
		if got := AdjustForLowDepth(in); got != 0xFFFF {
			t.Fatalf("got %#04x, want 0xFFFF", got)
		}
	})

	t.Run("green tint in grey is neutralized", func(t *testing.T) {
		in := EncodeRGB565(RGB(120, 140, 122))
		out := DecodeRGB565(AdjustForLowDepth(in))
		if out.G > out.R+4 && out.G > out.B+4 {
			t.Fatalf("green tint not reduced: %+v", out)
		}
	})

	t.Run("saturated color untouched", func(t *testing.T) {
		in := EncodeRGB565(RGB(200, 30, 40))
		if got := AdjustForLowDepth(in); got != in {
			t.Fatalf("got %#04x, want %#04x", got, in)
		}
	})
}
