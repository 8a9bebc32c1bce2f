package srp

import "testing"

func TestPackRGBA8888(t *testing.T) {
	tests := []struct {
		name   string
		c      Color
		expect uint32
	}{
		{"black opaque", ColorBlack, 0x000000FF},
		{"white opaque", ColorWhite, 0xFFFFFFFF},
		{"red opaque", ColorRed, 0xFF0000FF},
		{"transparent", ColorTransparent, 0x00000000},
		{"out of range clamps", RGBAColor(2, -1, 0.5, 1), 0xFF0080FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PackRGBA8888(tt.c)
			if got != tt.expect {
				t.Errorf("PackRGBA8888(%v) = %#08x, want %#08x", tt.c, got, tt.expect)
			}
		})
	}
}

func TestUnpackRGBA8888_Roundtrip(t *testing.T) {
	original := RGBAColor(0.2, 0.4, 0.6, 0.8)
	packed := PackRGBA8888(original)
	got := UnpackRGBA8888(packed)

	const tolerance = 1.0 / 255
	if absDiff(original.R, got.R) > tolerance ||
		absDiff(original.G, got.G) > tolerance ||
		absDiff(original.B, got.B) > tolerance ||
		absDiff(original.A, got.A) > tolerance {
		t.Errorf("roundtrip: %v -> %#08x -> %v", original, packed, got)
	}
}

func TestColor_Lerp(t *testing.T) {
	a := ColorBlack
	b := ColorWhite
	mid := a.Lerp(b, 0.5)
	want := RGBAColor(0.5, 0.5, 0.5, 1)
	if !approxColor(mid, want, 1e-9) {
		t.Errorf("Lerp = %v, want %v", mid, want)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func approxColor(a, b Color, eps float64) bool {
	return absDiff(a.R, b.R) < eps && absDiff(a.G, b.G) < eps &&
		absDiff(a.B, b.B) < eps && absDiff(a.A, b.A) < eps
}
