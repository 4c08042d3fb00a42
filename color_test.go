package vg

import "testing"

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"short rgb", "#f00", Red},
		{"short rgba", "#0f08", RGBA{G: 1, A: 136.0 / 255}},
		{"long rgb", "#00ff00", Green},
		{"long rgba", "#0000ff80", RGBA{B: 1, A: 128.0 / 255}},
		{"no prefix", "ffffff", White},
		{"invalid length", "#abcde", Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestPremul(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want [4]uint8
	}{
		{"opaque white", White, [4]uint8{255, 255, 255, 255}},
		{"opaque red", Red, [4]uint8{255, 0, 0, 255}},
		{"half red", Red.WithAlpha(0.5), [4]uint8{127, 0, 0, 127}},
		{"transparent", Transparent, [4]uint8{0, 0, 0, 0}},
		{"out of range clamps", RGBA{R: 2, G: -1, A: 1}, [4]uint8{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Premul()
			if got != tt.want {
				t.Errorf("Premul() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMulAlpha(t *testing.T) {
	c := White.MulAlpha(0.5).MulAlpha(0.5)
	if c.A != 0.25 {
		t.Errorf("MulAlpha chain: A = %v, want 0.25", c.A)
	}
	if !Transparent.IsTransparent() {
		t.Error("Transparent.IsTransparent() = false")
	}
	if White.IsTransparent() {
		t.Error("White.IsTransparent() = true")
	}
}

func TestFromColorRoundtrip(t *testing.T) {
	orig := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 0.5}
	back := FromColor(orig.Color())
	const eps = 1.0 / 127 // 8-bit quantization through NRGBA
	if d := back.R - orig.R; d > eps || d < -eps {
		t.Errorf("R drifted: %v -> %v", orig.R, back.R)
	}
	if d := back.A - orig.A; d > eps || d < -eps {
		t.Errorf("A drifted: %v -> %v", orig.A, back.A)
	}
}
