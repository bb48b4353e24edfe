package terrain

import "testing"

func TestHeightOf(t *testing.T) {
	tests := []struct {
		noise float32
		want  float32
	}{
		{0, 50},
		{0.3, 50},
		{0.5, 50},
		{-0.2, 50},
		{0.75, 75},
		{1, 100},
		{1.5, 150},
	}

	for _, tt := range tests {
		if got := HeightOf(tt.noise); got != tt.want {
			t.Errorf("HeightOf(%v) = %v, want %v", tt.noise, got, tt.want)
		}
	}

	if got := HeightOf(0.8); got < 79.999 || got > 80.001 {
		t.Errorf("HeightOf(0.8) = %v, want ~80", got)
	}
}

func TestHeightOfFlatBelowSeaLevel(t *testing.T) {
	for i := 0; i <= 500; i++ {
		n := float32(i) / 1000
		if got := HeightOf(n); got != 50 {
			t.Fatalf("HeightOf(%v) = %v, want 50", n, got)
		}
	}
	for i := 501; i <= 1000; i++ {
		n := float32(i) / 1000
		if got := HeightOf(n); got != n*100 {
			t.Fatalf("HeightOf(%v) = %v, want %v", n, got, n*100)
		}
	}
}

func TestColorOfAnchors(t *testing.T) {
	tests := []struct {
		noise float32
		want  RGB
	}{
		{0.0, RGB{0, 0, 128}},
		{0.0375, RGB{0, 0, 255}},
		{0.5, RGB{0, 128, 255}},
		{0.53125, RGB{240, 240, 64}},
		{0.5625, RGB{32, 160, 0}},
		{0.6875, RGB{64, 64, 64}},
		{0.875, RGB{128, 128, 128}},
		{1.0, RGB{255, 255, 255}},
	}

	for _, tt := range tests {
		if got := ColorOf(tt.noise); got != tt.want {
			t.Errorf("ColorOf(%v) = %v, want %v", tt.noise, got, tt.want)
		}
	}
}

func TestColorOfInterpolates(t *testing.T) {
	// Halfway through rock: 128 + 127*0.5 = 191.5, truncated.
	if got := ColorOf(0.9375); got != (RGB{191, 191, 191}) {
		t.Errorf("ColorOf(0.9375) = %v, want {191 191 191}", got)
	}
	// Halfway through deep: blue 128 + 127*0.5 = 191.5, truncated.
	if got := ColorOf(0.01875); got != (RGB{0, 0, 191}) {
		t.Errorf("ColorOf(0.01875) = %v, want {0 0 191}", got)
	}
}

func TestColorOfClamps(t *testing.T) {
	if got := ColorOf(-0.5); got != ColorOf(0) {
		t.Errorf("ColorOf(-0.5) = %v, want %v", got, ColorOf(0))
	}
	if got := ColorOf(1.7); got != ColorOf(1) {
		t.Errorf("ColorOf(1.7) = %v, want %v", got, ColorOf(1))
	}
}

func TestBandBoundariesAreContinuous(t *testing.T) {
	bands := DefaultBands()

	for i := 0; i < len(bands)-1; i++ {
		upper := bands[i]
		lower := bands[i+1]

		if lower.Ceiling != upper.Floor {
			t.Errorf("%s ceiling %v != %s floor %v", lower.Name, lower.Ceiling, upper.Name, upper.Floor)
		}

		fromBelow := lower.Interpolate(lower.Ceiling)
		fromAbove := upper.Interpolate(upper.Floor)
		if fromBelow != fromAbove {
			t.Errorf("seam at %v: %s gives %v, %s gives %v",
				upper.Floor, lower.Name, fromBelow, upper.Name, fromAbove)
		}
		if got := bands.ColorOf(upper.Floor); got != fromAbove {
			t.Errorf("ColorOf(%v) = %v, want %v", upper.Floor, got, fromAbove)
		}
	}
}

func TestClassify(t *testing.T) {
	bands := DefaultBands()
	tests := []struct {
		noise float32
		want  string
	}{
		{0, "deep"},
		{0.0374, "deep"},
		{0.0375, "shallow"},
		{0.4999, "shallow"},
		{0.5, "shore"},
		{0.54, "sand"},
		{0.6, "grass"},
		{0.7, "dirt"},
		{0.9, "rock"},
		{1, "rock"},
		{-3, "deep"},
	}

	for _, tt := range tests {
		if got := bands.Classify(tt.noise).Name; got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.noise, got, tt.want)
		}
	}
}

func TestDefaultBandsIsFresh(t *testing.T) {
	a := DefaultBands()
	a[0].Top = RGB{1, 2, 3}
	if b := DefaultBands(); b[0].Top != (RGB{255, 255, 255}) {
		t.Errorf("DefaultBands shares state: top = %v", b[0].Top)
	}
}
