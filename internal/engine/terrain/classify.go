package terrain

import gomath "math"

// Sea level used for the flattened lower half of the noise range.
const (
	seaLevelNoise  = 0.5
	seaLevelHeight = 50
	heightScale    = 100
)

// HeightOf maps a noise value to a vertex height. Everything at or below
// sea level is flattened to a constant plain; above it height rises linearly.
func HeightOf(noise float32) float32 {
	if noise <= seaLevelNoise {
		return seaLevelHeight
	}
	return noise * heightScale
}

// Band is one noise interval of the colour classification. Colours are
// interpolated from Base at Floor to Top at Ceiling.
type Band struct {
	Name    string
	Floor   float32
	Ceiling float32
	Base    RGB
	Top     RGB
}

// BandTable is an ordered list of bands, highest floor first. The last band
// catches every value below the floors of the others.
type BandTable []Band

// DefaultBands returns the standard deep-water-to-snow band table.
func DefaultBands() BandTable {
	var (
		deep    = RGB{0, 0, 128}
		shallow = RGB{0, 0, 255}
		shore   = RGB{0, 128, 255}
		sand    = RGB{240, 240, 64}
		grass   = RGB{32, 160, 0}
		dirt    = RGB{64, 64, 64}
		rock    = RGB{128, 128, 128}
		snow    = RGB{255, 255, 255}
	)

	return BandTable{
		{Name: "rock", Floor: 0.875, Ceiling: 1.0, Base: rock, Top: snow},
		{Name: "dirt", Floor: 0.6875, Ceiling: 0.875, Base: dirt, Top: rock},
		{Name: "grass", Floor: 0.5625, Ceiling: 0.6875, Base: grass, Top: dirt},
		{Name: "sand", Floor: 0.53125, Ceiling: 0.5625, Base: sand, Top: grass},
		{Name: "shore", Floor: 0.5, Ceiling: 0.53125, Base: shore, Top: sand},
		{Name: "shallow", Floor: 0.0375, Ceiling: 0.5, Base: shallow, Top: shore},
		{Name: "deep", Floor: 0.0, Ceiling: 0.0375, Base: deep, Top: shallow},
	}
}

// ColorOf classifies noise with the default band table.
func ColorOf(noise float32) RGB {
	return DefaultBands().ColorOf(noise)
}

// Classify returns the band a noise value falls into. Noise is clamped to
// [0, 1] first.
func (t BandTable) Classify(noise float32) Band {
	if len(t) == 0 {
		return Band{}
	}
	noise = clamp01(noise)
	for _, b := range t[:len(t)-1] {
		if noise >= b.Floor {
			return b
		}
	}
	return t[len(t)-1]
}

// ColorOf returns the interpolated colour for a noise value. Noise is clamped
// to [0, 1] before lookup; channels are truncated, not rounded.
func (t BandTable) ColorOf(noise float32) RGB {
	noise = clamp01(noise)
	return t.Classify(noise).Interpolate(noise)
}

// Interpolate returns the band colour at noise.
func (b Band) Interpolate(noise float32) RGB {
	span := b.Ceiling - b.Floor
	if span == 0 {
		return b.Base
	}
	frac := (noise - b.Floor) / span
	return RGB{
		R: lerpChannel(b.Base.R, b.Top.R, frac),
		G: lerpChannel(b.Base.G, b.Top.G, frac),
		B: lerpChannel(b.Base.B, b.Top.B, frac),
	}
}

func lerpChannel(base, top uint8, frac float32) uint8 {
	v := (float32(top)-float32(base))*frac + float32(base)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(v float32) float32 {
	if gomath.IsNaN(float64(v)) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
