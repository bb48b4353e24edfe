package terrain

import (
	"github.com/Faultbox/midgard-terrain/pkg/noise"
)

// GenerateHeightfield samples a size×size grid of noise for a tile at the
// given world offset and classifies every cell into a colour.
//
// Elevation keeps the raw noise value; the height curve is applied when the
// mesh is built.
func GenerateHeightfield(s *noise.Sampler, size uint32, octaves int, offsetX, offsetZ float64, bands BandTable) *Heightfield {
	n := int(size)
	hf := &Heightfield{
		Size:      size,
		Elevation: make([]float32, n*n),
		Colors:    make([]uint8, n*n*3),
	}

	for z := range n {
		for x := range n {
			v := float32(s.Sample(float64(x), float64(z), octaves, 1, size, offsetX, offsetZ))

			idx := x + z*n
			hf.Elevation[idx] = v

			c := bands.ColorOf(v)
			hf.Colors[3*idx] = c.R
			hf.Colors[3*idx+1] = c.G
			hf.Colors[3*idx+2] = c.B
		}
	}

	return hf
}

// At returns the raw noise value of cell (x, z).
func (hf *Heightfield) At(x, z int) float32 {
	return hf.Elevation[x+z*int(hf.Size)]
}

// ColorAt returns the colour of cell (x, z).
func (hf *Heightfield) ColorAt(x, z int) RGB {
	i := 3 * (x + z*int(hf.Size))
	return RGB{hf.Colors[i], hf.Colors[i+1], hf.Colors[i+2]}
}

// Stats computes value range, mean and per-band cell counts.
func (hf *Heightfield) Stats(bands BandTable) Stats {
	st := Stats{BandCells: make(map[string]int, len(bands))}
	if len(hf.Elevation) == 0 {
		return st
	}

	st.Min = hf.Elevation[0]
	st.Max = hf.Elevation[0]
	var sum float64
	for _, v := range hf.Elevation {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += float64(v)
		st.BandCells[bands.Classify(v).Name]++
	}
	st.Mean = float32(sum / float64(len(hf.Elevation)))

	return st
}
