package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// SimplexKernel layers OpenSimplex noise with the same octave recipe as the
// Perlin kernel: frequency doubles and weight decays by persistence.
type SimplexKernel struct {
	seed  int64
	noise opensimplex.Noise
}

// NewSimplexKernel creates an OpenSimplex kernel with the given seed.
func NewSimplexKernel(seed int64) *SimplexKernel {
	return &SimplexKernel{
		seed:  seed,
		noise: opensimplex.New(seed),
	}
}

// Seed returns the kernel seed.
func (k *SimplexKernel) Seed() int64 {
	return k.seed
}

// OctaveNoise2D implements Kernel.
func (k *SimplexKernel) OctaveNoise2D(x, z float64, octaves int, persistence float64) float64 {
	if octaves < 1 || persistence <= 0 {
		octaves = 1
	}

	var total, maxAmp float64
	amplitude := 1.0
	frequency := 1.0
	for i := 0; i < octaves; i++ {
		total += k.noise.Eval2(x*frequency, z*frequency) * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return remap01(total / maxAmp)
}
