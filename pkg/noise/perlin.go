package noise

import (
	"math"
	"sync"

	"github.com/aquilax/go-perlin"
)

// perlinRange scales classic 2D gradient noise, which peaks near ±1/√2, to ±1.
const perlinRange = math.Sqrt2

type octaveKey struct {
	octaves     int
	persistence float64
}

// PerlinKernel is the default kernel, backed by seeded Perlin gradient noise.
//
// go-perlin bakes the octave count and weight decay into each generator, so
// one generator is kept per (octaves, persistence) pair. All generators share
// the kernel seed and therefore the same gradient tables.
type PerlinKernel struct {
	seed int64

	mu   sync.Mutex
	gens map[octaveKey]*perlin.Perlin
}

// NewPerlinKernel creates a Perlin kernel with the given seed.
func NewPerlinKernel(seed int64) *PerlinKernel {
	return &PerlinKernel{
		seed: seed,
		gens: make(map[octaveKey]*perlin.Perlin),
	}
}

// Seed returns the kernel seed.
func (k *PerlinKernel) Seed() int64 {
	return k.seed
}

// OctaveNoise2D implements Kernel.
func (k *PerlinKernel) OctaveNoise2D(x, z float64, octaves int, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	if persistence <= 0 {
		// Every octave after the first has zero weight.
		octaves = 1
		persistence = 1
	}

	gen := k.generator(octaves, persistence)
	sum := gen.Noise2D(x, z)
	return remap01(sum * perlinRange / octaveWeight(octaves, persistence))
}

func (k *PerlinKernel) generator(octaves int, persistence float64) *perlin.Perlin {
	key := octaveKey{octaves: octaves, persistence: persistence}

	k.mu.Lock()
	defer k.mu.Unlock()

	gen, ok := k.gens[key]
	if !ok {
		// alpha divides each successive octave, beta multiplies its frequency.
		gen = perlin.NewPerlin(1/persistence, 2, int32(octaves), k.seed)
		k.gens[key] = gen
	}
	return gen
}
