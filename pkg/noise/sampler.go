package noise

// Params are the initial values of the octave progression. Sample derives
// the per-octave values from them; the struct itself is never modified.
type Params struct {
	Persistence float64 `yaml:"persistence"`
	Amplitude   float64 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
}

// DefaultParams returns the standard terrain progression start values.
func DefaultParams() Params {
	return Params{
		Persistence: 0.3,
		Amplitude:   1.0,
		Frequency:   4.0,
	}
}

// Progression step applied between octaves.
const (
	persistenceStep = 0.05
	frequencyGain   = 2.0
	amplitudeGain   = 0.5
)

// Sampler produces layered noise values for tile-local coordinates.
type Sampler struct {
	kernel Kernel
	params Params
}

// NewSampler creates a sampler over kernel starting from params.
func NewSampler(kernel Kernel, params Params) *Sampler {
	return &Sampler{
		kernel: kernel,
		params: params,
	}
}

// Params returns the sampler's initial octave parameters.
func (s *Sampler) Params() Params {
	return s.params
}

// Kernel returns the underlying noise kernel.
func (s *Sampler) Kernel() Kernel {
	return s.kernel
}

// Sample returns the layered noise value at tile-local (worldX, worldZ).
//
// Octaves startOctave..numOctaves are summed. Octave i asks the kernel for
// i fractal layers. Between octaves persistence grows by 0.05, frequency
// doubles and amplitude halves. The sum is divided by the total amplitude
// actually applied, so the result stays in roughly [0, 1].
//
// The coordinate is shifted by the tile offset and scaled by
// frequency/chunkSize, so neighbouring tiles sample a continuous field.
// A startOctave below 1 is treated as 1; when no octave is in range the
// result is 0. A zero chunkSize also yields 0.
func (s *Sampler) Sample(worldX, worldZ float64, numOctaves, startOctave int, chunkSize uint32, tileOffsetX, tileOffsetZ float64) float64 {
	if chunkSize == 0 {
		return 0
	}
	if startOctave < 1 {
		startOctave = 1
	}

	persistence := s.params.Persistence
	amplitude := s.params.Amplitude
	frequency := s.params.Frequency
	noiseWeight := amplitude
	size := float64(chunkSize)

	var result float64
	for i := startOctave - 1; i < numOctaves; i++ {
		sx := (worldX + tileOffsetX) * (frequency / size)
		sz := (worldZ + tileOffsetZ) * (frequency / size)

		result += amplitude * s.kernel.OctaveNoise2D(sx, sz, i+1, persistence)

		if i == numOctaves-1 {
			break
		}

		persistence += persistenceStep
		frequency *= frequencyGain
		amplitude *= amplitudeGain
		noiseWeight += amplitude
	}

	if noiseWeight == 0 {
		return 0
	}
	return result / noiseWeight
}
