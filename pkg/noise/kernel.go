// Package noise provides seeded fractal noise kernels and the layered sampler
// used to build terrain heightfields.
package noise

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSeed is the fixed seed used when no other seed is configured.
const DefaultSeed int64 = 123456

// ErrUnknownKernel is returned by KernelByName for unsupported kernel names.
var ErrUnknownKernel = errors.New("unknown noise kernel")

// Kernel is a seeded fractal noise function.
//
// OctaveNoise2D sums the given number of octaves at (x, z), each octave
// weighted by persistence relative to the previous one, and returns a value
// normalized to [0, 1]. Identical inputs on the same kernel always return the
// same value.
type Kernel interface {
	OctaveNoise2D(x, z float64, octaves int, persistence float64) float64
}

// Kernel names accepted by KernelByName.
const (
	KernelPerlin  = "perlin"
	KernelSimplex = "simplex"
)

// KernelByName creates the named kernel with the given seed.
func KernelByName(name string, seed int64) (Kernel, error) {
	switch strings.ToLower(name) {
	case "", KernelPerlin:
		return NewPerlinKernel(seed), nil
	case KernelSimplex:
		return NewSimplexKernel(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
}

// octaveWeight returns the sum of octave weights 1 + p + p^2 + ... for n octaves.
func octaveWeight(octaves int, persistence float64) float64 {
	var sum float64
	w := 1.0
	for i := 0; i < octaves; i++ {
		sum += w
		w *= persistence
	}
	return sum
}

// remap01 maps a value in [-1, 1] onto [0, 1], clamping overshoot.
func remap01(v float64) float64 {
	v = v*0.5 + 0.5
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
