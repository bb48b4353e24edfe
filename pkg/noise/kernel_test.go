package noise

import "testing"

func TestKernelsStayInUnitRange(t *testing.T) {
	kernels := map[string]Kernel{
		"perlin":  NewPerlinKernel(DefaultSeed),
		"simplex": NewSimplexKernel(DefaultSeed),
	}

	for name, k := range kernels {
		t.Run(name, func(t *testing.T) {
			for octaves := 1; octaves <= 6; octaves++ {
				p := 0.3 + 0.05*float64(octaves-1)
				for i := 0; i < 200; i++ {
					x := float64(i) * 0.173
					z := float64(i) * 0.091
					v := k.OctaveNoise2D(x, z, octaves, p)
					if v < 0 || v > 1 {
						t.Fatalf("octaves=%d (%v,%v): %v outside [0,1]", octaves, x, z, v)
					}
				}
			}
		})
	}
}

func TestPerlinKernelSeeds(t *testing.T) {
	a := NewPerlinKernel(1)
	b := NewPerlinKernel(2)

	differ := false
	for i := 0; i < 50; i++ {
		x := float64(i)*0.37 + 0.11
		if a.OctaveNoise2D(x, x*0.5, 3, 0.5) != b.OctaveNoise2D(x, x*0.5, 3, 0.5) {
			differ = true
			break
		}
	}
	if !differ {
		t.Error("different seeds produced identical noise")
	}
}

func TestPerlinKernelCachesGenerators(t *testing.T) {
	k := NewPerlinKernel(DefaultSeed)
	k.OctaveNoise2D(0.5, 0.5, 3, 0.4)
	k.OctaveNoise2D(1.5, 0.5, 3, 0.4)
	k.OctaveNoise2D(1.5, 0.5, 4, 0.4)

	if len(k.gens) != 2 {
		t.Errorf("cached generators = %d, want 2", len(k.gens))
	}
}

func TestPerlinKernelNonPositivePersistence(t *testing.T) {
	k := NewPerlinKernel(DefaultSeed)
	got := k.OctaveNoise2D(0.3, 0.7, 4, 0)
	want := k.OctaveNoise2D(0.3, 0.7, 1, 1)
	if got != want {
		t.Errorf("zero persistence = %v, want single octave %v", got, want)
	}
}

func TestOctaveWeight(t *testing.T) {
	if got := octaveWeight(3, 0.5); got != 1.75 {
		t.Errorf("octaveWeight(3, 0.5) = %v, want 1.75", got)
	}
	if got := octaveWeight(1, 0.9); got != 1 {
		t.Errorf("octaveWeight(1, 0.9) = %v, want 1", got)
	}
}
