package terrain

import (
	"errors"
	"testing"

	"github.com/Faultbox/midgard-terrain/pkg/noise"
)

func TestGenerateBlock(t *testing.T) {
	kernel := noise.NewPerlinKernel(noise.DefaultSeed)
	tiles, err := GenerateBlock(8, 0, -1, 2, 3, 2, WithKernel(kernel))
	if err != nil {
		t.Fatalf("GenerateBlock: %v", err)
	}
	if len(tiles) != 6 {
		t.Fatalf("got %d tiles, want 6", len(tiles))
	}

	wantOffsets := [][2]float64{
		{-8, 16}, {0, 16}, {8, 16},
		{-8, 24}, {0, 24}, {8, 24},
	}
	for i, tile := range tiles {
		x, z := tile.WorldOffset()
		if x != wantOffsets[i][0] || z != wantOffsets[i][1] {
			t.Errorf("tile %d offset = (%v, %v), want %v", i, x, z, wantOffsets[i])
		}
	}
}

func TestGenerateBlockErrors(t *testing.T) {
	if _, err := GenerateBlock(8, 0, 0, 0, 0, 1); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("empty block: err = %v, want ErrInvalidConfiguration", err)
	}
	if _, err := GenerateBlock(0, 0, 0, 0, 2, 2); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("zero chunk: err = %v, want ErrInvalidConfiguration", err)
	}
}
