// Package config handles terrain generator configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/pkg/noise"
)

// Config holds all generator and viewer settings.
type Config struct {
	Terrain  TerrainConfig  `yaml:"terrain"`
	Noise    NoiseConfig    `yaml:"noise"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TerrainConfig holds tile layout settings.
type TerrainConfig struct {
	ChunkSize   uint32  `yaml:"chunk_size"`
	LOD         uint32  `yaml:"lod"`
	GridOffsetX float64 `yaml:"grid_offset_x"` // In tiles
	GridOffsetZ float64 `yaml:"grid_offset_z"`
	TilesX      int     `yaml:"tiles_x"` // Tiles generated along X, starting at the offset
	TilesZ      int     `yaml:"tiles_z"`
}

// NoiseConfig holds noise kernel and octave settings.
type NoiseConfig struct {
	Kernel  string `yaml:"kernel"`
	Seed    int64  `yaml:"seed"`
	Octaves int    `yaml:"octaves"`

	noise.Params `yaml:",inline"`
}

// GraphicsConfig holds viewer display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			ChunkSize: 256,
			LOD:       0,
			TilesX:    1,
			TilesZ:    1,
		},
		Noise: NoiseConfig{
			Kernel:  noise.KernelPerlin,
			Seed:    noise.DefaultSeed,
			Octaves: 6,
			Params:  noise.DefaultParams(),
		},
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values that would otherwise fail deep inside generation.
func (c *Config) Validate() error {
	if c.Terrain.ChunkSize == 0 {
		return fmt.Errorf("%w: terrain.chunk_size must be positive", ErrInvalid)
	}
	if c.Terrain.TilesX < 1 || c.Terrain.TilesZ < 1 {
		return fmt.Errorf("%w: terrain.tiles_x and terrain.tiles_z must be at least 1", ErrInvalid)
	}
	if c.Noise.Octaves < 1 {
		return fmt.Errorf("%w: noise.octaves must be at least 1", ErrInvalid)
	}
	if _, err := noise.KernelByName(c.Noise.Kernel, c.Noise.Seed); err != nil {
		return fmt.Errorf("%w: noise.kernel: %w", ErrInvalid, err)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: graphics size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	return nil
}

// TileOptions returns the tile generation options described by the noise
// section. The returned kernel is shared by every tile built with them.
func (c *Config) TileOptions() ([]terrain.Option, error) {
	kernel, err := noise.KernelByName(c.Noise.Kernel, c.Noise.Seed)
	if err != nil {
		return nil, err
	}
	return []terrain.Option{
		terrain.WithSampler(noise.NewSampler(kernel, c.Noise.Params)),
		terrain.WithOctaves(c.Noise.Octaves),
	}, nil
}
