package terrain

import (
	"errors"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/noise"
)

// DefaultOctaves is the number of noise octaves sampled per cell.
const DefaultOctaves = 6

// MaxChunkSize keeps every vertex index of a tile within uint32.
const MaxChunkSize = 65535

var (
	// ErrInvalidConfiguration is returned when a tile cannot be generated
	// from its parameters.
	ErrInvalidConfiguration = errors.New("invalid terrain configuration")

	// ErrHeightMapUnsupported is returned by LoadHeightMapFromImage.
	ErrHeightMapUnsupported = errors.New("height map images are not supported")
)

// Tile is one square terrain chunk. It owns its heightfield and mesh, which
// are generated once by NewTile and never modified afterwards.
type Tile struct {
	chunkSize  uint32
	lod        uint32
	scaledSize uint32

	// World position of the tile origin.
	offsetX float64
	offsetZ float64

	octaves int
	sampler *noise.Sampler
	bands   BandTable

	field  *Heightfield
	mesh   *Mesh
	packed *PackedMesh
}

type options struct {
	sampler *noise.Sampler
	kernel  noise.Kernel
	params  noise.Params
	octaves int
	bands   BandTable
}

// Option configures tile generation.
type Option func(*options)

// WithSampler uses s for noise sampling. It overrides WithKernel and WithParams.
func WithSampler(s *noise.Sampler) Option {
	return func(o *options) { o.sampler = s }
}

// WithKernel sets the noise kernel. Kernels may be shared between tiles.
func WithKernel(k noise.Kernel) Option {
	return func(o *options) { o.kernel = k }
}

// WithParams sets the initial octave parameters.
func WithParams(p noise.Params) Option {
	return func(o *options) { o.params = p }
}

// WithOctaves sets the number of octaves sampled per cell.
func WithOctaves(n int) Option {
	return func(o *options) { o.octaves = n }
}

// WithBands sets the colour classification table.
func WithBands(b BandTable) Option {
	return func(o *options) { o.bands = b }
}

// EffectiveLOD returns the detail divisor for a level of detail.
func EffectiveLOD(lod uint32) uint32 {
	if lod == 0 {
		return 1
	}
	return 2 * lod
}

// NewTile validates the chunk parameters and generates the tile's heightfield
// and mesh. gridOffsetX and gridOffsetZ are in tile units; the world offset
// is chunkSize times the grid offset.
//
// The level of detail only determines ScaledSize. Sampling and meshing always
// use the full chunkSize grid.
func NewTile(chunkSize, lod uint32, gridOffsetX, gridOffsetZ float64, opts ...Option) (*Tile, error) {
	o := options{
		params:  noise.DefaultParams(),
		octaves: DefaultOctaves,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if chunkSize == 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive", ErrInvalidConfiguration)
	}
	if chunkSize > MaxChunkSize {
		return nil, fmt.Errorf("%w: chunk size %d exceeds %d", ErrInvalidConfiguration, chunkSize, MaxChunkSize)
	}
	if lod > MaxChunkSize {
		return nil, fmt.Errorf("%w: level of detail %d out of range", ErrInvalidConfiguration, lod)
	}
	scaled := chunkSize / EffectiveLOD(lod)
	if scaled == 0 {
		return nil, fmt.Errorf("%w: level of detail %d leaves no cells in a %d chunk",
			ErrInvalidConfiguration, lod, chunkSize)
	}
	if o.octaves < 1 {
		return nil, fmt.Errorf("%w: octave count %d must be at least 1", ErrInvalidConfiguration, o.octaves)
	}

	if o.sampler == nil {
		if o.kernel == nil {
			o.kernel = noise.NewPerlinKernel(noise.DefaultSeed)
		}
		o.sampler = noise.NewSampler(o.kernel, o.params)
	}
	if len(o.bands) == 0 {
		o.bands = DefaultBands()
	}

	t := &Tile{
		chunkSize:  chunkSize,
		lod:        lod,
		scaledSize: scaled,
		offsetX:    float64(chunkSize) * gridOffsetX,
		offsetZ:    float64(chunkSize) * gridOffsetZ,
		octaves:    o.octaves,
		sampler:    o.sampler,
		bands:      o.bands,
	}

	start := time.Now()
	t.field = GenerateHeightfield(t.sampler, chunkSize, t.octaves, t.offsetX, t.offsetZ, t.bands)
	t.mesh = BuildMesh(t.field.Elevation, chunkSize)
	t.packed = t.mesh.Pack()

	logger.Debug("terrain tile generated",
		zap.Uint32("chunkSize", chunkSize),
		zap.Uint32("lod", lod),
		zap.Uint32("scaledSize", scaled),
		zap.Float64("offsetX", t.offsetX),
		zap.Float64("offsetZ", t.offsetZ),
		zap.Int("vertices", t.packed.VertexCount),
		zap.Int("indices", t.packed.IndexCount),
		zap.Duration("took", time.Since(start)),
	)

	return t, nil
}

// ChunkSize returns the number of cells per side.
func (t *Tile) ChunkSize() uint32 {
	return t.chunkSize
}

// LevelOfDetail returns the raw level of detail the tile was created with.
func (t *Tile) LevelOfDetail() uint32 {
	return t.lod
}

// ScaledSize returns chunkSize divided by the effective level of detail.
func (t *Tile) ScaledSize() uint32 {
	return t.scaledSize
}

// WorldOffset returns the world position of the tile origin.
func (t *Tile) WorldOffset() (x, z float64) {
	return t.offsetX, t.offsetZ
}

// NoiseParams returns the initial octave parameters used for sampling.
func (t *Tile) NoiseParams() noise.Params {
	return t.sampler.Params()
}

// Bands returns the colour classification table.
func (t *Tile) Bands() BandTable {
	return t.bands
}

// ElevationGrid returns the raw noise per cell, index x + z*ChunkSize.
// The slice is owned by the tile and must not be modified.
func (t *Tile) ElevationGrid() []float32 {
	if t.field == nil {
		return nil
	}
	return t.field.Elevation
}

// ColorGrid returns the RGB colour per cell, three bytes per cell.
// The slice is owned by the tile and must not be modified.
func (t *Tile) ColorGrid() []uint8 {
	if t.field == nil {
		return nil
	}
	return t.field.Colors
}

// Heightfield returns the tile's heightfield.
func (t *Tile) Heightfield() *Heightfield {
	return t.field
}

// Geometry returns the unpacked mesh.
func (t *Tile) Geometry() *Mesh {
	return t.mesh
}

// Mesh returns the packed mesh buffers.
func (t *Tile) Mesh() *PackedMesh {
	return t.packed
}

// Stats summarises the tile's heightfield.
func (t *Tile) Stats() Stats {
	if t.field == nil {
		return Stats{}
	}
	return t.field.Stats(t.bands)
}

// LoadHeightMapFromImage would replace the generated elevation with values
// decoded from an image. It is not implemented: it always returns
// ErrHeightMapUnsupported and leaves the tile unchanged.
func (t *Tile) LoadHeightMapFromImage(img image.Image) error {
	if img != nil {
		b := img.Bounds()
		return fmt.Errorf("%w (%dx%d image)", ErrHeightMapUnsupported, b.Dx(), b.Dy())
	}
	return ErrHeightMapUnsupported
}

// Release drops the tile's buffers. Accessors return nil afterwards.
func (t *Tile) Release() {
	t.field = nil
	t.mesh = nil
	t.packed = nil
}
