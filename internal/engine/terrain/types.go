// Package terrain generates noise-based terrain tiles: a heightfield, its
// banded colour map and a grid mesh ready for GPU upload.
package terrain

import (
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// Vertex is a terrain mesh vertex.
type Vertex struct {
	Position math.Vec3
	UV       math.Vec2
}

// VertexStride is the size in bytes of one packed vertex (x, y, z, u, v).
const VertexStride = 5 * 4

// Mesh holds the unpacked terrain grid mesh.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// PackedMesh holds little-endian vertex and index buffers ready for upload.
type PackedMesh struct {
	VertexBuffer []byte // VertexStride bytes per vertex
	IndexBuffer  []byte // 4 bytes per index
	VertexCount  int
	IndexCount   int
}

// Heightfield holds the per-cell noise and colour grids of a tile.
type Heightfield struct {
	Size      uint32    // Cells per side
	Elevation []float32 // Raw noise, index x + z*Size
	Colors    []uint8   // RGB triplets, index 3*(x + z*Size)
}

// Stats summarises a heightfield.
type Stats struct {
	Min, Max, Mean float32
	BandCells      map[string]int // Cell count per band name
}
