package terrain

import (
	"encoding/binary"
	gomath "math"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// BuildMesh creates a size×size vertex grid from the elevation grid and
// triangulates it with two triangles per cell.
//
// Vertex (x, z) sits at index x + z*size. Grids smaller than 2×2 have no
// cells and produce no indices.
func BuildMesh(elevation []float32, size uint32) *Mesh {
	n := int(size)
	mesh := &Mesh{
		Vertices: make([]Vertex, 0, n*n),
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	for z := range n {
		for x := range n {
			pos := math.Vec3{
				X: float32(x),
				Y: HeightOf(elevation[x+z*n]),
				Z: float32(z),
			}
			uv := math.Vec2{
				X: float32(x) / float32(n),
				Y: float32(z) / float32(n),
			}
			mesh.Vertices = append(mesh.Vertices, Vertex{Position: pos, UV: uv})
			updateBounds(&mesh.Bounds, pos)
		}
	}

	if n < 2 {
		return mesh
	}

	mesh.Indices = make([]uint32, 0, 6*(n-1)*(n-1))
	stride := uint32(n)
	for z := 0; z < n-1; z++ {
		for x := 0; x < n-1; x++ {
			base := uint32(x + z*n)
			mesh.Indices = append(mesh.Indices,
				base, base+stride, base+1,
				base+1, base+stride, base+stride+1,
			)
		}
	}

	return mesh
}

// Pack lays the mesh out as little-endian float32 x,y,z,u,v vertices and
// uint32 indices.
func (m *Mesh) Pack() *PackedMesh {
	vb := make([]byte, len(m.Vertices)*VertexStride)
	for i, v := range m.Vertices {
		off := i * VertexStride
		putFloat32(vb[off:], v.Position.X)
		putFloat32(vb[off+4:], v.Position.Y)
		putFloat32(vb[off+8:], v.Position.Z)
		putFloat32(vb[off+12:], v.UV.X)
		putFloat32(vb[off+16:], v.UV.Y)
	}

	ib := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(ib[i*4:], idx)
	}

	return &PackedMesh{
		VertexBuffer: vb,
		IndexBuffer:  ib,
		VertexCount:  len(m.Vertices),
		IndexCount:   len(m.Indices),
	}
}

// Vertex decodes packed vertex i.
func (p *PackedMesh) Vertex(i int) Vertex {
	off := i * VertexStride
	return Vertex{
		Position: math.Vec3{
			X: getFloat32(p.VertexBuffer[off:]),
			Y: getFloat32(p.VertexBuffer[off+4:]),
			Z: getFloat32(p.VertexBuffer[off+8:]),
		},
		UV: math.Vec2{
			X: getFloat32(p.VertexBuffer[off+12:]),
			Y: getFloat32(p.VertexBuffer[off+16:]),
		},
	}
}

// Index decodes packed index i.
func (p *PackedMesh) Index(i int) uint32 {
	return binary.LittleEndian.Uint32(p.IndexBuffer[i*4:])
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, gomath.Float32bits(v))
}

func getFloat32(b []byte) float32 {
	return gomath.Float32frombits(binary.LittleEndian.Uint32(b))
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min[0] = min(b.Min[0], p.X)
	b.Min[1] = min(b.Min[1], p.Y)
	b.Min[2] = min(b.Min[2], p.Z)
	b.Max[0] = max(b.Max[0], p.X)
	b.Max[1] = max(b.Max[1], p.Y)
	b.Max[2] = max(b.Max[2], p.Z)
}
