// Package scene renders generated terrain tiles with OpenGL.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/engine/scene/shaders"
	"github.com/Faultbox/midgard-terrain/internal/engine/shader"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// ErrTileReleased is returned when uploading a tile whose buffers were released.
var ErrTileReleased = errors.New("tile has been released")

// tileMesh is the GPU copy of one tile.
type tileMesh struct {
	vao, vbo, ebo uint32
	colorTex      uint32
	indexCount    int32
	model         math.Mat4
}

// TerrainRenderer draws terrain tiles uploaded from their packed meshes.
type TerrainRenderer struct {
	program *shader.Program
	tiles   []tileMesh

	// Lighting
	LightDir [3]float32
	Ambient  float32

	// Combined world-space bounds of all uploaded tiles.
	MinBounds [3]float32
	MaxBounds [3]float32
}

// NewTerrainRenderer compiles the terrain shader. Requires a current GL context.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.Compile(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	return &TerrainRenderer{
		program:   program,
		LightDir:  [3]float32{-0.4, -1.0, -0.3},
		Ambient:   0.35,
		MinBounds: [3]float32{1e10, 1e10, 1e10},
		MaxBounds: [3]float32{-1e10, -1e10, -1e10},
	}, nil
}

// TileCount returns the number of uploaded tiles.
func (tr *TerrainRenderer) TileCount() int {
	return len(tr.tiles)
}

// AddTile uploads a tile's packed mesh and colour grid.
func (tr *TerrainRenderer) AddTile(t *terrain.Tile) error {
	packed := t.Mesh()
	if packed == nil {
		return ErrTileReleased
	}

	ox, oz := t.WorldOffset()
	tm := tileMesh{
		indexCount: int32(packed.IndexCount),
		model:      math.Translate(float32(ox), 0, float32(oz)),
	}

	gl.GenVertexArrays(1, &tm.vao)
	gl.BindVertexArray(tm.vao)

	gl.GenBuffers(1, &tm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(packed.VertexBuffer), gl.Ptr(packed.VertexBuffer), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, terrain.VertexStride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord (location 1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, terrain.VertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	if packed.IndexCount > 0 {
		gl.GenBuffers(1, &tm.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tm.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(packed.IndexBuffer), gl.Ptr(packed.IndexBuffer), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	tm.colorTex = uploadColorGrid(t.ColorGrid(), int32(t.ChunkSize()))
	tr.tiles = append(tr.tiles, tm)

	b := t.Geometry().Bounds
	tr.MinBounds = [3]float32{
		min(tr.MinBounds[0], b.Min[0]+float32(ox)),
		min(tr.MinBounds[1], b.Min[1]),
		min(tr.MinBounds[2], b.Min[2]+float32(oz)),
	}
	tr.MaxBounds = [3]float32{
		max(tr.MaxBounds[0], b.Max[0]+float32(ox)),
		max(tr.MaxBounds[1], b.Max[1]),
		max(tr.MaxBounds[2], b.Max[2]+float32(oz)),
	}

	logger.Debug("tile uploaded",
		zap.Float64("worldX", ox),
		zap.Float64("worldZ", oz),
		zap.Int("vertices", packed.VertexCount),
		zap.Int("indices", packed.IndexCount),
	)
	return nil
}

// uploadColorGrid creates a size×size RGB texture sampled per cell.
func uploadColorGrid(colors []uint8, size int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	// RGB rows are not 4-byte aligned for odd sizes.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, size, size, 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(colors))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return tex
}

// Render draws every uploaded tile.
func (tr *TerrainRenderer) Render(viewProj math.Mat4) {
	if len(tr.tiles) == 0 {
		return
	}

	tr.program.Use()
	gl.UniformMatrix4fv(tr.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform3f(tr.program.Uniform("uLightDir"), tr.LightDir[0], tr.LightDir[1], tr.LightDir[2])
	gl.Uniform1f(tr.program.Uniform("uAmbient"), tr.Ambient)
	gl.Uniform1i(tr.program.Uniform("uColorMap"), 0)
	gl.ActiveTexture(gl.TEXTURE0)

	locModel := tr.program.Uniform("uModel")
	for i := range tr.tiles {
		tm := &tr.tiles[i]
		if tm.indexCount == 0 {
			continue
		}
		gl.UniformMatrix4fv(locModel, 1, false, tm.model.Ptr())
		gl.BindTexture(gl.TEXTURE_2D, tm.colorTex)
		gl.BindVertexArray(tm.vao)
		gl.DrawElements(gl.TRIANGLES, tm.indexCount, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
}

// Destroy releases all GPU resources.
func (tr *TerrainRenderer) Destroy() {
	for i := range tr.tiles {
		tm := &tr.tiles[i]
		gl.DeleteVertexArrays(1, &tm.vao)
		gl.DeleteBuffers(1, &tm.vbo)
		if tm.ebo != 0 {
			gl.DeleteBuffers(1, &tm.ebo)
		}
		gl.DeleteTextures(1, &tm.colorTex)
	}
	tr.tiles = nil

	if tr.program != nil {
		tr.program.Delete()
		tr.program = nil
	}
}
