// Package math provides the vector and matrix types shared by the terrain
// mesh and the viewer.
package math

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

