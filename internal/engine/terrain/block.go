package terrain

import "fmt"

// GenerateBlock creates tilesX×tilesZ neighbouring tiles, starting at grid
// offset (originX, originZ). Tiles are returned row by row, X fastest.
// Generation stops at the first tile that fails.
func GenerateBlock(chunkSize, lod uint32, originX, originZ float64, tilesX, tilesZ int, opts ...Option) ([]*Tile, error) {
	if tilesX < 1 || tilesZ < 1 {
		return nil, fmt.Errorf("%w: block of %dx%d tiles", ErrInvalidConfiguration, tilesX, tilesZ)
	}

	tiles := make([]*Tile, 0, tilesX*tilesZ)
	for tz := range tilesZ {
		for tx := range tilesX {
			t, err := NewTile(chunkSize, lod, originX+float64(tx), originZ+float64(tz), opts...)
			if err != nil {
				return nil, fmt.Errorf("tile (%d,%d): %w", tx, tz, err)
			}
			tiles = append(tiles, t)
		}
	}
	return tiles, nil
}
