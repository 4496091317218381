package atlas

import (
	"math"

	"voxview/internal/world"
)

// Tile indices of the default atlas.
const (
	TileGrassTop = iota
	TileGrassSide
	TileDirt
	TileStone
)

// Layout describes a square grid texture atlas and the assignment of tiles
// to block faces. The assignment is data: renderers upload it as a uniform
// table and samplers derive tile rectangles from the grid dimension, so
// adding a block type means adding a row here, not editing shader code.
type Layout struct {
	tileCount int
	tiles     [][world.FaceCount]int
}

// NewLayout builds a layout from per-block tile assignments, indexed by
// block type id in face-id order. Blocks beyond the table and tiles beyond
// tileCount fall back to tile 0.
func NewLayout(tileCount int, tiles [][world.FaceCount]int) Layout {
	if tileCount < 1 {
		tileCount = 1
	}
	return Layout{tileCount: tileCount, tiles: tiles}
}

// UniformTile assigns one tile to all six faces.
func UniformTile(tile int) [world.FaceCount]int {
	var faces [world.FaceCount]int
	for i := range faces {
		faces[i] = tile
	}
	return faces
}

// DefaultLayout returns the built-in four-tile atlas: grass with distinct
// top, side and bottom tiles, uniform dirt and stone. Air carries tile 0
// but is never meshed.
func DefaultLayout() Layout {
	grass := UniformTile(TileGrassSide)
	grass[world.FaceTop] = TileGrassTop
	grass[world.FaceBottom] = TileDirt

	return NewLayout(4, [][world.FaceCount]int{
		world.BlockTypeAir:   UniformTile(0),
		world.BlockTypeGrass: grass,
		world.BlockTypeDirt:  UniformTile(TileDirt),
		world.BlockTypeStone: UniformTile(TileStone),
	})
}

// TileCount returns the number of tiles in the atlas.
func (l Layout) TileCount() int {
	return l.tileCount
}

// GridSize returns the atlas dimension in tiles per side, the smallest
// square grid that fits every tile.
func (l Layout) GridSize() int {
	return int(math.Ceil(math.Sqrt(float64(l.tileCount))))
}

// TileSize returns the UV extent of one tile.
func (l Layout) TileSize() float32 {
	return 1.0 / float32(l.GridSize())
}

// TileFor returns the atlas tile for a block face. Unknown block types and
// out-of-range assignments map to tile 0.
func (l Layout) TileFor(b world.BlockType, f world.BlockFace) int {
	if int(b) >= len(l.tiles) || f < 0 || f >= world.FaceCount {
		return 0
	}
	t := l.tiles[b][f]
	if t < 0 || t >= l.tileCount {
		return 0
	}
	return t
}

// TileOrigin returns the UV coordinates of a tile's minimum corner. Tiles
// are numbered row-major from the texture origin.
func (l Layout) TileOrigin(tile int) (float32, float32) {
	g := l.GridSize()
	ts := l.TileSize()
	return float32(tile%g) * ts, float32(tile/g) * ts
}

// UV maps a quad-corner UV in [0,1] through the tile assignment for a block
// face. Side faces flip V so texture-up on the tile matches world-up. The
// fragment shader computes the same mapping from the uploaded tile table;
// this is the reference the shader must agree with.
func (l Layout) UV(b world.BlockType, f world.BlockFace, cornerU, cornerV float32) (float32, float32) {
	u0, v0 := l.TileOrigin(l.TileFor(b, f))
	if f.IsSide() {
		cornerV = 1 - cornerV
	}
	ts := l.TileSize()
	return u0 + cornerU*ts, v0 + cornerV*ts
}

// TileTable returns the assignment flattened block-major for upload as a
// shader uniform array: entry b*FaceCount+f is the tile for block b, face f.
func (l Layout) TileTable() []int32 {
	out := make([]int32, len(l.tiles)*world.FaceCount)
	for b := range l.tiles {
		for f := range world.FaceCount {
			out[b*world.FaceCount+f] = int32(l.TileFor(world.BlockType(b), world.BlockFace(f)))
		}
	}
	return out
}
