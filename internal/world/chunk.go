package world

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 16
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// ChunkCoord addresses a chunk on the chunk lattice. The world position of
// a chunk's minimum corner is the coordinate scaled by the chunk size.
type ChunkCoord struct {
	X, Y, Z int
}

// ChunkCoordAt returns the coordinate of the chunk containing the given
// world block position.
func ChunkCoordAt(worldX, worldY, worldZ int) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(worldX, ChunkSizeX),
		Y: floorDiv(worldY, ChunkSizeY),
		Z: floorDiv(worldZ, ChunkSizeZ),
	}
}

// Origin returns the world position of the chunk's minimum corner.
func (c ChunkCoord) Origin() (int, int, int) {
	return c.X * ChunkSizeX, c.Y * ChunkSizeY, c.Z * ChunkSizeZ
}

// SplitWorldPos resolves a world block position into the chunk containing
// it and the local coordinates within that chunk. Local coordinates are
// always in range, including for negative world positions.
func SplitWorldPos(worldX, worldY, worldZ int) (ChunkCoord, int, int, int) {
	coord := ChunkCoordAt(worldX, worldY, worldZ)
	return coord, floorMod(worldX, ChunkSizeX), floorMod(worldY, ChunkSizeY), floorMod(worldZ, ChunkSizeZ)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the remainder with the sign of the divisor.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}

// Chunk is a dense 16x16x16 grid of block types. A chunk is filled once by
// a terrain generator and treated as read-only afterwards.
type Chunk struct {
	Coord  ChunkCoord
	blocks [ChunkVolume]BlockType
}

// NewChunk creates an all-air chunk at the given chunk coordinate.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{Coord: coord}
}

// blockIndex converts local coordinates to a flat index.
func blockIndex(x, y, z int) int {
	return x*ChunkSizeY*ChunkSizeZ + y*ChunkSizeZ + z
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// GetBlock returns the block type at the given local coordinates.
// Out-of-range coordinates read as air.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !inBounds(x, y, z) {
		return BlockTypeAir
	}
	return c.blocks[blockIndex(x, y, z)]
}

// SetBlock sets the block type at the given local coordinates.
// Out-of-range coordinates are ignored.
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) {
	if !inBounds(x, y, z) {
		return
	}
	c.blocks[blockIndex(x, y, z)] = blockType
}

// IsAir reports whether the block at the given local coordinates is air.
// Out-of-range coordinates read as air, so faces on the chunk boundary
// always count as exposed.
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}

// SolidCount returns the number of non-air blocks in the chunk.
func (c *Chunk) SolidCount() int {
	n := 0
	for _, b := range c.blocks {
		if b.IsSolid() {
			n++
		}
	}
	return n
}

// LayerSolid reports whether every block with the given local coordinate
// fixed on one axis is solid. The axis is selected by the face whose
// boundary layer is being tested: FaceTop tests local y = ChunkSizeY-1,
// FaceLeft tests local x = 0, and so on.
func (c *Chunk) LayerSolid(face BlockFace) bool {
	switch face {
	case FaceFront:
		return c.planeSolid(-1, -1, ChunkSizeZ-1)
	case FaceBack:
		return c.planeSolid(-1, -1, 0)
	case FaceLeft:
		return c.planeSolid(0, -1, -1)
	case FaceRight:
		return c.planeSolid(ChunkSizeX-1, -1, -1)
	case FaceTop:
		return c.planeSolid(-1, ChunkSizeY-1, -1)
	case FaceBottom:
		return c.planeSolid(-1, 0, -1)
	}
	return false
}

// planeSolid checks an axis-aligned plane of the chunk; the fixed axis is
// the one whose argument is non-negative.
func (c *Chunk) planeSolid(fx, fy, fz int) bool {
	for x := range ChunkSizeX {
		if fx >= 0 && x != fx {
			continue
		}
		for y := range ChunkSizeY {
			if fy >= 0 && y != fy {
				continue
			}
			for z := range ChunkSizeZ {
				if fz >= 0 && z != fz {
					continue
				}
				if !c.blocks[blockIndex(x, y, z)].IsSolid() {
					return false
				}
			}
		}
	}
	return true
}
