package world

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
)

// BlockTypeCount is the number of known block types.
const BlockTypeCount = 4

// IsSolid reports whether the block fills its cell. Only solid blocks
// occlude neighboring faces or produce faces of their own.
func (b BlockType) IsSolid() bool {
	return b != BlockTypeAir
}

// BlockFace identifies a face of a block. The numeric values are written
// into the per-face instance stream and must match the face tables in the
// block shader.
type BlockFace int

const (
	FaceFront  BlockFace = iota // +Z
	FaceBack                    // -Z
	FaceLeft                    // -X
	FaceRight                   // +X
	FaceTop                     // +Y
	FaceBottom                  // -Y
)

// FaceCount is the number of faces on a block.
const FaceCount = 6

// faceOffsets maps each face to the unit step toward the neighbor it touches.
var faceOffsets = [FaceCount][3]int{
	FaceFront:  {0, 0, 1},
	FaceBack:   {0, 0, -1},
	FaceLeft:   {-1, 0, 0},
	FaceRight:  {1, 0, 0},
	FaceTop:    {0, 1, 0},
	FaceBottom: {0, -1, 0},
}

// Offset returns the x, y, z step from a block to the neighbor this face
// touches.
func (f BlockFace) Offset() (int, int, int) {
	o := faceOffsets[f]
	return o[0], o[1], o[2]
}

// Opposite returns the face on the other side of the block.
func (f BlockFace) Opposite() BlockFace {
	switch f {
	case FaceFront:
		return FaceBack
	case FaceBack:
		return FaceFront
	case FaceLeft:
		return FaceRight
	case FaceRight:
		return FaceLeft
	case FaceTop:
		return FaceBottom
	default:
		return FaceTop
	}
}

// IsSide reports whether the face is one of the four vertical side faces,
// as opposed to the top or bottom.
func (f BlockFace) IsSide() bool {
	return f != FaceTop && f != FaceBottom
}
