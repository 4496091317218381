package meshing

import (
	"voxview/internal/world"
)

// FaceInstance is one visible block face as it appears in the per-instance
// GPU stream: world position of the block's minimum corner, face id, block
// type. Field order and widths match the vertex attribute layout, so a
// []FaceInstance uploads as-is.
type FaceInstance struct {
	Position [3]float32
	Face     uint32
	Block    uint32
}

// InstanceSize is the byte size of one FaceInstance in the stream.
const InstanceSize = 20

// BuildChunkInstances collects one instance per visible face of every solid
// block in the chunk. A face is visible when the neighboring cell within the
// same chunk is air; neighbors in adjacent chunks are not consulted, so
// faces on the chunk boundary are always emitted. Output order is stable
// for a given chunk.
func BuildChunkInstances(c *world.Chunk) []FaceInstance {
	if c == nil {
		return nil
	}

	baseX, baseY, baseZ := c.Coord.Origin()
	instances := make([]FaceInstance, 0, 1024)

	for lx := range world.ChunkSizeX {
		for ly := range world.ChunkSizeY {
			for lz := range world.ChunkSizeZ {
				b := c.GetBlock(lx, ly, lz)
				if !b.IsSolid() {
					continue
				}
				for face := range world.BlockFace(world.FaceCount) {
					dx, dy, dz := face.Offset()
					if !c.IsAir(lx+dx, ly+dy, lz+dz) {
						continue
					}
					instances = append(instances, FaceInstance{
						Position: [3]float32{
							float32(baseX + lx),
							float32(baseY + ly),
							float32(baseZ + lz),
						},
						Face:  uint32(face),
						Block: uint32(b),
					})
				}
			}
		}
	}

	return instances
}
