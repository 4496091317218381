package world

import (
	"math"
)

// TerrainGenerator produces the block contents of chunks. Implementations
// must be deterministic: generating the same coordinate twice yields
// identical chunks.
type TerrainGenerator interface {
	Generate(coord ChunkCoord) *Chunk
}

// Generator fills chunks from a 2D noise heightmap with grass, dirt and
// stone layering.
type Generator struct {
	seed        int64
	scale       float64
	octaves     int
	persistence float64
	lacunarity  float64
	minHeight   int
	maxHeight   int
}

// NewGenerator creates a generator with default tunables.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:        seed,
		scale:       1.0 / 24.0,
		octaves:     3,
		persistence: 0.5,
		lacunarity:  2.0,
		minHeight:   1,
		maxHeight:   12,
	}
}

// NewGeneratorWithParams creates a generator with explicit height range and
// noise tunables. Out-of-range arguments fall back to the defaults of
// NewGenerator.
func NewGeneratorWithParams(seed int64, minHeight, maxHeight int, scale float64, octaves int) *Generator {
	g := NewGenerator(seed)
	if maxHeight > minHeight {
		g.minHeight = minHeight
		g.maxHeight = maxHeight
	}
	if scale > 0 {
		g.scale = scale
	}
	if octaves >= 1 {
		g.octaves = octaves
	}
	return g
}

// HeightAt computes the column height at world X,Z. Blocks with world Y
// below the height are solid; the grass surface sits at height-1.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX) * g.scale
	z := float64(worldZ) * g.scale
	n := octaveNoise2D(x, z, g.seed, g.octaves, g.persistence, g.lacunarity)
	return g.minHeight + int(math.Round(n*float64(g.maxHeight-g.minHeight)))
}

// Generate fills a chunk from the heightmap.
func (g *Generator) Generate(coord ChunkCoord) *Chunk {
	c := NewChunk(coord)
	baseX, baseY, baseZ := coord.Origin()
	for lx := range ChunkSizeX {
		for lz := range ChunkSizeZ {
			height := g.HeightAt(baseX+lx, baseZ+lz)
			for ly := range ChunkSizeY {
				if b := columnBlock(baseY+ly, height); b != BlockTypeAir {
					c.SetBlock(lx, ly, lz, b)
				}
			}
		}
	}
	return c
}

// columnBlock returns the block at world height worldY in a column whose
// surface height is height: grass at the top, a dirt band below it, stone
// underneath, air above.
func columnBlock(worldY, height int) BlockType {
	switch {
	case worldY >= height:
		return BlockTypeAir
	case worldY == height-1:
		return BlockTypeGrass
	case worldY > height-5:
		return BlockTypeDirt
	default:
		return BlockTypeStone
	}
}

// FlatGenerator fills every column to the same fixed height, with the same
// layering as Generator. Predictable worlds for tests and tooling.
type FlatGenerator struct {
	Height int
}

// Generate fills a chunk of the flat world.
func (f FlatGenerator) Generate(coord ChunkCoord) *Chunk {
	c := NewChunk(coord)
	_, baseY, _ := coord.Origin()
	for lx := range ChunkSizeX {
		for lz := range ChunkSizeZ {
			for ly := range ChunkSizeY {
				if b := columnBlock(baseY+ly, f.Height); b != BlockTypeAir {
					c.SetBlock(lx, ly, lz, b)
				}
			}
		}
	}
	return c
}
