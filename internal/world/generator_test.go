package world

import (
	"crypto/sha256"
	"testing"
)

func TestGeneratorImplementsInterface(t *testing.T) {
	var _ TerrainGenerator = NewGenerator(123)
}

func TestFlatGeneratorImplementsInterface(t *testing.T) {
	var _ TerrainGenerator = FlatGenerator{Height: 10}
}

// hashChunkBlocks computes a SHA-256 hash of all blocks in a chunk
func hashChunkBlocks(c *Chunk) [32]byte {
	h := sha256.New()
	for ly := 0; ly < ChunkSizeY; ly++ {
		for lx := 0; lx < ChunkSizeX; lx++ {
			for lz := 0; lz < ChunkSizeZ; lz++ {
				b := byte(c.GetBlock(lx, ly, lz))
				h.Write([]byte{b})
			}
		}
	}
	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}

// TestGenerateDeterminism verifies same seed produces identical terrain
func TestGenerateDeterminism(t *testing.T) {
	seed := int64(12345)
	var hashes [100][32]byte

	for i := range hashes {
		g := NewGenerator(seed)
		c := g.Generate(ChunkCoord{X: 0, Y: 0, Z: 0})
		hashes[i] = hashChunkBlocks(c)
	}

	first := hashes[0]
	for i := 1; i < len(hashes); i++ {
		if hashes[i] != first {
			t.Errorf("Chunk generation not deterministic: hash[0] != hash[%d]", i)
		}
	}
}

// TestGenerateDeterminismMultipleChunks verifies world coordinates are used
// consistently, including negative ones
func TestGenerateDeterminismMultipleChunks(t *testing.T) {
	seed := int64(12345)
	coords := []ChunkCoord{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 1},
		{-1, 0, -1},
		{-3, -1, 2},
	}

	for _, coord := range coords {
		g1 := NewGenerator(seed)
		hash1 := hashChunkBlocks(g1.Generate(coord))

		g2 := NewGenerator(seed)
		hash2 := hashChunkBlocks(g2.Generate(coord))

		if hash1 != hash2 {
			t.Errorf("Chunk at (%d,%d,%d) not deterministic", coord.X, coord.Y, coord.Z)
		}
	}
}

// TestGenerateSeedsDiffer verifies different seeds produce different terrain
func TestGenerateSeedsDiffer(t *testing.T) {
	coord := ChunkCoord{X: 0, Y: 0, Z: 0}
	h1 := hashChunkBlocks(NewGenerator(1).Generate(coord))
	h2 := hashChunkBlocks(NewGenerator(2).Generate(coord))
	if h1 == h2 {
		t.Errorf("Expected different terrain for seeds 1 and 2, got identical chunks")
	}
}

// TestGenerateCoordsDiffer verifies neighboring surface chunks are not clones
func TestGenerateCoordsDiffer(t *testing.T) {
	g := NewGenerator(42)
	h1 := hashChunkBlocks(g.Generate(ChunkCoord{X: 0, Y: 0, Z: 0}))
	h2 := hashChunkBlocks(g.Generate(ChunkCoord{X: 1, Y: 0, Z: 0}))
	if h1 == h2 {
		t.Errorf("Expected different terrain at neighboring chunk coords, got identical chunks")
	}
}

// TestGenerateLayering verifies each surface column is air over grass over
// dirt over stone
func TestGenerateLayering(t *testing.T) {
	g := NewGenerator(1337)
	c := g.Generate(ChunkCoord{X: 0, Y: 0, Z: 0})

	for lx := range ChunkSizeX {
		for lz := range ChunkSizeZ {
			height := g.HeightAt(lx, lz)
			if height < 1 || height > 12 {
				t.Fatalf("HeightAt(%d,%d) = %d, expected within [1,12]", lx, lz, height)
			}
			for ly := range ChunkSizeY {
				want := columnBlock(ly, height)
				if got := c.GetBlock(lx, ly, lz); got != want {
					t.Errorf("Block at (%d,%d,%d) with height %d: expected %v, got %v",
						lx, ly, lz, height, want, got)
				}
			}
			if b := c.GetBlock(lx, height-1, lz); b != BlockTypeGrass {
				t.Errorf("Expected Grass at surface (%d,%d,%d), got %v", lx, height-1, lz, b)
			}
		}
	}
}

// TestGenerateHighAltitudeAir verifies chunks above the height range are all air
func TestGenerateHighAltitudeAir(t *testing.T) {
	g := NewGenerator(1337)
	c := g.Generate(ChunkCoord{X: 0, Y: 1, Z: 0})

	if n := c.SolidCount(); n != 0 {
		t.Errorf("Expected all air above the height range, got %d solid blocks", n)
	}
}

// TestGenerateDeepChunksSolid verifies chunks far below the surface are
// solid stone
func TestGenerateDeepChunksSolid(t *testing.T) {
	g := NewGenerator(1337)
	c := g.Generate(ChunkCoord{X: 0, Y: -2, Z: 0})

	for lx := range ChunkSizeX {
		for ly := range ChunkSizeY {
			for lz := range ChunkSizeZ {
				if b := c.GetBlock(lx, ly, lz); b != BlockTypeStone {
					t.Errorf("Expected Stone at (%d,%d,%d) in deep chunk, got %v", lx, ly, lz, b)
					return
				}
			}
		}
	}
}

// TestGenerateBelowSurfaceSolid verifies the chunk row directly below the
// surface has no air
func TestGenerateBelowSurfaceSolid(t *testing.T) {
	g := NewGenerator(1337)
	c := g.Generate(ChunkCoord{X: 2, Y: -1, Z: -2})

	if n := c.SolidCount(); n != ChunkVolume {
		t.Errorf("Expected fully solid chunk below the surface, got %d of %d solid blocks",
			n, ChunkVolume)
	}
}

func TestGeneratorWithParamsHeightRange(t *testing.T) {
	g := NewGeneratorWithParams(7, 3, 5, 1.0/16.0, 2)
	for _, p := range [][2]int{{0, 0}, {100, -50}, {-7, 31}} {
		h := g.HeightAt(p[0], p[1])
		if h < 3 || h > 5 {
			t.Errorf("HeightAt(%d,%d) = %d, expected within [3,5]", p[0], p[1], h)
		}
	}
}

func TestGeneratorWithParamsRejectsBadRange(t *testing.T) {
	g := NewGeneratorWithParams(7, 9, 9, 0, 0)
	if g.minHeight != 1 || g.maxHeight != 12 {
		t.Errorf("Expected default height range [1,12] for empty range, got [%d,%d]",
			g.minHeight, g.maxHeight)
	}
	if g.scale != 1.0/24.0 || g.octaves != 3 {
		t.Errorf("Expected default scale and octaves for zero arguments, got %v and %d",
			g.scale, g.octaves)
	}
}

func TestFlatGeneratorLayering(t *testing.T) {
	g := FlatGenerator{Height: 8}
	c := g.Generate(ChunkCoord{X: 0, Y: 0, Z: 0})

	for lx := range ChunkSizeX {
		for lz := range ChunkSizeZ {
			for ly := 0; ly < 4; ly++ {
				if b := c.GetBlock(lx, ly, lz); b != BlockTypeStone {
					t.Errorf("Expected Stone at (%d,%d,%d), got %v", lx, ly, lz, b)
				}
			}
			for ly := 4; ly < 7; ly++ {
				if b := c.GetBlock(lx, ly, lz); b != BlockTypeDirt {
					t.Errorf("Expected Dirt at (%d,%d,%d), got %v", lx, ly, lz, b)
				}
			}
			if b := c.GetBlock(lx, 7, lz); b != BlockTypeGrass {
				t.Errorf("Expected Grass at (%d,7,%d), got %v", lx, lz, b)
			}
			for ly := 8; ly < ChunkSizeY; ly++ {
				if b := c.GetBlock(lx, ly, lz); b != BlockTypeAir {
					t.Errorf("Expected Air at (%d,%d,%d), got %v", lx, ly, lz, b)
				}
			}
		}
	}
}

// BenchmarkGenerate measures chunk generation performance
func BenchmarkGenerate(b *testing.B) {
	g := NewGenerator(12345)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Generate(ChunkCoord{X: i % 8, Y: 0, Z: i % 8})
	}
}

// BenchmarkHeightAt measures single-column height lookups
func BenchmarkHeightAt(b *testing.B) {
	g := NewGenerator(12345)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.HeightAt(i%512, (i*7)%512)
	}
}
