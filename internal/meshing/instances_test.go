package meshing

import (
	"reflect"
	"testing"
	"unsafe"

	"voxview/internal/world"
)

func TestFaceInstanceMatchesStreamLayout(t *testing.T) {
	if s := unsafe.Sizeof(FaceInstance{}); s != InstanceSize {
		t.Errorf("Expected FaceInstance size %d, got %d", InstanceSize, s)
	}
}

func TestBuildChunkInstancesEmptyChunk(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{X: 0, Y: 0, Z: 0})
	if got := BuildChunkInstances(c); len(got) != 0 {
		t.Errorf("Expected 0 instances for an all-air chunk, got %d", len(got))
	}
}

func TestBuildChunkInstancesNilChunk(t *testing.T) {
	if got := BuildChunkInstances(nil); got != nil {
		t.Errorf("Expected nil instances for nil chunk, got %d", len(got))
	}
}

func TestBuildChunkInstancesSingleBlock(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{X: 0, Y: 0, Z: 0})
	c.SetBlock(8, 4, 8, world.BlockTypeDirt)

	got := BuildChunkInstances(c)
	if len(got) != 6 {
		t.Fatalf("Expected 6 instances for an isolated block, got %d", len(got))
	}

	faces := make(map[uint32]bool)
	for _, inst := range got {
		if inst.Position != [3]float32{8, 4, 8} {
			t.Errorf("Expected instance position (8,4,8), got %v", inst.Position)
		}
		if inst.Block != uint32(world.BlockTypeDirt) {
			t.Errorf("Expected block id %d, got %d", world.BlockTypeDirt, inst.Block)
		}
		faces[inst.Face] = true
	}
	for f := range uint32(world.FaceCount) {
		if !faces[f] {
			t.Errorf("Expected face %d to be emitted for an isolated block", f)
		}
	}
}

func TestBuildChunkInstancesAdjacentBlocks(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{X: 0, Y: 0, Z: 0})
	c.SetBlock(4, 4, 4, world.BlockTypeStone)
	c.SetBlock(5, 4, 4, world.BlockTypeStone)

	// Two touching blocks hide one face each.
	got := BuildChunkInstances(c)
	if len(got) != 10 {
		t.Errorf("Expected 10 instances for two adjacent blocks, got %d", len(got))
	}
	for _, inst := range got {
		touching := inst.Position == [3]float32{4, 4, 4} && inst.Face == uint32(world.FaceRight) ||
			inst.Position == [3]float32{5, 4, 4} && inst.Face == uint32(world.FaceLeft)
		if touching {
			t.Errorf("Expected the shared faces to be culled, got face %d at %v", inst.Face, inst.Position)
		}
	}
}

func TestBuildChunkInstancesFullChunk(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{X: 0, Y: 0, Z: 0})
	for lx := range world.ChunkSizeX {
		for ly := range world.ChunkSizeY {
			for lz := range world.ChunkSizeZ {
				c.SetBlock(lx, ly, lz, world.BlockTypeStone)
			}
		}
	}

	// Only boundary faces survive: 6 sides of 16x16 blocks.
	got := BuildChunkInstances(c)
	want := 6 * world.ChunkSizeX * world.ChunkSizeZ
	if len(got) != want {
		t.Errorf("Expected %d boundary instances for a full chunk, got %d", want, len(got))
	}
}

func TestBuildChunkInstancesNegativeChunkCoord(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{X: -1, Y: 0, Z: -2})
	c.SetBlock(0, 0, 0, world.BlockTypeGrass)

	got := BuildChunkInstances(c)
	if len(got) != 6 {
		t.Fatalf("Expected 6 instances, got %d", len(got))
	}
	want := [3]float32{-16, 0, -32}
	for _, inst := range got {
		if inst.Position != want {
			t.Errorf("Expected instance position %v, got %v", want, inst.Position)
		}
	}
}

func TestBuildChunkInstancesStableOutput(t *testing.T) {
	g := world.NewGenerator(99)
	c := g.Generate(world.ChunkCoord{X: 1, Y: 0, Z: -1})

	first := BuildChunkInstances(c)
	second := BuildChunkInstances(c)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical instance streams across invocations")
	}
}

func BenchmarkBuildChunkInstances(b *testing.B) {
	g := world.NewGenerator(12345)
	c := g.Generate(world.ChunkCoord{X: 0, Y: 0, Z: 0})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildChunkInstances(c)
	}
}
