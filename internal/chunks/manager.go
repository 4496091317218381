package chunks

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"

	"voxview/internal/meshing"
	"voxview/internal/profiling"
	"voxview/internal/world"
)

// InstanceBuffer is a handle to an uploaded per-chunk face stream. The zero
// value means nothing is uploaded; chunks without visible faces keep it.
type InstanceBuffer struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// Device uploads and releases instance buffers. The GL device in the
// graphics package implements it; tests substitute an in-memory fake.
type Device interface {
	CreateInstanceBuffer(instances []meshing.FaceInstance) (InstanceBuffer, error)
	DestroyInstanceBuffer(buf InstanceBuffer)
}

// Entry is one loaded chunk together with its uploaded faces.
type Entry struct {
	Chunk  *world.Chunk
	Buffer InstanceBuffer

	// layerSolid caches Chunk.LayerSolid per face; chunks never change
	// after generation.
	layerSolid [world.FaceCount]bool
}

// Manager owns the set of loaded chunks and their GPU buffers, keeping it
// equal to a cube of chunks around the camera. All methods must be called
// from the thread that owns the GL context: generation and meshing fan out
// to a worker pool, but every Device call happens on the calling goroutine.
type Manager struct {
	device  Device
	gen     world.TerrainGenerator
	radius  int
	entries map[world.ChunkCoord]*Entry
	pool    pond.Pool
}

// genResult pairs a generated chunk with its meshed faces.
type genResult struct {
	chunk      *world.Chunk
	instances  []meshing.FaceInstance
	layerSolid [world.FaceCount]bool
}

// NewManager creates a manager that keeps chunks loaded within the given
// Chebyshev radius of the camera's chunk.
func NewManager(device Device, gen world.TerrainGenerator, radius int) *Manager {
	if radius < 0 {
		radius = 0
	}
	return &Manager{
		device:  device,
		gen:     gen,
		radius:  radius,
		entries: make(map[world.ChunkCoord]*Entry),
		pool:    pond.NewPool(runtime.NumCPU()),
	}
}

// Update reconciles the loaded set against the chunk containing the camera:
// chunks that left the radius are released, missing ones are generated,
// meshed and uploaded. After a successful update the loaded set is exactly
// the (2r+1)^3 cube around center. A buffer upload failure aborts the
// update and is not recoverable.
func (m *Manager) Update(center world.ChunkCoord) error {
	defer profiling.Track("chunks.update")()

	r := m.radius
	side := 2*r + 1
	target := make(map[world.ChunkCoord]struct{}, side*side*side)
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			for dz := -r; dz <= r; dz++ {
				target[world.ChunkCoord{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}] = struct{}{}
			}
		}
	}

	for coord, e := range m.entries {
		if _, ok := target[coord]; ok {
			continue
		}
		if e.Buffer.Count > 0 {
			m.device.DestroyInstanceBuffer(e.Buffer)
		}
		delete(m.entries, coord)
	}

	var missing []world.ChunkCoord
	for coord := range target {
		if _, ok := m.entries[coord]; !ok {
			missing = append(missing, coord)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	results := make([]genResult, len(missing))
	func() {
		defer profiling.Track("chunks.generate")()
		var wg sync.WaitGroup
		for i, coord := range missing {
			wg.Add(1)
			m.pool.Submit(func() {
				defer wg.Done()
				c := m.gen.Generate(coord)
				res := genResult{chunk: c, instances: meshing.BuildChunkInstances(c)}
				for f := range world.BlockFace(world.FaceCount) {
					res.layerSolid[f] = c.LayerSolid(f)
				}
				results[i] = res
			})
		}
		wg.Wait()
	}()

	defer profiling.Track("chunks.upload")()
	for i, coord := range missing {
		entry := &Entry{Chunk: results[i].chunk, layerSolid: results[i].layerSolid}
		if len(results[i].instances) > 0 {
			buf, err := m.device.CreateInstanceBuffer(results[i].instances)
			if err != nil {
				return fmt.Errorf("chunk (%d,%d,%d): creating instance buffer: %w",
					coord.X, coord.Y, coord.Z, err)
			}
			entry.Buffer = buf
		}
		m.entries[coord] = entry
	}
	return nil
}

// Len returns the number of loaded chunks.
func (m *Manager) Len() int {
	return len(m.entries)
}

// AppendEntries appends every loaded entry to dst and returns the extended
// slice. Entries carry their coordinate via the chunk; iteration order is
// unspecified.
func (m *Manager) AppendEntries(dst []*Entry) []*Entry {
	for _, e := range m.entries {
		dst = append(dst, e)
	}
	return dst
}

// BlockAt returns the block at a world position, or air when the containing
// chunk is not loaded.
func (m *Manager) BlockAt(worldX, worldY, worldZ int) world.BlockType {
	coord, lx, ly, lz := world.SplitWorldPos(worldX, worldY, worldZ)
	e, ok := m.entries[coord]
	if !ok {
		return world.BlockTypeAir
	}
	return e.Chunk.GetBlock(lx, ly, lz)
}

// FullySurrounded reports whether each of the six neighboring chunks is
// loaded and presents a fully solid boundary layer toward coord. Such a
// chunk cannot be seen from outside it and can be skipped at draw time.
func (m *Manager) FullySurrounded(coord world.ChunkCoord) bool {
	for f := range world.BlockFace(world.FaceCount) {
		dx, dy, dz := f.Offset()
		n, ok := m.entries[world.ChunkCoord{X: coord.X + dx, Y: coord.Y + dy, Z: coord.Z + dz}]
		if !ok {
			return false
		}
		if !n.layerSolid[f.Opposite()] {
			return false
		}
	}
	return true
}

// Close releases every loaded buffer and stops the worker pool.
func (m *Manager) Close() {
	for coord, e := range m.entries {
		if e.Buffer.Count > 0 {
			m.device.DestroyInstanceBuffer(e.Buffer)
		}
		delete(m.entries, coord)
	}
	m.pool.StopAndWait()
}
