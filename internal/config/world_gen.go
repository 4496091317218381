package config

import "sync"

// WorldGenSettings holds terrain generation configuration
type WorldGenSettings struct {
	mu        sync.RWMutex
	seed      int64
	minHeight int
	maxHeight int
	scale     float64
	octaves   int
}

var globalWorldGenSettings = &WorldGenSettings{
	seed:      42,
	minHeight: 1,
	maxHeight: 12,
	scale:     1.0 / 24.0, // noise frequency in inverse blocks
	octaves:   3,
}

// GetSeed returns the terrain seed
func GetSeed() int64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.seed
}

// SetSeed sets the terrain seed
func SetSeed(seed int64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.seed = seed
}

// GetHeightRange returns the lowest and highest surface heights in blocks
func GetHeightRange() (int, int) {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.minHeight, globalWorldGenSettings.maxHeight
}

// SetHeightRange sets the surface height range, keeping max above min
func SetHeightRange(min, max int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()

	if min < 0 {
		min = 0
	}
	if max <= min {
		max = min + 1
	}

	globalWorldGenSettings.minHeight = min
	globalWorldGenSettings.maxHeight = max
}

// GetNoiseScale returns the heightmap noise frequency
func GetNoiseScale() float64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.scale
}

// SetNoiseScale sets the heightmap noise frequency; non-positive values are
// ignored
func SetNoiseScale(scale float64) {
	if scale <= 0 {
		return
	}
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.scale = scale
}

// GetOctaves returns how many noise octaves the heightmap sums
func GetOctaves() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.octaves
}

// SetOctaves sets how many noise octaves the heightmap sums
func SetOctaves(octaves int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()

	// Clamp to reasonable values
	if octaves < 1 {
		octaves = 1
	}
	if octaves > 8 {
		octaves = 8
	}

	globalWorldGenSettings.octaves = octaves
}
