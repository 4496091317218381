package config

import "sync"

// DisplaySettings holds window and frame pacing configuration
type DisplaySettings struct {
	mu                 sync.RWMutex
	windowWidth        int
	windowHeight       int
	windowTitle        string
	fpsLimit           int
	surfaceRetryBudget int
	statsEnabled       bool
}

var globalDisplaySettings = &DisplaySettings{
	windowWidth:        1280,
	windowHeight:       720,
	windowTitle:        "voxview",
	fpsLimit:           120, // frames per second, 0 disables the limiter
	surfaceRetryBudget: 120, // frames to sit out a zero-area drawable
}

// GetWindowSize returns the initial window dimensions in pixels
func GetWindowSize() (int, int) {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.windowWidth, globalDisplaySettings.windowHeight
}

// SetWindowSize sets the initial window dimensions in pixels
func SetWindowSize(width, height int) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	// Clamp to reasonable values
	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}

	globalDisplaySettings.windowWidth = width
	globalDisplaySettings.windowHeight = height
}

// GetWindowTitle returns the window title
func GetWindowTitle() string {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.windowTitle
}

// SetWindowTitle sets the window title; empty titles are ignored
func SetWindowTitle(title string) {
	if title == "" {
		return
	}
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()
	globalDisplaySettings.windowTitle = title
}

// GetFPSLimit returns the frame rate cap, 0 meaning uncapped
func GetFPSLimit() int {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap; 0 or below disables the limiter
func SetFPSLimit(limit int) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalDisplaySettings.fpsLimit = limit
}

// GetSurfaceRetryBudget returns how many frames the render loop waits on a
// drawable with no area before giving up
func GetSurfaceRetryBudget() int {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.surfaceRetryBudget
}

// SetSurfaceRetryBudget sets the zero-area drawable frame budget
func SetSurfaceRetryBudget(frames int) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	if frames < 1 {
		frames = 1
	}

	globalDisplaySettings.surfaceRetryBudget = frames
}

// GetStatsEnabled returns whether per-frame timing stats are logged
func GetStatsEnabled() bool {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.statsEnabled
}

// SetStatsEnabled toggles per-frame timing stats logging
func SetStatsEnabled(enabled bool) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()
	globalDisplaySettings.statsEnabled = enabled
}

// RenderSettings holds render configuration
type RenderSettings struct {
	mu         sync.RWMutex
	viewRadius int // in chunks
	atlasPath  string
}

var globalRenderSettings = &RenderSettings{
	viewRadius: 3, // default value
	atlasPath:  "assets/atlas.png",
}

// GetViewRadius returns the chunk load radius around the camera, in chunks
func GetViewRadius() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.viewRadius
}

// SetViewRadius sets the chunk load radius around the camera, in chunks
func SetViewRadius(radius int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if radius < 1 {
		radius = 1
	}
	if radius > 8 {
		radius = 8
	}

	globalRenderSettings.viewRadius = radius
}

// GetAtlasPath returns the texture atlas image path; empty selects the
// generated placeholder atlas
func GetAtlasPath() string {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.atlasPath
}

// SetAtlasPath sets the texture atlas image path
func SetAtlasPath(path string) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.atlasPath = path
}

// CameraSettings holds camera and movement configuration
type CameraSettings struct {
	mu          sync.RWMutex
	fov         float32 // vertical, in degrees
	near        float32
	far         float32
	moveSpeed   float32 // blocks per second
	sensitivity float32 // radians per pixel
}

var globalCameraSettings = &CameraSettings{
	fov:         45,
	near:        0.1,
	far:         100,
	moveSpeed:   5.0,
	sensitivity: 0.002,
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.fov
}

// SetFOV sets the vertical field of view in degrees
func SetFOV(fov float32) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	// Clamp to reasonable values
	if fov < 30 {
		fov = 30
	}
	if fov > 110 {
		fov = 110
	}

	globalCameraSettings.fov = fov
}

// GetClipPlanes returns the near and far clip distances
func GetClipPlanes() (float32, float32) {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.near, globalCameraSettings.far
}

// SetClipPlanes sets the near and far clip distances, keeping far beyond near
func SetClipPlanes(near, far float32) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	if near < 0.01 {
		near = 0.01
	}
	if far <= near {
		far = near + 1
	}

	globalCameraSettings.near = near
	globalCameraSettings.far = far
}

// GetMoveSpeed returns the fly speed in blocks per second
func GetMoveSpeed() float32 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.moveSpeed
}

// SetMoveSpeed sets the fly speed; non-positive speeds are ignored
func SetMoveSpeed(speed float32) {
	if speed <= 0 {
		return
	}
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()
	globalCameraSettings.moveSpeed = speed
}

// GetMouseSensitivity returns the look sensitivity in radians per pixel
func GetMouseSensitivity() float32 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.sensitivity
}

// SetMouseSensitivity sets the look sensitivity; non-positive values are
// ignored
func SetMouseSensitivity(s float32) {
	if s <= 0 {
		return
	}
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()
	globalCameraSettings.sensitivity = s
}
