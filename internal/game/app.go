package game

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"voxview/internal/atlas"
	"voxview/internal/chunks"
	"voxview/internal/config"
	"voxview/internal/graphics"
	"voxview/internal/input"
	"voxview/internal/profiling"
	"voxview/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// App owns the window, the camera, the chunk set and the frame loop.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	camera   *graphics.Camera
	renderer *graphics.Renderer
	manager  *chunks.Manager

	fpsLimiter *FPSLimiter
	lastTime   time.Time

	// Framebuffer size, updated by the resize callback
	fbWidth  int
	fbHeight int

	// Mouse-look state; the first captured sample only seeds the deltas
	cursorCaptured bool
	firstMouse     bool
	lastMouseX     float64
	lastMouseY     float64

	// Windowed placement to restore when leaving fullscreen
	fullscreen bool
	windowedX  int
	windowedY  int
	windowedW  int
	windowedH  int

	// Consecutive frames the drawable has had no area
	surfaceDown int

	frames       int
	lastFPSCheck time.Time
}

func NewApp(window *glfw.Window, im *input.InputManager) (*App, error) {
	renderer, err := graphics.NewRenderer(atlas.DefaultLayout(), config.GetAtlasPath())
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	aspect := float32(1)
	if fbHeight > 0 {
		aspect = float32(fbWidth) / float32(fbHeight)
	}

	near, far := config.GetClipPlanes()
	camera := graphics.NewCamera(config.GetFOV(), aspect, near, far)
	camera.SetMoveSpeed(config.GetMoveSpeed())
	camera.SetSensitivity(config.GetMouseSensitivity())

	minHeight, maxHeight := config.GetHeightRange()
	gen := world.NewGeneratorWithParams(config.GetSeed(), minHeight, maxHeight,
		config.GetNoiseScale(), config.GetOctaves())

	// Spawn a little above the terrain surface
	groundY := gen.HeightAt(8, 8)
	camera.SetPosition(mgl32.Vec3{8, float32(groundY) + 2, 8})

	manager := chunks.NewManager(renderer.Device(), gen, config.GetViewRadius())

	profiling.SetEnabled(config.GetStatsEnabled())

	app := &App{
		window:       window,
		inputManager: im,
		camera:       camera,
		renderer:     renderer,
		manager:      manager,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		fbWidth:      fbWidth,
		fbHeight:     fbHeight,
		lastFPSCheck: time.Now(),
	}

	SetupInputHandlers(app)
	app.captureCursor()

	return app, nil
}

// Run drives the frame loop until the window closes or a frame fails.
func (a *App) Run() error {
	for !a.window.ShouldClose() {
		if err := a.tick(); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the chunk buffers and then the renderer's GL objects.
func (a *App) Close() {
	a.manager.Close()
	a.renderer.Close()
}

func (a *App) tick() error {
	profiling.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	a.handleActions()
	a.moveCamera(dt)

	if err := a.manager.Update(a.cameraChunk()); err != nil {
		return fmt.Errorf("updating chunks: %w", err)
	}

	err := a.renderer.Render(a.camera, a.manager, a.fbWidth, a.fbHeight)
	switch {
	case errors.Is(err, graphics.ErrSurfaceUnavailable):
		a.surfaceDown++
		if budget := config.GetSurfaceRetryBudget(); a.surfaceDown > budget {
			return fmt.Errorf("no drawable for %d frames: %w", a.surfaceDown, err)
		}
		// Nothing to present; idle briefly and keep polling events
		a.inputManager.PostUpdate()
		time.Sleep(50 * time.Millisecond)
		return nil
	case err != nil:
		return fmt.Errorf("rendering: %w", err)
	}
	a.surfaceDown = 0

	a.window.SwapBuffers()

	a.countFrame()

	// Check if the frame took too long (> 16ms)
	if d := time.Since(startTick); d > 16*time.Millisecond {
		if profiling.Enabled() {
			log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
		} else {
			log.Printf("Slow frame: %v", d)
		}
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait()
	return nil
}

func (a *App) handleActions() {
	im := a.inputManager

	if im.JustPressed(input.ActionToggleFullscreen) {
		a.toggleFullscreen()
	}

	if im.JustPressed(input.ActionReleaseCursor) {
		a.releaseCursor()
	}

	if im.JustPressed(input.ActionToggleStats) {
		enabled := !profiling.Enabled()
		profiling.SetEnabled(enabled)
		config.SetStatsEnabled(enabled)
		if enabled {
			log.Print("Frame stats on")
		} else {
			log.Print("Frame stats off")
		}
	}
}

func (a *App) moveCamera(dt float64) {
	im := a.inputManager
	forward := im.Axis(input.ActionMoveForward, input.ActionMoveBackward)
	right := im.Axis(input.ActionMoveRight, input.ActionMoveLeft)
	up := im.Axis(input.ActionFlyUp, input.ActionFlyDown)
	a.camera.Move(forward, right, up, float32(dt))
}

func (a *App) cameraChunk() world.ChunkCoord {
	p := a.camera.Position()
	return world.ChunkCoordAt(
		int(math.Floor(float64(p.X()))),
		int(math.Floor(float64(p.Y()))),
		int(math.Floor(float64(p.Z()))),
	)
}

func (a *App) countFrame() {
	a.frames++
	if time.Since(a.lastFPSCheck) < time.Second {
		return
	}
	drawn, culled := a.renderer.DrawStats()
	msg := fmt.Sprintf("FPS: %d | chunks loaded: %d drawn: %d culled: %d",
		a.frames, a.manager.Len(), drawn, culled)
	if profiling.Enabled() {
		if top := profiling.TopN(4); top != "" {
			msg += " | " + top
		}
	}
	log.Print(msg)
	a.frames = 0
	a.lastFPSCheck = time.Now()
}

func (a *App) toggleFullscreen() {
	if a.fullscreen {
		a.window.SetMonitor(nil, a.windowedX, a.windowedY, a.windowedW, a.windowedH, 0)
		a.fullscreen = false
		return
	}

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	mode := monitor.GetVideoMode()
	a.windowedX, a.windowedY = a.window.GetPos()
	a.windowedW, a.windowedH = a.window.GetSize()
	a.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	a.fullscreen = true
}

func (a *App) captureCursor() {
	a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	a.cursorCaptured = true
	a.firstMouse = true
}

func (a *App) releaseCursor() {
	a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	a.cursorCaptured = false
}
