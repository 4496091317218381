package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window

	// Keyboard actions
	app.inputManager.SetKeyCallback(window)

	// Mouse position callback
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !app.cursorCaptured {
			return
		}
		if app.firstMouse {
			app.lastMouseX = xpos
			app.lastMouseY = ypos
			app.firstMouse = false
			return
		}
		dx := xpos - app.lastMouseX
		dy := ypos - app.lastMouseY
		app.lastMouseX = xpos
		app.lastMouseY = ypos
		app.camera.Look(float32(dx), float32(dy))
	})

	// Clicking the window recaptures a released cursor
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press && !app.cursorCaptured {
			app.captureCursor()
		}
	})

	// Framebuffer size callback; the viewport itself is set during Render
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		app.fbWidth = fbWidth
		app.fbHeight = fbHeight
		if fbHeight > 0 {
			app.camera.SetAspect(float32(fbWidth) / float32(fbHeight))
		}
	})

	// Losing focus releases the cursor so the window is easy to leave
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused && app.cursorCaptured {
			app.releaseCursor()
		}
	})
}
