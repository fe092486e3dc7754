package glbackend

import (
	"engine2d/internal/engine"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// surface is a GLFW window whose callbacks queue engine events until the
// next PollEvents.
type surface struct {
	win      *glfw.Window
	platform *Platform
	queue    []engine.Event
}

func (s *surface) installCallbacks() {
	s.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		s.queue = append(s.queue, engine.KeyEvent(engine.Key(key), scancode, engine.Action(action), engine.ModifierKey(mods)))
	})
	s.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		s.queue = append(s.queue, engine.MouseButtonEvent(engine.MouseButton(button), engine.Action(action), engine.ModifierKey(mods)))
	})
	s.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		s.queue = append(s.queue, engine.ScrollEvent(xoff, yoff))
	})
	s.win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		s.queue = append(s.queue, engine.Event{Kind: engine.EventCursorPos, X: xpos, Y: ypos})
	})
	s.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		s.queue = append(s.queue, engine.Event{Kind: engine.EventFramebufferSize, Width: width, Height: height})
	})
}

func (s *surface) Clear(c engine.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (s *surface) SwapBuffers() {
	s.platform.drainGLErrors()
	s.win.SwapBuffers()
}

func (s *surface) PollEvents(dst []engine.Event) []engine.Event {
	glfw.PollEvents()
	dst = append(dst, s.queue...)
	s.queue = s.queue[:0]
	return dst
}

func (s *surface) ShouldClose() bool {
	return s.win.ShouldClose()
}

func (s *surface) SetShouldClose(v bool) {
	s.win.SetShouldClose(v)
}

func (s *surface) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (s *surface) CursorPos() (float64, float64) {
	return s.win.GetCursorPos()
}

func (s *surface) Destroy() {
	s.win.Destroy()
}
