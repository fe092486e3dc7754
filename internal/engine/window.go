package engine

import (
	"log"
	"reflect"
	"time"

	"engine2d/internal/profiling"
)

// FrameStep is the simulated time added to the window clock on every loop
// iteration, one 60 Hz refresh interval. It is not measured.
const FrameStep = 16666667 * time.Nanosecond

// Color is an RGBA color with components in 0..1.
type Color struct {
	R, G, B, A float32
}

// WindowConfig holds the creation parameters of a Window.
type WindowConfig struct {
	Width        int
	Height       int
	Title        string
	SwapInterval int
	ContextMajor int
	ContextMinor int
	Transparent  bool
	// SlowFrame is the wall-clock duration above which a frame is logged
	// with its slowest sections. Zero disables the check.
	SlowFrame time.Duration
}

// DefaultWindowConfig returns the configuration used by NewWindow.
func DefaultWindowConfig(width, height int) WindowConfig {
	return WindowConfig{
		Width:        width,
		Height:       height,
		Title:        "engine2d",
		SwapInterval: 1,
		ContextMajor: 4,
		ContextMinor: 1,
		Transparent:  true,
	}
}

type loopState int

const (
	stateIdle loopState = iota
	stateRunning
	stateClosePending
	stateClosed
)

// Window owns a native surface, the clear color, the simulated clock, a
// single Drawable and the input callback tables, and runs the render loop.
//
// Window is not safe for concurrent use. Setters must be called from the
// loop thread, before Run or from inside callbacks and Draw.
type Window struct {
	width, height int
	surface       Surface

	clearColor Color
	timestamp  time.Duration
	drawable   Drawable

	keyCallbacks   map[Key]KeyCallback
	mouseCallbacks map[MouseButton]MouseButtonCallback
	scrollCallback ScrollCallback

	state     loopState
	events    []Event
	slowFrame time.Duration
}

// NewWindow creates a window of the given size with default settings. It
// returns false, after logging, if the native window cannot be created.
func (c *RenderContext) NewWindow(width, height int) (*Window, bool) {
	return c.NewWindowConfig(DefaultWindowConfig(width, height))
}

// NewWindowConfig creates a window from cfg. The context must outlive it.
func (c *RenderContext) NewWindowConfig(cfg WindowConfig) (*Window, bool) {
	surface, err := c.platform.CreateSurface(SurfaceConfig{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Title:        cfg.Title,
		SwapInterval: cfg.SwapInterval,
		ContextMajor: cfg.ContextMajor,
		ContextMinor: cfg.ContextMinor,
		Transparent:  cfg.Transparent,
	})
	if err != nil {
		log.Printf("failed to create window: %v", err)
		return nil, false
	}
	return newWindow(surface, cfg), true
}

func newWindow(surface Surface, cfg WindowConfig) *Window {
	return &Window{
		width:          cfg.Width,
		height:         cfg.Height,
		surface:        surface,
		keyCallbacks:   make(map[Key]KeyCallback),
		mouseCallbacks: make(map[MouseButton]MouseButtonCallback),
		slowFrame:      cfg.SlowFrame,
	}
}

// Width returns the width the window was created with.
func (w *Window) Width() int { return w.width }

// Height returns the height the window was created with.
func (w *Window) Height() int { return w.height }

// Timestamp returns the simulated time of the last frame.
func (w *Window) Timestamp() time.Duration { return w.timestamp }

// ClearColor returns the current clear color.
func (w *Window) ClearColor() Color { return w.clearColor }

// SetClearColor sets the color the framebuffer is cleared to each frame.
func (w *Window) SetClearColor(c Color) {
	w.clearColor = c
}

// SetDrawable hands d to the window. A previously set drawable is disposed
// if it implements Disposer and is never drawn again. Setting the drawable
// already in the slot is a no-op. A nil d empties the slot.
func (w *Window) SetDrawable(d Drawable) {
	old := w.drawable
	if sameDrawable(old, d) {
		return
	}
	w.drawable = d
	if old != nil {
		if disposer, ok := old.(Disposer); ok {
			disposer.Dispose()
		}
	}
}

// sameDrawable reports whether a and b are the same pointer. Other kinds are
// never considered equal, since values such as DrawableFunc cannot be
// compared.
func sameDrawable(a, b Drawable) bool {
	if a == nil || b == nil {
		return false
	}
	t := reflect.TypeOf(a)
	return t.Kind() == reflect.Pointer && t == reflect.TypeOf(b) && a == b
}

// SetKeyCallback registers fn for events of key, replacing any previous one.
// A nil fn removes the entry.
func (w *Window) SetKeyCallback(key Key, fn KeyCallback) {
	if fn == nil {
		delete(w.keyCallbacks, key)
		return
	}
	w.keyCallbacks[key] = fn
}

// SetMouseButtonCallback registers fn for events of button, replacing any
// previous one. A nil fn removes the entry.
func (w *Window) SetMouseButtonCallback(button MouseButton, fn MouseButtonCallback) {
	if fn == nil {
		delete(w.mouseCallbacks, button)
		return
	}
	w.mouseCallbacks[button] = fn
}

// SetScrollCallback sets the single scroll callback. A nil fn removes it.
func (w *Window) SetScrollCallback(fn ScrollCallback) {
	w.scrollCallback = fn
}

// CursorPos returns the cursor position in window coordinates.
func (w *Window) CursorPos() (x, y float64) {
	return w.surface.CursorPos()
}

// RequestClose asks the loop to stop at the end of the current iteration.
func (w *Window) RequestClose() {
	w.surface.SetShouldClose(true)
}

// Closed reports whether Run has returned.
func (w *Window) Closed() bool {
	return w.state == stateClosed
}

// Run executes the render loop until the cancel key is pressed or the
// window is asked to close.
func (w *Window) Run() {
	w.state = stateRunning
	if w.surface.ShouldClose() {
		w.state = stateClosePending
	}
	for w.state == stateRunning {
		w.frame()
	}
	w.state = stateClosed
}

// frame runs one loop iteration: advance clock, clear, draw, present, poll
// and dispatch.
func (w *Window) frame() {
	profiling.ResetFrame()
	start := time.Now()

	w.timestamp += FrameStep

	func() { defer profiling.Track("window.Clear")(); w.surface.Clear(w.clearColor) }()

	if w.drawable != nil {
		func() { defer profiling.Track("window.Draw")(); w.drawable.Draw(w.timestamp) }()
	}

	func() { defer profiling.Track("window.Present")(); w.surface.SwapBuffers() }()

	func() {
		defer profiling.Track("window.Poll")()
		w.events = w.surface.PollEvents(w.events[:0])
	}()

	func() { defer profiling.Track("window.Dispatch")(); w.dispatch(w.events) }()

	if w.state == stateRunning && w.surface.ShouldClose() {
		w.state = stateClosePending
	}

	if w.slowFrame > 0 {
		if d := time.Since(start); d > w.slowFrame {
			log.Printf("slow frame: %v. top sections: %s", d, profiling.TopN(3))
		}
	}
}

func (w *Window) dispatch(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventKey:
			if ev.Key == CancelKey && ev.Action == Press {
				w.surface.SetShouldClose(true)
				w.state = stateClosePending
				continue
			}
			if fn, ok := w.keyCallbacks[ev.Key]; ok {
				fn(ev.Key, ev.Scancode, ev.Action, ev.Mods)
			}
		case EventMouseButton:
			if fn, ok := w.mouseCallbacks[ev.Button]; ok {
				fn(ev.Button, ev.Action, ev.Mods)
			}
		case EventScroll:
			if w.scrollCallback != nil {
				w.scrollCallback(ev.X, ev.Y)
			}
		case EventFramebufferSize:
			w.surface.Viewport(ev.Width, ev.Height)
			if r, ok := w.drawable.(Resizer); ok {
				r.Resize(ev.Width, ev.Height)
			}
		}
	}
}

// Destroy disposes the drawable and releases the native surface. The window
// must not be used afterwards.
func (w *Window) Destroy() {
	w.SetDrawable(nil)
	if w.surface != nil {
		w.surface.Destroy()
		w.surface = nil
	}
	w.state = stateClosed
}
