package engine

import "time"

// Drawable is scene logic plugged into a Window. Draw is called once per
// loop iteration on the loop thread with the window's simulated timestamp.
//
// The engine does not restore buffer or vertex array bindings between calls,
// so Draw must bind everything it uses.
type Drawable interface {
	Draw(timestamp time.Duration)
}

// Disposer is implemented by drawables that own graphics resources. The
// window calls Dispose when the drawable is replaced or the window is
// destroyed, while the context is still current.
type Disposer interface {
	Dispose()
}

// Resizer is implemented by drawables that track the framebuffer size. The
// window calls Resize after updating the viewport.
type Resizer interface {
	Resize(width, height int)
}

// DrawableFunc adapts a plain function to the Drawable interface.
type DrawableFunc func(timestamp time.Duration)

// Draw calls f(timestamp).
func (f DrawableFunc) Draw(timestamp time.Duration) { f(timestamp) }
