package app

import (
	"time"

	"engine2d/internal/config"
	"engine2d/internal/engine"
)

// Frame wraps a Drawable with frame rate limiting and counting. Disposal and
// resizing are forwarded to the wrapped Drawable.
type Frame struct {
	Drawable engine.Drawable
	Limiter  *FPSLimiter
	Counter  *FPSCounter
}

// NewFrame wraps d with a limiter following config.GetFPSLimit.
func NewFrame(d engine.Drawable) *Frame {
	return &Frame{Drawable: d, Limiter: NewFPSLimiter()}
}

func (f *Frame) Draw(ts time.Duration) {
	if f.Drawable != nil {
		f.Drawable.Draw(ts)
	}
	if f.Counter != nil {
		f.Counter.Tick()
	}
	if f.Limiter != nil {
		f.Limiter.Wait(config.GetFPSLimit())
	}
}

func (f *Frame) Dispose() {
	if d, ok := f.Drawable.(engine.Disposer); ok {
		d.Dispose()
	}
}

func (f *Frame) Resize(width, height int) {
	if r, ok := f.Drawable.(engine.Resizer); ok {
		r.Resize(width, height)
	}
}

// Layers draws its Drawables in order, later ones on top. Dispose and Resize
// reach every layer that implements them.
type Layers []engine.Drawable

func (l Layers) Draw(ts time.Duration) {
	for _, d := range l {
		d.Draw(ts)
	}
}

func (l Layers) Dispose() {
	for _, d := range l {
		if x, ok := d.(engine.Disposer); ok {
			x.Dispose()
		}
	}
}

func (l Layers) Resize(width, height int) {
	for _, d := range l {
		if r, ok := d.(engine.Resizer); ok {
			r.Resize(width, height)
		}
	}
}

// FPSCounter reports the number of ticks seen in each elapsed second.
type FPSCounter struct {
	frames int
	last   time.Time
	now    func() time.Time
	report func(fps int)
}

// NewFPSCounter creates a counter that calls report about once per second.
func NewFPSCounter(report func(fps int)) *FPSCounter {
	return &FPSCounter{now: time.Now, report: report}
}

// Tick counts one frame.
func (c *FPSCounter) Tick() {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	c.frames++

	elapsed := now.Sub(c.last)
	if elapsed < time.Second {
		return
	}
	c.report(int(float64(c.frames)/elapsed.Seconds() + 0.5))
	c.frames = 0
	c.last = now
}

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due at limit frames per second. A
// limit of 0 or less returns immediately.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(limit int) {
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// resync after a hitch instead of catching up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
