package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDrawable struct {
	stamps   []time.Duration
	disposed int
	sleep    func(frame int) time.Duration
}

func (d *recordingDrawable) Draw(ts time.Duration) {
	if d.sleep != nil {
		time.Sleep(d.sleep(len(d.stamps)))
	}
	d.stamps = append(d.stamps, ts)
}

func (d *recordingDrawable) Dispose() { d.disposed++ }

func testWindow(s *fakeSurface) *Window {
	return newWindow(s, DefaultWindowConfig(800, 600))
}

func TestClockAdvancesByFixedStep(t *testing.T) {
	s := &fakeSurface{closeAfter: 5}
	w := testWindow(s)
	d := &recordingDrawable{sleep: func(frame int) time.Duration {
		if frame == 2 {
			return 20 * time.Millisecond
		}
		return 0
	}}
	w.SetDrawable(d)

	w.Run()

	require.Len(t, d.stamps, 5)
	for i, ts := range d.stamps {
		assert.Equal(t, time.Duration(i+1)*FrameStep, ts)
	}
	assert.Equal(t, 5*FrameStep, w.Timestamp())
	assert.True(t, w.Closed())
}

func TestRunWithoutDrawableClearsAndPresents(t *testing.T) {
	s := &fakeSurface{closeAfter: 3}
	w := testWindow(s)
	c := Color{R: 0.2, G: 0.2, B: 0.2, A: 1}
	w.SetClearColor(c)

	w.Run()

	assert.Equal(t, 3, s.swaps)
	assert.Equal(t, []Color{c, c, c}, s.clears)
	assert.Equal(t, c, w.ClearColor())
}

func TestRunReturnsImmediatelyWhenAlreadyClosing(t *testing.T) {
	s := &fakeSurface{shouldClose: true}
	w := testWindow(s)
	d := &recordingDrawable{}
	w.SetDrawable(d)

	w.Run()

	assert.Empty(t, d.stamps)
	assert.Zero(t, s.swaps)
}

func TestSetDrawableDropsPrevious(t *testing.T) {
	s := &fakeSurface{closeAfter: 2}
	w := testWindow(s)
	first := &recordingDrawable{}
	second := &recordingDrawable{}

	w.SetDrawable(first)
	w.Run()
	require.Len(t, first.stamps, 2)

	w.SetDrawable(second)
	assert.Equal(t, 1, first.disposed)

	s.shouldClose = false
	s.closeAfter = 5
	w.Run()

	assert.Len(t, first.stamps, 2, "replaced drawable must not be drawn again")
	assert.Equal(t, []time.Duration{3 * FrameStep, 4 * FrameStep, 5 * FrameStep}, second.stamps)
	assert.Zero(t, second.disposed)
}

func TestSetDrawableSameValueKeepsIt(t *testing.T) {
	s := &fakeSurface{closeAfter: 2}
	w := testWindow(s)
	d := &recordingDrawable{}

	w.SetDrawable(d)
	w.SetDrawable(d)
	w.Run()

	assert.Zero(t, d.disposed, "re-setting the current drawable must not dispose it")
	assert.Len(t, d.stamps, 2)

	w.SetDrawable(&recordingDrawable{})
	assert.Equal(t, 1, d.disposed)
}

func TestSetDrawableFuncTwiceDoesNotPanic(t *testing.T) {
	w := testWindow(&fakeSurface{closeAfter: 1})
	f := DrawableFunc(func(time.Duration) {})
	assert.NotPanics(t, func() {
		w.SetDrawable(f)
		w.SetDrawable(f)
	})
}

func TestSetDrawableFuncIsNotDisposed(t *testing.T) {
	s := &fakeSurface{closeAfter: 1}
	w := testWindow(s)
	calls := 0
	w.SetDrawable(DrawableFunc(func(time.Duration) { calls++ }))
	w.Run()
	w.SetDrawable(nil)
	assert.Equal(t, 1, calls)
}

func TestCancelKeyTakesPrecedence(t *testing.T) {
	s := &fakeSurface{batches: [][]Event{
		{KeyEvent(KeyA, 30, Press, 0)},
		{
			KeyEvent(CancelKey, 9, Press, 0),
			KeyEvent(KeyB, 56, Press, ModShift),
		},
		{KeyEvent(KeyA, 30, Press, 0)},
	}}
	w := testWindow(s)

	var escapes, keys []Key
	var mods []ModifierKey
	w.SetKeyCallback(CancelKey, func(k Key, _ int, _ Action, _ ModifierKey) { escapes = append(escapes, k) })
	record := func(k Key, _ int, _ Action, m ModifierKey) {
		keys = append(keys, k)
		mods = append(mods, m)
	}
	w.SetKeyCallback(KeyA, record)
	w.SetKeyCallback(KeyB, record)

	w.Run()

	assert.Empty(t, escapes, "cancel key press must not reach the key callback")
	assert.Equal(t, []Key{KeyA, KeyB}, keys, "events after the cancel key in the same batch are still dispatched")
	assert.Equal(t, []ModifierKey{0, ModShift}, mods)
	assert.Equal(t, 2, s.swaps, "loop stops after the iteration that saw the cancel key")
	assert.True(t, s.shouldClose)
}

func TestCancelKeyReleaseReachesCallback(t *testing.T) {
	s := &fakeSurface{closeAfter: 1, batches: [][]Event{
		{KeyEvent(CancelKey, 9, Release, 0)},
	}}
	w := testWindow(s)
	var actions []Action
	w.SetKeyCallback(CancelKey, func(_ Key, _ int, a Action, _ ModifierKey) { actions = append(actions, a) })

	w.Run()

	assert.Equal(t, []Action{Release}, actions)
}

func TestDispatchMouseAndScroll(t *testing.T) {
	s := &fakeSurface{closeAfter: 2, batches: [][]Event{
		{
			MouseButtonEvent(MouseButtonLeft, Press, 0),
			MouseButtonEvent(MouseButtonRight, Press, 0),
			ScrollEvent(0, 1),
			{Kind: EventCursorPos, X: 10, Y: 20},
		},
		{
			MouseButtonEvent(MouseButtonLeft, Release, 0),
			ScrollEvent(0.5, -2),
		},
	}}
	w := testWindow(s)

	clicks := 0
	var actions []Action
	w.SetMouseButtonCallback(MouseButtonLeft, func(_ MouseButton, a Action, _ ModifierKey) {
		clicks++
		actions = append(actions, a)
	})

	var firstScroll [][2]float64
	w.SetScrollCallback(func(x, y float64) { firstScroll = append(firstScroll, [2]float64{x, y}) })
	var scroll [][2]float64
	w.SetScrollCallback(func(x, y float64) { scroll = append(scroll, [2]float64{x, y}) })

	w.Run()

	assert.Equal(t, 2, clicks, "captured state persists across calls")
	assert.Equal(t, []Action{Press, Release}, actions)
	assert.Empty(t, firstScroll, "scroll callback is replaced")
	assert.Equal(t, [][2]float64{{0, 1}, {0.5, -2}}, scroll)
}

func TestUnmatchedEventsAreDropped(t *testing.T) {
	s := &fakeSurface{closeAfter: 1, batches: [][]Event{
		{
			KeyEvent(KeyQ, 24, Press, 0),
			MouseButtonEvent(MouseButtonMiddle, Press, 0),
			ScrollEvent(1, 1),
		},
	}}
	w := testWindow(s)
	called := false
	w.SetKeyCallback(KeyW, func(Key, int, Action, ModifierKey) { called = true })
	w.SetKeyCallback(KeyQ, nil)

	assert.NotPanics(t, w.Run)
	assert.False(t, called)
}

func TestFramebufferResizeUpdatesViewport(t *testing.T) {
	s := &fakeSurface{closeAfter: 1, batches: [][]Event{
		{{Kind: EventFramebufferSize, Width: 1600, Height: 900}},
	}}
	w := testWindow(s)

	w.Run()

	assert.Equal(t, [2]int{1600, 900}, s.viewport)
	assert.Equal(t, 800, w.Width(), "creation size is immutable")
}

type resizingDrawable struct {
	recordingDrawable
	sizes [][2]int
}

func (d *resizingDrawable) Resize(width, height int) {
	d.sizes = append(d.sizes, [2]int{width, height})
}

func TestFramebufferResizeReachesResizer(t *testing.T) {
	s := &fakeSurface{closeAfter: 2, batches: [][]Event{
		{{Kind: EventFramebufferSize, Width: 1600, Height: 900}},
		{{Kind: EventFramebufferSize, Width: 640, Height: 480}},
	}}
	w := testWindow(s)
	d := &resizingDrawable{}
	w.SetDrawable(d)

	w.Run()

	assert.Equal(t, [][2]int{{1600, 900}, {640, 480}}, d.sizes)
	assert.Equal(t, [2]int{640, 480}, s.viewport)
}

func TestRequestCloseFromDraw(t *testing.T) {
	s := &fakeSurface{}
	w := testWindow(s)
	frames := 0
	w.SetDrawable(DrawableFunc(func(time.Duration) {
		frames++
		if frames == 4 {
			w.RequestClose()
		}
	}))

	w.Run()

	assert.Equal(t, 4, frames)
	assert.Equal(t, 4, s.swaps)
}

func TestDestroyDisposesDrawableBeforeSurface(t *testing.T) {
	s := &fakeSurface{}
	w := testWindow(s)
	d := &recordingDrawable{}
	w.SetDrawable(d)

	w.Destroy()

	assert.Equal(t, 1, d.disposed)
	assert.True(t, s.destroyed)
	assert.True(t, w.Closed())
}
