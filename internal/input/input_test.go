package input

import (
	"testing"

	"engine2d/internal/engine"

	"github.com/stretchr/testify/assert"
)

func TestEdgeDetection(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(engine.KeyLeft, 0, engine.Press, 0)
	assert.True(t, im.IsActive(ActionRotateLeft))
	assert.True(t, im.JustPressed(ActionRotateLeft))

	im.PostUpdate()
	im.HandleKeyEvent(engine.KeyLeft, 0, engine.Repeat, 0)
	assert.True(t, im.IsActive(ActionRotateLeft))
	assert.False(t, im.JustPressed(ActionRotateLeft), "repeat is not a new press")

	im.HandleKeyEvent(engine.KeyLeft, 0, engine.Release, 0)
	assert.False(t, im.IsActive(ActionRotateLeft))
	assert.True(t, im.JustReleased(ActionRotateLeft))

	im.PostUpdate()
	assert.False(t, im.JustReleased(ActionRotateLeft))
}

func TestMultipleKeysShareAction(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(engine.KeyW, 0, engine.Press, 0)
	assert.True(t, im.IsActive(ActionRotateUp))

	im.UnbindKey(engine.KeyUp)
	im.HandleKeyEvent(engine.KeyUp, 0, engine.Release, 0)
	assert.True(t, im.IsActive(ActionRotateUp), "unbound key no longer affects the action")
}

func TestCancelKeyCannotBeBound(t *testing.T) {
	im := NewInputManager()
	im.BindKey(engine.CancelKey, ActionResetView)
	im.HandleKeyEvent(engine.CancelKey, 0, engine.Press, 0)
	assert.False(t, im.IsActive(ActionResetView))
}

func TestInvalidActions(t *testing.T) {
	im := NewInputManager()
	im.BindKey(engine.KeyZ, ActionCount)
	assert.False(t, im.IsActive(ActionCount))
	assert.False(t, im.JustPressed(-1))
	assert.False(t, im.JustReleased(ActionCount))
}
