package input

import (
	"engine2d/internal/engine"
)

// Action represents a logical control, not a physical key
type Action int

// Action constants using iota
const (
	ActionRotateLeft Action = iota
	ActionRotateRight
	ActionRotateUp
	ActionRotateDown
	ActionZoomIn
	ActionZoomOut
	ActionResetView
	ActionToggleSpin
	ActionCount // Sentinel value for array sizing
)

// InputManager tracks held and just-pressed state of logical actions. It is
// fed by window key callbacks and read by a Drawable during Draw, all on the
// loop thread.
type InputManager struct {
	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[engine.Key][]Action

	currentState [ActionCount]bool

	// Just pressed/released flags (reset by PostUpdate)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[engine.Key][]Action),
	}

	im.BindKey(engine.KeyLeft, ActionRotateLeft)
	im.BindKey(engine.KeyA, ActionRotateLeft)
	im.BindKey(engine.KeyRight, ActionRotateRight)
	im.BindKey(engine.KeyD, ActionRotateRight)
	im.BindKey(engine.KeyUp, ActionRotateUp)
	im.BindKey(engine.KeyW, ActionRotateUp)
	im.BindKey(engine.KeyDown, ActionRotateDown)
	im.BindKey(engine.KeyS, ActionRotateDown)
	im.BindKey(engine.KeyEqual, ActionZoomIn)
	im.BindKey(engine.KeyKPAdd, ActionZoomIn)
	im.BindKey(engine.KeyMinus, ActionZoomOut)
	im.BindKey(engine.KeyKPSubtract, ActionZoomOut)
	im.BindKey(engine.KeyR, ActionResetView)
	im.BindKey(engine.KeySpace, ActionToggleSpin)

	return im
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key engine.Key, action Action) {
	if action < 0 || action >= ActionCount || key == engine.CancelKey {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key engine.Key) {
	delete(im.keyToActions, key)
}

// Attach registers a key callback on w for every bound key. Call it again
// after changing bindings.
func (im *InputManager) Attach(w *engine.Window) {
	for key := range im.keyToActions {
		w.SetKeyCallback(key, im.HandleKeyEvent)
	}
}

// HandleKeyEvent processes a key event and updates internal state. Its
// signature matches engine.KeyCallback.
func (im *InputManager) HandleKeyEvent(key engine.Key, _ int, action engine.Action, _ engine.ModifierKey) {
	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == engine.Press || action == engine.Repeat
	for _, act := range actions {
		// Detect edges immediately when the event arrives
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// PostUpdate clears the edge flags. Call it once per frame after all
// input checks.
func (im *InputManager) PostUpdate() {
	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed since the last PostUpdate
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justPressed[action]
}

// JustReleased returns true only if the action was released since the last PostUpdate
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justReleased[action]
}
