package engine

// EventKind tells which fields of an Event are meaningful.
type EventKind int

const (
	EventKey EventKind = iota
	EventMouseButton
	EventScroll
	EventCursorPos
	EventFramebufferSize
)

// Event is a single input or window event queued by a Surface during
// PollEvents.
type Event struct {
	Kind EventKind

	// EventKey
	Key      Key
	Scancode int

	// EventMouseButton
	Button MouseButton

	// EventKey and EventMouseButton
	Action Action
	Mods   ModifierKey

	// EventScroll offsets, EventCursorPos position
	X, Y float64

	// EventFramebufferSize
	Width, Height int
}

// KeyCallback handles a key event for the key it was registered under.
type KeyCallback func(key Key, scancode int, action Action, mods ModifierKey)

// MouseButtonCallback handles an event for the button it was registered under.
type MouseButtonCallback func(button MouseButton, action Action, mods ModifierKey)

// ScrollCallback handles scroll wheel or trackpad offsets.
type ScrollCallback func(xoff, yoff float64)

// KeyEvent builds an EventKey.
func KeyEvent(key Key, scancode int, action Action, mods ModifierKey) Event {
	return Event{Kind: EventKey, Key: key, Scancode: scancode, Action: action, Mods: mods}
}

// MouseButtonEvent builds an EventMouseButton.
func MouseButtonEvent(button MouseButton, action Action, mods ModifierKey) Event {
	return Event{Kind: EventMouseButton, Button: button, Action: action, Mods: mods}
}

// ScrollEvent builds an EventScroll.
func ScrollEvent(xoff, yoff float64) Event {
	return Event{Kind: EventScroll, X: xoff, Y: yoff}
}
