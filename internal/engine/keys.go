package engine

// Key is a keyboard key. Values match the GLFW key tokens so backends can
// convert with a plain cast.
type Key int

// Action is the state change reported with a key or mouse button event.
type Action int

// ModifierKey is a bit set of modifier keys held during an event.
type ModifierKey int

// MouseButton identifies a mouse button.
type MouseButton int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

const (
	KeyUnknown    Key = -1
	KeySpace      Key = 32
	KeyApostrophe Key = 39
	KeyComma      Key = 44
	KeyMinus      Key = 45
	KeyPeriod     Key = 46
	KeySlash      Key = 47
	Key0          Key = 48
	Key1          Key = 49
	Key2          Key = 50
	Key3          Key = 51
	Key4          Key = 52
	Key5          Key = 53
	Key6          Key = 54
	Key7          Key = 55
	Key8          Key = 56
	Key9          Key = 57
	KeySemicolon  Key = 59
	KeyEqual      Key = 61
	KeyA          Key = 65
	KeyB          Key = 66
	KeyC          Key = 67
	KeyD          Key = 68
	KeyE          Key = 69
	KeyF          Key = 70
	KeyG          Key = 71
	KeyH          Key = 72
	KeyI          Key = 73
	KeyJ          Key = 74
	KeyK          Key = 75
	KeyL          Key = 76
	KeyM          Key = 77
	KeyN          Key = 78
	KeyO          Key = 79
	KeyP          Key = 80
	KeyQ          Key = 81
	KeyR          Key = 82
	KeyS          Key = 83
	KeyT          Key = 84
	KeyU          Key = 85
	KeyV          Key = 86
	KeyW          Key = 87
	KeyX          Key = 88
	KeyY          Key = 89
	KeyZ          Key = 90

	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyInsert    Key = 260
	KeyDelete    Key = 261
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyPageUp    Key = 266
	KeyPageDown  Key = 267
	KeyHome      Key = 268
	KeyEnd       Key = 269

	KeyF1  Key = 290
	KeyF2  Key = 291
	KeyF3  Key = 292
	KeyF4  Key = 293
	KeyF5  Key = 294
	KeyF12 Key = 301

	KeyKPSubtract Key = 333
	KeyKPAdd      Key = 334

	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
)

// CancelKey closes the window when pressed. It is checked before any key
// callback.
const CancelKey = KeyEscape
