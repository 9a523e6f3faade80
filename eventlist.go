package loop

type EventType string

const (
	EventQuit       EventType = "quit"
	EventKeyDown    EventType = "keydown"
	EventKeyUp      EventType = "keyup"
	EventMouseDown  EventType = "mousedown"
	EventMouseUp    EventType = "mouseup"
	EventMouseMove  EventType = "mousemove"
	EventMouseWheel EventType = "mousewheel"

	// Never routed to a handler.
	EventResize EventType = "resize"
	EventFocus  EventType = "focus"
	EventBlur   EventType = "blur"
)

// Key is a platform key name, e.g. "Escape", "A" or "ArrowUp".
type Key string

const (
	KeyEscape     Key = "Escape"
	KeySpace      Key = "Space"
	KeyEnter      Key = "Enter"
	KeyW          Key = "W"
	KeyA          Key = "A"
	KeyS          Key = "S"
	KeyD          Key = "D"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)
