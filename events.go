package loop

import "fmt"

// Event is a raw input event as produced by an InputSource.
type Event struct {
	Type EventType

	// keydown, keyup
	Key Key

	// mousedown, mouseup, mousemove, mousewheel
	Button MouseButton
	X, Y   float64

	// mousewheel
	DX, DY float64

	// resize
	Width, Height int
}

func (e Event) String() string {
	switch e.Type {
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("%s(%s)", e.Type, e.Key)
	case EventMouseDown, EventMouseUp:
		return fmt.Sprintf("%s(%d @ %.0f,%.0f)", e.Type, e.Button, e.X, e.Y)
	case EventMouseMove:
		return fmt.Sprintf("%s(%.0f,%.0f)", e.Type, e.X, e.Y)
	case EventMouseWheel:
		return fmt.Sprintf("%s(%g,%g)", e.Type, e.DX, e.DY)
	case EventResize:
		return fmt.Sprintf("%s(%dx%d)", e.Type, e.Width, e.Height)
	}
	return string(e.Type)
}

// Class is the routing category of an Event.
type Class int

const (
	ClassOther Class = iota
	ClassQuit
	ClassEscapePressed
	ClassKeyDown
	ClassKeyUp
	ClassMouseButtonDown
	ClassMouseButtonUp
	ClassMouseMove
	ClassMouseWheel
)

var classNames = [...]string{
	ClassOther:           "other",
	ClassQuit:            "quit",
	ClassEscapePressed:   "escape",
	ClassKeyDown:         "keydown",
	ClassKeyUp:           "keyup",
	ClassMouseButtonDown: "mousedown",
	ClassMouseButtonUp:   "mouseup",
	ClassMouseMove:       "mousemove",
	ClassMouseWheel:      "mousewheel",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Classify maps an event to exactly one Class. Escape only stops the loop on
// key down; its release is an ordinary key up.
func Classify(ev Event) Class {
	switch ev.Type {
	case EventQuit:
		return ClassQuit
	case EventKeyDown:
		if ev.Key == KeyEscape {
			return ClassEscapePressed
		}
		return ClassKeyDown
	case EventKeyUp:
		return ClassKeyUp
	case EventMouseDown:
		return ClassMouseButtonDown
	case EventMouseUp:
		return ClassMouseButtonUp
	case EventMouseMove:
		return ClassMouseMove
	case EventMouseWheel:
		return ClassMouseWheel
	}
	return ClassOther
}

// Terminal reports whether the class stops the loop.
func (c Class) Terminal() bool {
	return c == ClassQuit || c == ClassEscapePressed
}

// Keyboard reports whether the class is routed to the keyboard handler.
func (c Class) Keyboard() bool {
	return c == ClassKeyDown || c == ClassKeyUp
}

// Mouse reports whether the class is routed to the mouse handler.
func (c Class) Mouse() bool {
	switch c {
	case ClassMouseButtonDown, ClassMouseButtonUp, ClassMouseMove, ClassMouseWheel:
		return true
	}
	return false
}
