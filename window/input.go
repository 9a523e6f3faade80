package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	loop "github.com/rhpo/loop.go"
)

var mouseButtons = []struct {
	eb  ebiten.MouseButton
	btn loop.MouseButton
}{
	{ebiten.MouseButtonLeft, loop.MouseButtonLeft},
	{ebiten.MouseButtonRight, loop.MouseButtonRight},
	{ebiten.MouseButtonMiddle, loop.MouseButtonMiddle},
}

// sample is the input state ebiten reports for one update.
type sample struct {
	closing bool
	focused bool

	keysDown []loop.Key
	keysUp   []loop.Key

	cursorX, cursorY int
	buttonsDown      []loop.MouseButton
	buttonsUp        []loop.MouseButton
	wheelX, wheelY   float64
}

func readSample() sample {
	s := sample{
		closing: ebiten.IsWindowBeingClosed(),
		focused: ebiten.IsFocused(),
	}

	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if inpututil.IsKeyJustPressed(k) {
			s.keysDown = append(s.keysDown, keyName(k))
		}
		if inpututil.IsKeyJustReleased(k) {
			s.keysUp = append(s.keysUp, keyName(k))
		}
	}

	s.cursorX, s.cursorY = ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			s.buttonsDown = append(s.buttonsDown, b.btn)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			s.buttonsUp = append(s.buttonsUp, b.btn)
		}
	}
	s.wheelX, s.wheelY = ebiten.Wheel()

	return s
}

func keyName(k ebiten.Key) loop.Key {
	return loop.Key(k.String())
}

// apply turns the difference between s and the previous sample into events.
func (w *Window) apply(s sample) {
	var events []loop.Event

	if s.focused != w.focused {
		w.focused = s.focused
		if s.focused {
			events = append(events, loop.Event{Type: loop.EventFocus})
		} else {
			events = append(events, loop.Event{Type: loop.EventBlur})
		}
	}

	for _, k := range s.keysDown {
		events = append(events, loop.Event{Type: loop.EventKeyDown, Key: k})
	}
	for _, k := range s.keysUp {
		events = append(events, loop.Event{Type: loop.EventKeyUp, Key: k})
	}

	x, y := float64(s.cursorX), float64(s.cursorY)
	if !w.mouseKnown || s.cursorX != w.mouseX || s.cursorY != w.mouseY {
		if w.mouseKnown {
			events = append(events, loop.Event{Type: loop.EventMouseMove, X: x, Y: y})
		}
		w.mouseX, w.mouseY = s.cursorX, s.cursorY
		w.mouseKnown = true
	}
	for _, b := range s.buttonsDown {
		events = append(events, loop.Event{Type: loop.EventMouseDown, Button: b, X: x, Y: y})
	}
	for _, b := range s.buttonsUp {
		events = append(events, loop.Event{Type: loop.EventMouseUp, Button: b, X: x, Y: y})
	}
	if s.wheelX != 0 || s.wheelY != 0 {
		events = append(events, loop.Event{Type: loop.EventMouseWheel, X: x, Y: y, DX: s.wheelX, DY: s.wheelY})
	}

	if s.closing && !w.closeRequested {
		w.closeRequested = true
		w.logger.Debug().Msg("close requested")
		events = append(events, loop.Event{Type: loop.EventQuit})
	}

	w.push(events...)
}

func (w *Window) push(events ...loop.Event) {
	if len(events) == 0 {
		return
	}
	w.eventsMutex.Lock()
	defer w.eventsMutex.Unlock()
	w.events = append(w.events, events...)
}

// Poll pops the oldest queued event. It never blocks.
func (w *Window) Poll() (loop.Event, bool) {
	w.eventsMutex.Lock()
	defer w.eventsMutex.Unlock()

	if len(w.events) == 0 {
		return loop.Event{}, false
	}
	ev := w.events[0]
	w.events = w.events[1:]
	if len(w.events) == 0 {
		w.events = nil
	}
	return ev, true
}
