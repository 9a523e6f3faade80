package loop

import (
	"image"
	"image/color"
)

// Surface is the drawing target handed to the render handler. It must not be
// retained past the handler call.
type Surface interface {
	Size() (width, height int)
	SetColor(c color.Color)
	Clear()
	FillRect(r image.Rectangle)
	DrawText(text string, x, y int)
	Present()
}

// InputSource yields queued events one at a time. Poll never blocks; it
// returns false once the queue is empty.
type InputSource interface {
	Poll() (Event, bool)
}

// Platform creates the surface and input source the engine owns.
type Platform interface {
	CreateWindow(title string, width, height uint) (Surface, error)
	CreateInputSource() (InputSource, error)
}
