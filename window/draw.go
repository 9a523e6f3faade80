package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

type drawOp int

const (
	opClear drawOp = iota
	opRect
	opText
)

type drawCommand struct {
	op    drawOp
	color color.Color
	rect  image.Rectangle
	text  string
	x, y  int
}

func (c drawCommand) draw(dst *ebiten.Image, face font.Face) {
	switch c.op {
	case opClear:
		dst.Fill(c.color)
	case opRect:
		r := c.rect
		vector.DrawFilledRect(dst,
			float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()),
			c.color, false)
	case opText:
		text.Draw(dst, c.text, face, c.x, c.y, c.color)
	}
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

func (w *Window) SetColor(c color.Color) {
	if c == nil {
		c = color.RGBA{255, 255, 255, 255}
	}
	w.color = c
}

func (w *Window) Clear() {
	// Everything drawn before a clear is hidden by it.
	w.back = append(w.back[:0], drawCommand{op: opClear, color: w.color})
}

// FillRect fills r, clipped to the window, with the current color.
func (w *Window) FillRect(r image.Rectangle) {
	r = r.Canon().Intersect(image.Rect(0, 0, w.width, w.height))
	if r.Empty() {
		return
	}
	w.back = append(w.back, drawCommand{op: opRect, color: w.color, rect: r})
}

// DrawText draws s with its baseline starting at (x, y).
func (w *Window) DrawText(s string, x, y int) {
	if s == "" {
		return
	}
	w.back = append(w.back, drawCommand{op: opText, color: w.color, text: s, x: x, y: y})
}

// Present publishes everything drawn since the previous Present. The window
// keeps showing it until the next one.
func (w *Window) Present() {
	w.drawMutex.Lock()
	w.front = w.back
	w.drawMutex.Unlock()

	w.back = make([]drawCommand, 0, len(w.front))
}

func (w *Window) presented() []drawCommand {
	w.drawMutex.Lock()
	defer w.drawMutex.Unlock()
	return w.front
}
