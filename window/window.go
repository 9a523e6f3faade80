// Package window provides an ebiten-backed surface and input source for the
// loop engine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	loop "github.com/rhpo/loop.go"
)

var (
	ErrWindowExists = errors.New("window: window already created")
	ErrNoWindow     = errors.New("window: no window created")
	ErrInvalidSize  = errors.New("window: width and height must be positive")
)

const DefaultInputRate = 120

var (
	_ loop.Platform    = (*Window)(nil)
	_ loop.Surface     = (*Window)(nil)
	_ loop.InputSource = (*Window)(nil)
)

type Props struct {
	Background color.Color
	Font       font.Face
	// InputRate is how many times per second ebiten samples input.
	InputRate int
	Resizable bool
	Logger    *zerolog.Logger
}

// Window is a loop.Platform whose surface and input source are the window
// itself. Drawing and polling happen on the engine goroutine, ebiten runs on
// the main goroutine; the two meet at the presented draw list and the event
// queue.
type Window struct {
	props  Props
	logger zerolog.Logger

	title         string
	width, height int
	created       bool

	// engine goroutine only
	color color.Color
	back  []drawCommand

	drawMutex sync.Mutex
	front     []drawCommand

	events      []loop.Event
	eventsMutex sync.Mutex

	// ebiten goroutine only
	mouseX, mouseY int
	mouseKnown     bool
	focused        bool
	outsideW       int
	outsideH       int
	closeRequested bool

	closeOnce sync.Once
	done      chan struct{}
}

func New(props *Props) *Window {
	if props == nil {
		props = &Props{}
	}

	p := *props
	if p.Background == nil {
		p.Background = color.RGBA{0, 0, 0, 255}
	}
	if p.Font == nil {
		p.Font = basicfont.Face7x13
	}
	if p.InputRate <= 0 {
		p.InputRate = DefaultInputRate
	}

	logger := zerolog.Nop()
	if p.Logger != nil {
		logger = *p.Logger
	}

	return &Window{
		props:   p,
		logger:  logger.With().Str("component", "window").Logger(),
		color:   color.RGBA{255, 255, 255, 255},
		focused: true,
		done:    make(chan struct{}),
	}
}

func (w *Window) CreateWindow(title string, width, height uint) (loop.Surface, error) {
	if w.created {
		return nil, ErrWindowExists
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}

	w.title = title
	w.width = int(width)
	w.height = int(height)
	w.created = true

	w.logger.Debug().
		Str("title", title).
		Int("width", w.width).
		Int("height", w.height).
		Msg("window created")
	return w, nil
}

func (w *Window) CreateInputSource() (loop.InputSource, error) {
	if !w.created {
		return nil, fmt.Errorf("%w: create the window before its input source", ErrNoWindow)
	}
	return w, nil
}

func (w *Window) Title() string {
	return w.title
}

// Close makes the ebiten loop terminate on its next update. It is safe to call
// more than once and from any goroutine.
func (w *Window) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
	})
}

func (w *Window) closed() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}
