package loop

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

// steppingClock is a mock clock whose Sleep advances virtual time instead of
// blocking, so a single goroutine can run the loop through simulated seconds.
type steppingClock struct {
	*clock.Mock
}

func newSteppingClock() steppingClock {
	return steppingClock{clock.NewMock()}
}

func (c steppingClock) Sleep(d time.Duration) {
	c.Add(d)
}

type fakeSurface struct {
	width, height int
	ops           int
	presents      int
	rects         []image.Rectangle
}

func (s *fakeSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *fakeSurface) SetColor(color.Color) { s.ops++ }

func (s *fakeSurface) Clear() { s.ops++ }

func (s *fakeSurface) FillRect(r image.Rectangle) {
	s.ops++
	s.rects = append(s.rects, r)
}

func (s *fakeSurface) DrawText(string, int, int) { s.ops++ }

func (s *fakeSurface) Present() {
	s.ops++
	s.presents++
}

// scriptedInput serves one batch of events per loop iteration. before runs on
// the first poll of each batch. Once the batches run out every poll yields a
// quit event.
type scriptedInput struct {
	batches [][]Event
	before  func(batch int)

	batch   int
	pos     int
	started bool
	polls   int
}

func (in *scriptedInput) Poll() (Event, bool) {
	in.polls++
	if in.batch >= len(in.batches) {
		return Event{Type: EventQuit}, true
	}
	if !in.started {
		in.started = true
		if in.before != nil {
			in.before(in.batch)
		}
	}
	if b := in.batches[in.batch]; in.pos < len(b) {
		ev := b[in.pos]
		in.pos++
		return ev, true
	}
	in.batch++
	in.pos = 0
	in.started = false
	return Event{}, false
}

// quitAfter yields nothing until the clock passes end, then quits.
type quitAfter struct {
	clock clock.Clock
	end   time.Time
	polls int
}

func (in *quitAfter) Poll() (Event, bool) {
	in.polls++
	if in.clock.Now().After(in.end) {
		return Event{Type: EventQuit}, true
	}
	return Event{}, false
}

type fakePlatform struct {
	surface   Surface
	input     InputSource
	windowErr error
	inputErr  error

	title         string
	width, height uint
	windows       int
	inputs        int
}

func (p *fakePlatform) CreateWindow(title string, width, height uint) (Surface, error) {
	p.windows++
	p.title, p.width, p.height = title, width, height
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	return p.surface, nil
}

func (p *fakePlatform) CreateInputSource() (InputSource, error) {
	p.inputs++
	if p.inputErr != nil {
		return nil, p.inputErr
	}
	return p.input, nil
}

func newTestEngine[S any](t *testing.T, input InputSource, c steppingClock) (*Engine[S], *fakeSurface) {
	t.Helper()
	surface := &fakeSurface{width: DefaultWidth, height: DefaultHeight}
	e, err := New[S](&fakePlatform{surface: surface, input: input}, nil)
	require.NoError(t, err)
	e.WithClock(c).WithIdleSleep(5 * time.Millisecond)
	return e, surface
}
