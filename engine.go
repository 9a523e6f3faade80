// Package loop runs a real-time application loop: it drains input, advances
// logic at a fixed tick rate and renders at an independent frame rate, handing
// caller-owned state to each registered handler in turn.
package loop

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// Handlers receive the engine's state, or nil when none was set. The pointer
// is only valid for the duration of the call and must not be retained.
type (
	TickHandler[S any]     func(ld LoopData, state *S)
	RenderHandler[S any]   func(surface Surface, ld LoopData, state *S)
	KeyboardHandler[S any] func(ev Event, state *S)
	MouseHandler[S any]    func(ev Event, state *S)
)

type Config struct {
	Title           string
	Width           uint
	Height          uint
	FramesPerSecond uint
	TicksPerSecond  uint
}

func (c Config) Validate() error {
	if c.FramesPerSecond == 0 || c.TicksPerSecond == 0 {
		return fmt.Errorf("%w: fps=%d tps=%d, both must be positive",
			ErrConfiguration, c.FramesPerSecond, c.TicksPerSecond)
	}
	return nil
}

func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}

func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FramesPerSecond)
}

type Props struct {
	Title  string
	Width  uint
	Height uint
}

// Engine owns a surface, an input source and an optional state value of type
// S. It is configured through the With methods, then run once.
type Engine[S any] struct {
	config Config

	surface Surface
	input   InputSource

	state *S

	onTick     TickHandler[S]
	onRender   RenderHandler[S]
	onKeyboard KeyboardHandler[S]
	onMouse    MouseHandler[S]

	clock     clock.Clock
	idleSleep time.Duration
	logger    zerolog.Logger

	status Status
}

// New creates the window and input source through platform. A nil props uses
// the default title and size.
func New[S any](platform Platform, props *Props) (*Engine[S], error) {
	if props == nil {
		props = &Props{}
	}

	config := Config{
		Title:           props.Title,
		Width:           props.Width,
		Height:          props.Height,
		FramesPerSecond: DefaultFPS,
		TicksPerSecond:  DefaultTPS,
	}
	if config.Title == "" {
		config.Title = DefaultTitle
	}
	if config.Width == 0 {
		config.Width = DefaultWidth
	}
	if config.Height == 0 {
		config.Height = DefaultHeight
	}

	surface, err := platform.CreateWindow(config.Title, config.Width, config.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: create window: %w", ErrPlatformInit, err)
	}
	input, err := platform.CreateInputSource()
	if err != nil {
		return nil, fmt.Errorf("%w: create input source: %w", ErrPlatformInit, err)
	}

	return &Engine[S]{
		config:    config,
		surface:   surface,
		input:     input,
		clock:     clock.New(),
		idleSleep: DefaultIdleSleep,
		logger:    zerolog.Nop(),
		status:    StatusConfigured,
	}, nil
}

func (e *Engine[S]) Config() Config {
	return e.config
}

func (e *Engine[S]) Status() Status {
	return e.status
}

// frozen reports, and logs, an attempt to change the engine after Run began.
func (e *Engine[S]) frozen(setter string) bool {
	if e.status == StatusConfigured {
		return false
	}
	e.logger.Warn().
		Str("setter", setter).
		Stringer("status", e.status).
		Msg("configuration is frozen once the loop has started, ignoring")
	return true
}

func (e *Engine[S]) WithFramesPerSecond(fps uint) *Engine[S] {
	if !e.frozen("WithFramesPerSecond") {
		e.config.FramesPerSecond = fps
	}
	return e
}

func (e *Engine[S]) WithTicksPerSecond(tps uint) *Engine[S] {
	if !e.frozen("WithTicksPerSecond") {
		e.config.TicksPerSecond = tps
	}
	return e
}

// WithState stores the engine's own copy of state. Handlers receive a pointer
// to that copy.
func (e *Engine[S]) WithState(state S) *Engine[S] {
	if !e.frozen("WithState") {
		e.state = &state
	}
	return e
}

func (e *Engine[S]) WithTickHandler(f TickHandler[S]) *Engine[S] {
	if !e.frozen("WithTickHandler") {
		e.onTick = f
	}
	return e
}

func (e *Engine[S]) WithRenderHandler(f RenderHandler[S]) *Engine[S] {
	if !e.frozen("WithRenderHandler") {
		e.onRender = f
	}
	return e
}

func (e *Engine[S]) WithKeyboardHandler(f KeyboardHandler[S]) *Engine[S] {
	if !e.frozen("WithKeyboardHandler") {
		e.onKeyboard = f
	}
	return e
}

func (e *Engine[S]) WithMouseHandler(f MouseHandler[S]) *Engine[S] {
	if !e.frozen("WithMouseHandler") {
		e.onMouse = f
	}
	return e
}

func (e *Engine[S]) WithLogger(logger zerolog.Logger) *Engine[S] {
	if !e.frozen("WithLogger") {
		e.logger = logger
	}
	return e
}

// WithClock replaces the wall clock used for tick and frame deadlines and for
// idle sleeps.
func (e *Engine[S]) WithClock(c clock.Clock) *Engine[S] {
	if !e.frozen("WithClock") {
		e.clock = c
	}
	return e
}

// WithIdleSleep sets the longest pause taken by an iteration that fired
// neither a tick nor a frame. Zero disables pausing.
func (e *Engine[S]) WithIdleSleep(d time.Duration) *Engine[S] {
	if !e.frozen("WithIdleSleep") {
		if d < 0 {
			d = 0
		}
		e.idleSleep = d
	}
	return e
}
