package loop

import "time"

// LoopData describes the tick or frame being handled.
type LoopData struct {
	// Time at which the phase fired.
	Time time.Time
	// Frame is the 1-based count of invocations of this phase.
	Frame int64
	// Delta is the number of seconds since the phase last fired.
	Delta float64
}

type phase struct {
	interval time.Duration
	previous time.Time
	count    int64
}

// due fires the phase if its interval has elapsed at t. A late phase fires
// once and restarts its interval from t; missed intervals are not replayed.
func (p *phase) due(t time.Time) (LoopData, bool) {
	if t.Before(p.previous.Add(p.interval)) {
		return LoopData{}, false
	}
	p.count++
	ld := LoopData{
		Time:  t,
		Frame: p.count,
		Delta: t.Sub(p.previous).Seconds(),
	}
	p.previous = t
	return ld, true
}

func (p *phase) deadline() time.Time {
	return p.previous.Add(p.interval)
}

// Run drives the loop until a quit event or an Escape key press is polled.
// It fails without touching the surface or input source if the frame or tick
// rate is zero. An engine runs at most once.
func (e *Engine[S]) Run() error {
	switch e.status {
	case StatusRunning:
		return ErrRunning
	case StatusStopped:
		return ErrStopped
	}
	if err := e.config.Validate(); err != nil {
		return err
	}

	e.status = StatusRunning
	defer func() { e.status = StatusStopped }()

	now := e.clock.Now()
	tick := phase{interval: e.config.TickInterval(), previous: now}
	frame := phase{interval: e.config.FrameInterval(), previous: now}

	e.logger.Debug().
		Str("title", e.config.Title).
		Uint("fps", e.config.FramesPerSecond).
		Uint("tps", e.config.TicksPerSecond).
		Dur("frame_interval", frame.interval).
		Dur("tick_interval", tick.interval).
		Msg("loop started")

	for {
		if ev, quit := e.drainInput(); quit {
			e.logger.Debug().
				Stringer("reason", ev).
				Int64("ticks", tick.count).
				Int64("frames", frame.count).
				Msg("loop stopped")
			return nil
		}

		t := e.clock.Now()
		fired := false

		if ld, ok := tick.due(t); ok {
			fired = true
			if e.onTick != nil {
				e.onTick(ld, e.state)
			}
		}

		if ld, ok := frame.due(t); ok {
			fired = true
			if e.onRender != nil {
				e.onRender(e.surface, ld, e.state)
			}
		}

		if !fired {
			e.idle(t, tick.deadline(), frame.deadline())
		}
	}
}

// drainInput dispatches every queued event in arrival order. It stops at the
// first terminal event, leaving anything queued behind it unread.
func (e *Engine[S]) drainInput() (Event, bool) {
	for {
		ev, ok := e.input.Poll()
		if !ok {
			return Event{}, false
		}

		class := Classify(ev)
		switch {
		case class.Terminal():
			return ev, true
		case class.Keyboard():
			if e.onKeyboard != nil {
				e.onKeyboard(ev, e.state)
			}
		case class.Mouse():
			if e.onMouse != nil {
				e.onMouse(ev, e.state)
			}
		}
	}
}

func (e *Engine[S]) idle(t, nextTick, nextFrame time.Time) {
	if e.idleSleep <= 0 {
		return
	}
	next := nextTick
	if nextFrame.Before(next) {
		next = nextFrame
	}
	d := next.Sub(t)
	if d > e.idleSleep {
		d = e.idleSleep
	}
	if d > 0 {
		e.clock.Sleep(d)
	}
}
