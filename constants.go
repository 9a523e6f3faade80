package loop

import "time"

const (
	DefaultTitle  = "My Game"
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultFPS    = 60
	DefaultTPS    = 20

	// DefaultIdleSleep bounds how long an iteration in which neither a tick
	// nor a frame fired yields before polling input again.
	DefaultIdleSleep = time.Millisecond
)

type Status int

const (
	StatusConfigured Status = iota
	StatusRunning
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusConfigured:
		return "configured"
	case StatusRunning:
		return "running"
	case StatusStopped:
		return "stopped"
	}
	return "unknown"
}
