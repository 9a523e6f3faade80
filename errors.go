package loop

import "errors"

var (
	// ErrConfiguration is returned by Run when the frame or tick rate is zero.
	ErrConfiguration = errors.New("loop: invalid configuration")

	// ErrPlatformInit wraps a failure to create the surface or the input source.
	ErrPlatformInit = errors.New("loop: platform initialization failed")

	ErrRunning = errors.New("loop: engine is already running")
	ErrStopped = errors.New("loop: engine has stopped")
)
