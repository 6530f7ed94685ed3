package engine

import "errors"

var (
	// ErrNoBackend is returned when no engine backend is registered.
	ErrNoBackend = errors.New("tomo/engine: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but
	// cannot run on this system (no device, driver missing).
	ErrBackendUnavailable = errors.New("tomo/engine: backend unavailable")

	// ErrNotSetup is returned when a call arrives before Setup.
	ErrNotSetup = errors.New("tomo/engine: engine not set up")

	// ErrClosed is returned for calls on a closed engine.
	ErrClosed = errors.New("tomo/engine: engine closed")
)
