// Package engine defines the contract between reconstruction algorithms and
// the engines that execute the numeric work, plus a process-wide backend
// registry. Engines may be device-resident; all calls are synchronous and
// any device-side asynchrony stays internal to the engine.
package engine

import (
	"sync"

	"github.com/cwbudde/algo-tomo/tomo/data"
	"github.com/cwbudde/algo-tomo/tomo/filter"
)

// Engine is one reconstruction engine instance, exclusively owned by the
// algorithm that created it. Close must be called exactly once.
type Engine interface {
	// Setup performs device and resource initialization for the given
	// datasets. It is called once, before any other configuration call.
	Setup(proj *data.Projections, vol *data.Volume, deviceIndex, supersampling int) error

	// SetFilter pushes the resolved filter configuration. coeffs is nil for
	// analytic kinds; width is the per-row element count of the
	// coefficient data.
	SetFilter(kind filter.Kind, coeffs []float64, width int, d, parameter float64) error

	// SetShortScan enables partial-rotation weighting. Engines that cannot
	// honor it return an error; callers may treat that as non-fatal.
	SetShortScan(enabled bool) error

	UploadProjections(proj *data.Projections) error
	Run() error
	DownloadVolume(vol *data.Volume) error

	Close() error
}

// Backend creates engine instances for a class of devices.
type Backend interface {
	Name() string
	Available() bool
	NewEngine(deviceIndex int) (Engine, error)
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers the process-wide backend. Passing nil clears it.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// NewEngine creates an engine on the registered backend. A device index of
// -1 selects the backend default device.
func NewEngine(deviceIndex int) (Engine, error) {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()

	if b == nil {
		return nil, ErrNoBackend
	}

	if !b.Available() {
		return nil, ErrBackendUnavailable
	}

	return b.NewEngine(deviceIndex)
}
