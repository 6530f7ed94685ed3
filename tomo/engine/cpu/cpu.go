// Package cpu provides a host-memory reference engine implementing the full
// FBP pipeline: frequency-domain filtering of the projection rows followed
// by back-projection, for parallel and fan-beam flat-detector geometries.
// It exists so reconstructions run end to end without device hardware; a
// device-resident backend can replace it through the engine registry.
package cpu

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tomo/tomo/data"
	"github.com/cwbudde/algo-tomo/tomo/engine"
	"github.com/cwbudde/algo-tomo/tomo/filter"
	"github.com/cwbudde/algo-tomo/tomo/geometry"
)

var (
	errDeviceIndex     = errors.New("cpu backend: device index out of range")
	errNilDatasets     = errors.New("cpu engine: projection and volume datasets are required")
	errNotUploaded     = errors.New("cpu engine: projections not uploaded")
	errNoFilter        = errors.New("cpu engine: filter not configured")
	errNoCoefficients  = errors.New("cpu engine: custom filter kind without coefficient data")
	errShortScanGeom   = errors.New("cpu engine: short-scan requires fan-beam flat-detector geometry")
	errCoefficientSize = errors.New("cpu engine: coefficient data does not match filter domain")
)

// Backend creates host-memory engines. The only valid device indices are
// -1 (default) and 0.
type Backend struct{}

func (Backend) Name() string    { return "cpu" }
func (Backend) Available() bool { return true }

func (Backend) NewEngine(deviceIndex int) (engine.Engine, error) {
	if deviceIndex > 0 {
		return nil, fmt.Errorf("%w: %d", errDeviceIndex, deviceIndex)
	}

	return &Engine{d: 1, parameter: -1}, nil
}

// Register installs the CPU backend as the process-wide engine backend.
func Register() {
	engine.RegisterBackend(Backend{})
}

// Engine is one host-memory reconstruction engine instance.
type Engine struct {
	geom          geometry.Geometry
	vol           *data.Volume
	supersampling int

	kind      filter.Kind
	coeffs    []float64
	width     int
	d         float64
	parameter float64
	shortScan bool

	sino      []float64
	setup     bool
	filterSet bool
	closed    bool
}

func (e *Engine) Setup(proj *data.Projections, vol *data.Volume, deviceIndex, supersampling int) error {
	if e.closed {
		return engine.ErrClosed
	}

	if proj == nil || vol == nil {
		return errNilDatasets
	}

	e.geom = proj.Geometry()
	e.vol = vol
	e.supersampling = supersampling
	e.setup = true

	return nil
}

func (e *Engine) SetFilter(kind filter.Kind, coeffs []float64, width int, d, parameter float64) error {
	if e.closed {
		return engine.ErrClosed
	}

	if !e.setup {
		return engine.ErrNotSetup
	}

	if kind.CustomData() {
		if len(coeffs) == 0 {
			return errNoCoefficients
		}

		if !kind.AngleIndexed() && width <= 0 {
			return fmt.Errorf("%w: width %d", errCoefficientSize, width)
		}

		if kind.AngleIndexed() && len(coeffs) < e.geom.AngleCount() {
			return fmt.Errorf("%w: %d values for %d angles",
				errCoefficientSize, len(coeffs), e.geom.AngleCount())
		}
	}

	e.kind = kind
	e.coeffs = append([]float64(nil), coeffs...)
	e.width = width
	e.d = d
	e.parameter = parameter
	e.filterSet = true

	return nil
}

func (e *Engine) SetShortScan(enabled bool) error {
	if e.closed {
		return engine.ErrClosed
	}

	if !e.setup {
		return engine.ErrNotSetup
	}

	if enabled && !e.geom.SupportsShortScan() {
		return errShortScanGeom
	}

	e.shortScan = enabled

	return nil
}

func (e *Engine) UploadProjections(proj *data.Projections) error {
	if e.closed {
		return engine.ErrClosed
	}

	if !e.setup {
		return engine.ErrNotSetup
	}

	if proj == nil || !proj.Initialized() {
		return errNilDatasets
	}

	e.sino = append(e.sino[:0], proj.Values()...)

	return nil
}

func (e *Engine) Run() error {
	if e.closed {
		return engine.ErrClosed
	}

	if !e.setup {
		return engine.ErrNotSetup
	}

	if e.sino == nil {
		return errNotUploaded
	}

	if !e.filterSet {
		return errNoFilter
	}

	filtered, err := e.filterSinogram()
	if err != nil {
		return err
	}

	return e.backproject(filtered)
}

func (e *Engine) DownloadVolume(vol *data.Volume) error {
	if e.closed {
		return engine.ErrClosed
	}

	if vol == nil || vol != e.vol {
		return errNilDatasets
	}

	// Back-projection writes into the bound volume directly; the download
	// is a synchronization point only.
	return nil
}

func (e *Engine) Close() error {
	if e.closed {
		return engine.ErrClosed
	}

	e.closed = true
	e.sino = nil
	e.coeffs = nil

	return nil
}
