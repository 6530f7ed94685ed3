// Package fbp implements filtered back-projection reconstruction as a
// configurable 2-D algorithm. It resolves a named filter kernel, validates
// the configuration and drives an engine that performs the filtering and
// back-projection math. The engine is bound lazily on the first run.
package fbp

import (
	"fmt"

	"github.com/cwbudde/algo-tomo/tomo/config"
	"github.com/cwbudde/algo-tomo/tomo/data"
	"github.com/cwbudde/algo-tomo/tomo/engine"
	"github.com/cwbudde/algo-tomo/tomo/filter"
	"github.com/cwbudde/algo-tomo/tomo/recon"
)

// Type is the registry tag under which the algorithm is registered.
const Type = "FBP"

// unsetParameter is the sentinel for "use the filter kind's default".
const unsetParameter = -1.0

func init() {
	recon.Default().MustRegister(Type, func() recon.Algorithm { return New() })
}

// FBP orchestrates one filtered back-projection reconstruction. Instances
// are not safe for concurrent use; see package recon for the lifecycle
// contract.
type FBP struct {
	recon.Base2D

	kind      filter.Kind
	parameter float64
	d         float64
	shortScan bool
	coeffs    *filter.Coefficients

	eng         engine.Engine
	configured  bool
	engineBound bool
	warnings    []string
}

// New returns an unconfigured FBP instance with default state: no filter,
// parameter unset, D = 1, short-scan off.
func New() *FBP {
	a := &FBP{}
	a.reset()

	return a
}

// Option adjusts the programmatic initialization path.
type Option func(*initOptions)

type initOptions struct {
	deviceIndex int
	parameter   float64
	coeffs      []float64
	width       int
}

// WithDeviceIndex selects the device; -1 means backend default.
func WithDeviceIndex(index int) Option {
	return func(o *initOptions) { o.deviceIndex = index }
}

// WithFilterParameter sets the filter scalar parameter.
func WithFilterParameter(p float64) Option {
	return func(o *initOptions) { o.parameter = p }
}

// WithCoefficients supplies raw filter coefficient data with its row width.
// Required for custom-data filter kinds.
func WithCoefficients(values []float64, width int) Option {
	return func(o *initOptions) {
		o.coeffs = values
		o.width = width
	}
}

// InitializeFrom configures the instance from a declarative configuration
// node. Reconfiguration is idempotent: all prior state is fully cleared
// first, including leftovers of a failed initialization attempt. On success
// the engine handle exists but is not yet bound; binding happens lazily on
// the first Run.
func (a *FBP) InitializeFrom(node *config.Node, mgr *data.Manager) error {
	a.Clear()

	err := a.Base2D.InitializeFrom(node, mgr)
	if err != nil {
		return err
	}

	name := node.OptionString("FilterType", "ram-lak")

	a.kind, err = filter.ParseKind(name)
	if err != nil {
		// Soft degradation: unknown names fall back to no filtering.
		a.warn(err)
	}

	if id, ok := node.Int("FilterSinogramId"); ok {
		err = a.loadFilterSinogram(mgr, id)
		if err != nil {
			return err
		}
	}

	a.parameter = node.OptionFloat("FilterParameter", unsetParameter)
	a.d = node.OptionFloat("FilterD", 1.0)

	// ShortScan only applies to fan-beam flat-detector acquisitions; for
	// other geometries the field is not consulted at all.
	if a.Projections != nil && a.Projections.Geometry().SupportsShortScan() {
		a.shortScan = node.OptionBool("ShortScan", false)
	}

	err = a.check()
	if err != nil {
		return err
	}

	return a.createEngine()
}

// Initialize configures the instance programmatically. The geometry is
// never inspected on this path and short-scan stays off. For custom-data
// kinds the copied coefficient length is the supplied width, except for
// angle-indexed kinds where it is the projection dataset's angle count.
func (a *FBP) Initialize(proj *data.Projections, vol *data.Volume, kind filter.Kind, opts ...Option) error {
	a.Clear()

	o := initOptions{deviceIndex: 0, parameter: unsetParameter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	a.Projections = proj
	a.Reconstruction = vol
	a.DeviceIndex = o.deviceIndex
	a.kind = kind
	a.shortScan = false
	a.parameter = o.parameter

	if o.coeffs != nil {
		n := o.width
		if kind.AngleIndexed() && proj != nil {
			n = proj.AngleCount()
		}

		coeffs, err := filter.CopyCoefficients(o.coeffs, o.width, n)
		if err != nil {
			return fmt.Errorf("fbp: filter coefficients: %w", err)
		}

		a.replaceCoefficients(coeffs)
	}

	err := a.check()
	if err != nil {
		return err
	}

	return a.createEngine()
}

// Run executes the reconstruction. The first run binds the engine: filter
// configuration failure is fatal, short-scan configuration failure is
// recorded as a warning and execution proceeds without the weighting.
func (a *FBP) Run() error {
	if !a.configured || a.eng == nil {
		return ErrNotConfigured
	}

	if !a.engineBound {
		err := a.bindEngine()
		if err != nil {
			return err
		}
	}

	err := a.eng.UploadProjections(a.Projections)
	if err != nil {
		return fmt.Errorf("fbp: upload projections: %w", err)
	}

	err = a.eng.Run()
	if err != nil {
		return fmt.Errorf("fbp: engine run: %w", err)
	}

	err = a.eng.DownloadVolume(a.Reconstruction)
	if err != nil {
		return fmt.Errorf("fbp: download volume: %w", err)
	}

	return nil
}

// Clear releases the owned coefficient buffer and the engine handle and
// returns the instance to its unconfigured defaults. Safe to call any
// number of times.
func (a *FBP) Clear() {
	a.replaceCoefficients(nil)

	if a.eng != nil {
		_ = a.eng.Close()
		a.eng = nil
	}

	a.Base2D.Clear()
	a.reset()
}

// Configured reports whether validation has passed since the last clear.
func (a *FBP) Configured() bool { return a.configured }

// FilterKind returns the resolved filter kind.
func (a *FBP) FilterKind() filter.Kind { return a.kind }

// Coefficients exposes the owned coefficient buffer, or nil.
func (a *FBP) Coefficients() *filter.Coefficients { return a.coeffs }

// ShortScan reports whether short-scan weighting is requested.
func (a *FBP) ShortScan() bool { return a.shortScan }

// Warnings returns the soft-degradation diagnostics recorded since the
// last clear, oldest first.
func (a *FBP) Warnings() []string {
	return append([]string(nil), a.warnings...)
}

// check validates the preconditions that keep engine execution correct.
// Success marks the instance configured; any violation leaves it not-ready.
func (a *FBP) check() error {
	a.configured = false

	if a.Projections == nil || !a.Projections.Initialized() {
		return ErrProjectionData
	}

	if a.Reconstruction == nil || !a.Reconstruction.Initialized() {
		return ErrReconstructionData
	}

	if a.kind.CustomData() && a.coeffs == nil {
		return ErrFilterCoefficients
	}

	if a.DeviceIndex < -1 {
		return ErrDeviceIndex
	}

	if a.Supersampling < 0 {
		return ErrSupersampling
	}

	a.configured = true

	return nil
}

func (a *FBP) createEngine() error {
	eng, err := engine.NewEngine(a.DeviceIndex)
	if err != nil {
		a.configured = false

		return fmt.Errorf("fbp: create engine: %w", err)
	}

	a.eng = eng
	a.engineBound = false

	return nil
}

func (a *FBP) bindEngine() error {
	err := a.eng.Setup(a.Projections, a.Reconstruction, a.DeviceIndex, a.Supersampling)
	if err != nil {
		return fmt.Errorf("fbp: engine setup: %w", err)
	}

	err = a.eng.SetFilter(a.kind, a.coeffs.Values(), a.coeffs.Width(), a.d, a.parameter)
	if err != nil {
		// An unset or malformed filter makes reconstruction meaningless.
		return fmt.Errorf("fbp: set filter: %w", err)
	}

	err = a.eng.SetShortScan(a.shortScan)
	if err != nil {
		// Accuracy refinement only; proceed without the weighting.
		a.warn(fmt.Errorf("fbp: set short-scan: %w", err))
	}

	a.engineBound = true

	return nil
}

// replaceCoefficients releases any previously owned buffer before taking
// ownership of the new one.
func (a *FBP) replaceCoefficients(c *filter.Coefficients) {
	if a.coeffs != nil {
		a.coeffs.Release()
	}

	a.coeffs = c
}

func (a *FBP) loadFilterSinogram(mgr *data.Manager, id int) error {
	src, err := mgr.Projections(id)
	if err != nil {
		return fmt.Errorf("fbp: FilterSinogramId: %w", err)
	}

	n := src.DetectorCount() * src.AngleCount()

	coeffs, err := filter.CopyCoefficients(src.Values(), src.DetectorCount(), n)
	if err != nil {
		return fmt.Errorf("fbp: FilterSinogramId: %w", err)
	}

	a.replaceCoefficients(coeffs)

	return nil
}

func (a *FBP) reset() {
	a.kind = filter.None
	a.parameter = unsetParameter
	a.d = 1.0
	a.shortScan = false
	a.configured = false
	a.engineBound = false
	a.warnings = nil
	a.DeviceIndex = -1
}

func (a *FBP) warn(err error) {
	a.warnings = append(a.warnings, err.Error())
}
