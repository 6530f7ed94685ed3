// Package data holds 2-D projection and volume datasets and a registry that
// resolves numeric ids to previously registered datasets.
package data

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tomo/tomo/geometry"
)

var (
	errNilGeometry   = errors.New("geometry must not be nil")
	errValueCount    = errors.New("value count does not match geometry")
	errVolumeSize    = errors.New("volume dimensions must be > 0")
	errVolumeValues  = errors.New("value count does not match volume dimensions")
	errNotRegistered = errors.New("no dataset registered under id")
	errWrongKind     = errors.New("dataset has a different kind")
)

// Projections is a 2-D projection dataset (sinogram): one row of detector
// samples per projection angle, detector index fastest.
type Projections struct {
	geom   geometry.Geometry
	values []float64
}

// NewProjections allocates a zero-filled projection dataset for the geometry.
func NewProjections(geom geometry.Geometry) (*Projections, error) {
	if geom == nil {
		return nil, fmt.Errorf("data: projections: %w", errNilGeometry)
	}

	return &Projections{
		geom:   geom,
		values: make([]float64, geom.DetectorCount()*geom.AngleCount()),
	}, nil
}

// ProjectionsFromValues copies values into a new projection dataset. The
// slice length must be detector count times angle count.
func ProjectionsFromValues(geom geometry.Geometry, values []float64) (*Projections, error) {
	p, err := NewProjections(geom)
	if err != nil {
		return nil, err
	}

	if len(values) != len(p.values) {
		return nil, fmt.Errorf("data: projections: %w: got %d, want %d",
			errValueCount, len(values), len(p.values))
	}

	copy(p.values, values)

	return p, nil
}

// Geometry returns the acquisition geometry the data was measured with.
func (p *Projections) Geometry() geometry.Geometry { return p.geom }

// DetectorCount is shorthand for the geometry's detector channel count.
func (p *Projections) DetectorCount() int { return p.geom.DetectorCount() }

// AngleCount is shorthand for the geometry's projection angle count.
func (p *Projections) AngleCount() int { return p.geom.AngleCount() }

// Values returns the backing slice, row-major by angle.
func (p *Projections) Values() []float64 { return p.values }

// Row returns the detector samples of one projection angle.
func (p *Projections) Row(angle int) []float64 {
	w := p.geom.DetectorCount()

	return p.values[angle*w : (angle+1)*w]
}

// Initialized reports whether backing storage exists.
func (p *Projections) Initialized() bool {
	return p != nil && p.geom != nil && p.values != nil
}

// Volume is a 2-D reconstruction grid, row-major.
type Volume struct {
	rows, cols int
	values     []float64
}

// NewVolume allocates a zero-filled rows-by-cols volume.
func NewVolume(rows, cols int) (*Volume, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("data: volume: %w", errVolumeSize)
	}

	return &Volume{rows: rows, cols: cols, values: make([]float64, rows*cols)}, nil
}

// VolumeFromValues copies values into a new rows-by-cols volume.
func VolumeFromValues(rows, cols int, values []float64) (*Volume, error) {
	v, err := NewVolume(rows, cols)
	if err != nil {
		return nil, err
	}

	if len(values) != rows*cols {
		return nil, fmt.Errorf("data: volume: %w: got %d, want %d",
			errVolumeValues, len(values), rows*cols)
	}

	copy(v.values, values)

	return v, nil
}

func (v *Volume) Rows() int         { return v.rows }
func (v *Volume) Cols() int         { return v.cols }
func (v *Volume) Values() []float64 { return v.values }

// At returns the value at the given row and column.
func (v *Volume) At(row, col int) float64 { return v.values[row*v.cols+col] }

// Initialized reports whether backing storage exists.
func (v *Volume) Initialized() bool {
	return v != nil && v.values != nil
}
