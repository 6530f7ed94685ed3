// Package geometry describes 2-D acquisition geometries for tomographic
// projection data.
package geometry

import (
	"errors"
	"fmt"
)

var (
	errDetectorCount   = errors.New("detector count must be > 0")
	errDetectorSpacing = errors.New("detector spacing must be > 0")
	errNoAngles        = errors.New("at least one projection angle is required")
	errDistance        = errors.New("source and detector distances must be > 0")
)

// Geometry is the capability surface shared by all acquisition geometries.
// SupportsShortScan reports whether partial-rotation short-scan weighting is
// applicable; only fan-beam flat-detector geometries qualify.
type Geometry interface {
	DetectorCount() int
	DetectorSpacing() float64
	AngleCount() int
	Angles() []float64
	SupportsShortScan() bool
}

// Parallel is an equidistant parallel-beam geometry.
type Parallel struct {
	detectorCount   int
	detectorSpacing float64
	angles          []float64
}

// NewParallel creates a parallel-beam geometry. Angles are in radians and
// copied.
func NewParallel(detectorCount int, detectorSpacing float64, angles []float64) (*Parallel, error) {
	if err := validate(detectorCount, detectorSpacing, angles); err != nil {
		return nil, fmt.Errorf("geometry: parallel: %w", err)
	}

	return &Parallel{
		detectorCount:   detectorCount,
		detectorSpacing: detectorSpacing,
		angles:          append([]float64(nil), angles...),
	}, nil
}

func (g *Parallel) DetectorCount() int       { return g.detectorCount }
func (g *Parallel) DetectorSpacing() float64 { return g.detectorSpacing }
func (g *Parallel) AngleCount() int          { return len(g.angles) }
func (g *Parallel) Angles() []float64        { return g.angles }
func (g *Parallel) SupportsShortScan() bool  { return false }

// FanFlat is a fan-beam geometry with a flat equidistant detector.
type FanFlat struct {
	detectorCount   int
	detectorSpacing float64
	angles          []float64
	sourceOrigin    float64
	originDetector  float64
}

// NewFanFlat creates a fan-beam flat-detector geometry. sourceOrigin and
// originDetector are the distances from the rotation center to the source
// and to the detector line.
func NewFanFlat(detectorCount int, detectorSpacing float64, angles []float64, sourceOrigin, originDetector float64) (*FanFlat, error) {
	if err := validate(detectorCount, detectorSpacing, angles); err != nil {
		return nil, fmt.Errorf("geometry: fanflat: %w", err)
	}

	if sourceOrigin <= 0 || originDetector <= 0 {
		return nil, fmt.Errorf("geometry: fanflat: %w", errDistance)
	}

	return &FanFlat{
		detectorCount:   detectorCount,
		detectorSpacing: detectorSpacing,
		angles:          append([]float64(nil), angles...),
		sourceOrigin:    sourceOrigin,
		originDetector:  originDetector,
	}, nil
}

func (g *FanFlat) DetectorCount() int       { return g.detectorCount }
func (g *FanFlat) DetectorSpacing() float64 { return g.detectorSpacing }
func (g *FanFlat) AngleCount() int          { return len(g.angles) }
func (g *FanFlat) Angles() []float64        { return g.angles }
func (g *FanFlat) SupportsShortScan() bool  { return true }

// SourceOriginDistance returns the source-to-rotation-center distance.
func (g *FanFlat) SourceOriginDistance() float64 { return g.sourceOrigin }

// OriginDetectorDistance returns the rotation-center-to-detector distance.
func (g *FanFlat) OriginDetectorDistance() float64 { return g.originDetector }

func validate(detectorCount int, detectorSpacing float64, angles []float64) error {
	if detectorCount <= 0 {
		return errDetectorCount
	}

	if detectorSpacing <= 0 {
		return errDetectorSpacing
	}

	if len(angles) == 0 {
		return errNoAngles
	}

	return nil
}

// UniformAngles returns n angles evenly spaced over [0, span).
func UniformAngles(n int, span float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = span * float64(i) / float64(n)
	}

	return out
}
