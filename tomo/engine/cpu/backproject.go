package cpu

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tomo/tomo/geometry"
)

func (e *Engine) backproject(filtered []float64) error {
	for i := range e.vol.Values() {
		e.vol.Values()[i] = 0
	}

	if g, ok := e.geom.(*geometry.FanFlat); ok {
		e.backprojectFanFlat(filtered, g)

		return nil
	}

	e.backprojectParallel(filtered)

	return nil
}

func (e *Engine) backprojectParallel(filtered []float64) {
	det := e.geom.DetectorCount()
	spacing := e.geom.DetectorSpacing()
	angles := e.geom.Angles()

	rows, cols := e.vol.Rows(), e.vol.Cols()
	out := e.vol.Values()

	sub := subpixelOffsets(e.supersampling)
	center := float64(det-1) / 2

	for a := range angles {
		sinA, cosA := math.Sincos(angles[a])
		row := filtered[a*det : (a+1)*det]

		for r := 0; r < rows; r++ {
			y0 := float64(rows-1)/2 - float64(r)

			for c := 0; c < cols; c++ {
				x0 := float64(c) - float64(cols-1)/2

				acc := 0.0

				for _, dy := range sub {
					for _, dx := range sub {
						t := (x0+dx)*cosA + (y0+dy)*sinA
						acc += sampleRow(row, t/spacing+center)
					}
				}

				out[r*cols+c] += acc / float64(len(sub)*len(sub))
			}
		}
	}

	vecmath.ScaleBlockInPlace(out, math.Pi/(2*float64(len(angles))))
}

func (e *Engine) backprojectFanFlat(filtered []float64, g *geometry.FanFlat) {
	det := g.DetectorCount()
	spacing := g.DetectorSpacing()
	angles := g.Angles()
	r0 := g.SourceOriginDistance()
	dsd := r0 + g.OriginDetectorDistance()

	rows, cols := e.vol.Rows(), e.vol.Cols()
	out := e.vol.Values()

	sub := subpixelOffsets(e.supersampling)
	center := float64(det-1) / 2

	dbeta := 2 * math.Pi / float64(len(angles))
	if len(angles) > 1 {
		dbeta = angles[1] - angles[0]
	}

	for a := range angles {
		sinB, cosB := math.Sincos(angles[a])
		row := filtered[a*det : (a+1)*det]

		for r := 0; r < rows; r++ {
			y0 := float64(rows-1)/2 - float64(r)

			for c := 0; c < cols; c++ {
				x0 := float64(c) - float64(cols-1)/2

				acc := 0.0

				for _, dy := range sub {
					for _, dx := range sub {
						// Rotate into the source frame; the source sits at
						// distance r0 along +y, the detector line beyond
						// the origin.
						xr := (x0+dx)*cosB + (y0+dy)*sinB
						yr := -(x0+dx)*sinB + (y0+dy)*cosB

						dist := r0 - yr
						if dist <= 0 {
							continue
						}

						u := dsd * xr / dist
						weight := (r0 * r0) / (dist * dist)
						acc += weight * sampleRow(row, u/spacing+center)
					}
				}

				out[r*cols+c] += acc / float64(len(sub)*len(sub))
			}
		}
	}

	vecmath.ScaleBlockInPlace(out, dbeta/2)
}

// sampleRow linearly interpolates a detector row at fractional index u.
// Samples outside the detector are zero.
func sampleRow(row []float64, u float64) float64 {
	if u < 0 || u > float64(len(row)-1) {
		return 0
	}

	i := int(u)
	if i == len(row)-1 {
		return row[i]
	}

	f := u - float64(i)

	return row[i]*(1-f) + row[i+1]*f
}

// subpixelOffsets returns the per-axis sample offsets for the supersampling
// factor; factor values below 2 mean a single center sample.
func subpixelOffsets(factor int) []float64 {
	if factor < 2 {
		return []float64{0}
	}

	out := make([]float64, factor)
	for i := range out {
		out[i] = (float64(i)+0.5)/float64(factor) - 0.5
	}

	return out
}
