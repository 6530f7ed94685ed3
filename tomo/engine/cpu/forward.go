package cpu

import (
	"math"

	"github.com/cwbudde/algo-tomo/tomo/data"
	"github.com/cwbudde/algo-tomo/tomo/geometry"
)

// ForwardProjectParallel integrates a volume along parallel rays, producing
// the sinogram the geometry describes. It is the counterpart to the
// engine's back-projection, used to generate test and demo data.
func ForwardProjectParallel(vol *data.Volume, geom *geometry.Parallel) (*data.Projections, error) {
	proj, err := data.NewProjections(geom)
	if err != nil {
		return nil, err
	}

	det := geom.DetectorCount()
	spacing := geom.DetectorSpacing()
	angles := geom.Angles()
	center := float64(det-1) / 2

	halfSpan := math.Hypot(float64(vol.Rows()), float64(vol.Cols())) / 2

	const step = 0.5

	values := proj.Values()

	for a := range angles {
		sinA, cosA := math.Sincos(angles[a])

		for u := 0; u < det; u++ {
			t := (float64(u) - center) * spacing

			sum := 0.0
			for s := -halfSpan; s <= halfSpan; s += step {
				x := t*cosA - s*sinA
				y := t*sinA + s*cosA
				sum += bilinear(vol, x, y)
			}

			values[a*det+u] = sum * step
		}
	}

	return proj, nil
}

// bilinear samples the volume at centered coordinates (x right, y up).
func bilinear(vol *data.Volume, x, y float64) float64 {
	rows, cols := vol.Rows(), vol.Cols()

	cf := x + float64(cols-1)/2
	rf := float64(rows-1)/2 - y

	if cf < 0 || rf < 0 || cf > float64(cols-1) || rf > float64(rows-1) {
		return 0
	}

	c0 := int(cf)
	r0 := int(rf)

	c1 := c0 + 1
	if c1 > cols-1 {
		c1 = cols - 1
	}

	r1 := r0 + 1
	if r1 > rows-1 {
		r1 = rows - 1
	}

	fc := cf - float64(c0)
	fr := rf - float64(r0)

	v00 := vol.At(r0, c0)
	v01 := vol.At(r0, c1)
	v10 := vol.At(r1, c0)
	v11 := vol.At(r1, c1)

	return v00*(1-fc)*(1-fr) + v01*fc*(1-fr) + v10*(1-fc)*fr + v11*fc*fr
}
