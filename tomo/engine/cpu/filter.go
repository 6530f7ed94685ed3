package cpu

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tomo/tomo/filter"
	"github.com/cwbudde/algo-tomo/tomo/geometry"
)

// filterSinogram returns the filtered projection rows. Analytic kinds apply
// the ramp-times-window spectrum; Fourier-domain custom kinds substitute the
// supplied spectra; real-space custom kinds are convolved via FFT;
// angle-indexed kinds scale whole rows.
func (e *Engine) filterSinogram() ([]float64, error) {
	det := e.geom.DetectorCount()
	angles := e.geom.AngleCount()

	sino := e.sino
	if g, ok := e.geom.(*geometry.FanFlat); ok {
		sino = e.preweightFanFlat(sino, g)
	}

	out := make([]float64, len(sino))

	switch e.kind {
	case filter.None:
		copy(out, sino)

		return out, nil
	case filter.Sinogram, filter.RSinogram:
		// One coefficient per angle, applied as a row scale.
		for a := 0; a < angles; a++ {
			vecmath.ScaleBlock(out[a*det:(a+1)*det], sino[a*det:(a+1)*det], e.coeffs[a])
		}

		return out, nil
	}

	fftSize := nextPowerOf2(2 * det)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("cpu engine: fft plan: %w", err)
	}

	shared, err := e.sharedSpectrum(fftSize, plan)
	if err != nil {
		return nil, err
	}

	padded := make([]complex128, fftSize)

	for a := 0; a < angles; a++ {
		mult := shared
		if mult == nil {
			mult, err = e.customSpectrum(a, fftSize, plan)
			if err != nil {
				return nil, err
			}
		}

		row := sino[a*det : (a+1)*det]

		for i := range padded {
			padded[i] = 0
		}

		for i, v := range row {
			padded[i] = complex(v, 0)
		}

		err = plan.Forward(padded, padded)
		if err != nil {
			return nil, fmt.Errorf("cpu engine: forward fft: %w", err)
		}

		for i := range padded {
			padded[i] *= mult[i]
		}

		err = plan.Inverse(padded, padded)
		if err != nil {
			return nil, fmt.Errorf("cpu engine: inverse fft: %w", err)
		}

		for i := 0; i < det; i++ {
			out[a*det+i] = real(padded[i])
		}
	}

	return out, nil
}

// sharedSpectrum returns the angle-independent spectrum multiplier, or nil
// when the multiplier varies per angle.
func (e *Engine) sharedSpectrum(fftSize int, plan *algofft.Plan[complex128]) ([]complex128, error) {
	if !e.kind.CustomData() {
		return e.analyticSpectrum(fftSize)
	}

	// A single coefficient row is shared across all angles; a full
	// width-by-angles buffer is not.
	if len(e.coeffs) >= e.width*e.geom.AngleCount() && e.geom.AngleCount() > 1 {
		return nil, nil
	}

	return e.customRowSpectrum(e.coeffs[:e.width], fftSize, plan)
}

func (e *Engine) customSpectrum(angle, fftSize int, plan *algofft.Plan[complex128]) ([]complex128, error) {
	row := e.coeffs[angle*e.width : (angle+1)*e.width]

	return e.customRowSpectrum(row, fftSize, plan)
}

// analyticSpectrum builds |w| times the kind's apodization window over the
// full FFT bin range.
func (e *Engine) analyticSpectrum(fftSize int) ([]complex128, error) {
	half := fftSize / 2

	apod, err := filter.Window(e.kind, half+1, e.parameter, e.d)
	if err != nil {
		return nil, fmt.Errorf("cpu engine: filter window: %w", err)
	}

	mult := make([]complex128, fftSize)
	for i := range mult {
		k := i
		if k > half {
			k = fftSize - i
		}

		ramp := 2 * float64(k) / float64(fftSize)
		mult[i] = complex(ramp*apod[k], 0)
	}

	return mult, nil
}

func (e *Engine) customRowSpectrum(row []float64, fftSize int, plan *algofft.Plan[complex128]) ([]complex128, error) {
	if e.kind.RealSpace() {
		return kernelSpectrum(row, fftSize, plan)
	}

	// Fourier-domain coefficients sample [0, Nyquist] across the row.
	half := fftSize / 2
	mult := make([]complex128, fftSize)

	for i := range mult {
		k := i
		if k > half {
			k = fftSize - i
		}

		idx := 0
		if half > 0 {
			idx = int(float64(k)/float64(half)*float64(len(row)-1) + 0.5)
		}

		mult[i] = complex(row[idx], 0)
	}

	return mult, nil
}

// kernelSpectrum transforms a real-space convolution kernel, centered on
// bin zero with wraparound, into its spectrum.
func kernelSpectrum(kernel []float64, fftSize int, plan *algofft.Plan[complex128]) ([]complex128, error) {
	padded := make([]complex128, fftSize)
	center := len(kernel) / 2

	for j, v := range kernel {
		padded[((j-center)+fftSize)%fftSize] = complex(v, 0)
	}

	err := plan.Forward(padded, padded)
	if err != nil {
		return nil, fmt.Errorf("cpu engine: kernel fft: %w", err)
	}

	return padded, nil
}

// preweightFanFlat applies the flat-detector cosine weighting and, when
// short-scan is enabled, Parker weights for the partial rotation.
func (e *Engine) preweightFanFlat(sino []float64, g *geometry.FanFlat) []float64 {
	det := g.DetectorCount()
	angles := g.Angles()
	spacing := g.DetectorSpacing()
	dsd := g.SourceOriginDistance() + g.OriginDetectorDistance()
	center := float64(det-1) / 2

	gammaM := math.Atan(0.5 * float64(det) * spacing / dsd)

	out := make([]float64, len(sino))

	for a := range angles {
		beta := angles[a] - angles[0]

		for u := 0; u < det; u++ {
			ut := (float64(u) - center) * spacing
			w := dsd / math.Hypot(dsd, ut)

			if e.shortScan {
				gamma := math.Atan(ut / dsd)
				w *= 2 * parkerWeight(beta, gamma, gammaM)
			}

			out[a*det+u] = w * sino[a*det+u]
		}
	}

	return out
}

// parkerWeight is the classic short-scan weighting for a fan angle gamma at
// rotation beta, with fan half-angle gammaM. Outside the short-scan range
// the weight is zero.
func parkerWeight(beta, gamma, gammaM float64) float64 {
	rampIn := 2 * (gammaM - gamma)

	switch {
	case beta < 0:
		return 0
	case beta < rampIn && rampIn > 0:
		s := math.Sin(math.Pi / 4 * beta / (gammaM - gamma))
		return s * s
	case beta <= math.Pi-2*gamma:
		return 1
	case beta <= math.Pi+2*gammaM && gammaM+gamma > 0:
		s := math.Sin(math.Pi / 4 * (math.Pi + 2*gammaM - beta) / (gammaM + gamma))
		return s * s
	default:
		return 0
	}
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
