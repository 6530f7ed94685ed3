package filter

import "math"

// Per-kind defaults used when the scalar parameter carries the "unset"
// sentinel (-1).
const (
	defaultTukeyAlpha    = 0.5
	defaultGaussianSigma = 0.4
	defaultKaiserBeta    = 8.6
)

// Cosine-sum coefficient tables, evaluated over the window half from center
// (x=0) to edge (x=1).
var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	nuttallCoeffs         = []float64{0.355768, -0.487396, 0.144232, -0.012604}
	blackmanHarrisCoeffs  = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	blackmanNuttallCoeffs = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
	flatTopCoeffs         = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

// Window returns the apodization of an analytic filter kind sampled at n
// points over normalized frequency [0, Nyquist]. The domain-scale factor d
// stretches the window: frequencies above d are zeroed. A parameter of -1
// selects the per-kind default.
//
// Custom-data kinds have no closed form and are rejected.
func Window(k Kind, n int, parameter, d float64) ([]float64, error) {
	if err := validateWindowSize(n); err != nil {
		return nil, err
	}

	if k.CustomData() {
		return nil, wrapUnknownKind(k.String())
	}

	if d <= 0 {
		d = 1
	}

	out := make([]float64, n)
	for i := range out {
		f := 0.0
		if n > 1 {
			f = float64(i) / float64(n-1)
		}

		out[i] = apodization(k, f/d, parameter)
		if f > d {
			out[i] = 0
		}
	}

	return out, nil
}

// apodization evaluates the window at normalized frequency x in [0,1]
// (0 = DC, 1 = cutoff edge).
func apodization(k Kind, x, parameter float64) float64 {
	if x < 0 {
		x = 0
	}

	if x > 1 {
		x = 1
	}

	switch k {
	case None, RamLak:
		return 1
	case SheppLogan:
		return sinc(x / 2)
	case Cosine:
		return math.Cos(math.Pi * x / 2)
	case Hamming:
		return cosineSum(x, hammingCoeffs)
	case Hann:
		return cosineSum(x, hannCoeffs)
	case Tukey:
		return tukeyAt(x, paramOrDefault(parameter, defaultTukeyAlpha))
	case Lanczos:
		return sinc(x)
	case Triangular:
		return 1 - x
	case Gaussian:
		sigma := paramOrDefault(parameter, defaultGaussianSigma)
		return math.Exp(-x * x / (2 * sigma * sigma))
	case BartlettHann:
		return 0.62 - 0.48*(x/2) + 0.38*math.Cos(math.Pi*x)
	case Blackman:
		return cosineSum(x, blackmanCoeffs)
	case Nuttall:
		return cosineSum(x, nuttallCoeffs)
	case BlackmanHarris:
		return cosineSum(x, blackmanHarrisCoeffs)
	case BlackmanNuttall:
		return cosineSum(x, blackmanNuttallCoeffs)
	case FlatTop:
		return cosineSum(x, flatTopCoeffs)
	case Kaiser:
		return kaiserAt(x, paramOrDefault(parameter, defaultKaiserBeta))
	case Parzen:
		return parzenAt(x)
	default:
		return 1
	}
}

func paramOrDefault(parameter, def float64) float64 {
	if parameter < 0 {
		return def
	}

	return parameter
}

// cosineSum evaluates a cosine-sum window half at x in [0,1], where the
// full symmetric window is sum(c[k] * cos(k*2*pi*p)) over p in [0,1] with
// its maximum at p = 0.5.
func cosineSum(x float64, coeffs []float64) float64 {
	phase := math.Pi * (1 + x)

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	if alpha > 1 {
		alpha = 1
	}

	if x < 1-alpha {
		return 1
	}

	return 0.5 * (1 + math.Cos(math.Pi*(x-1+alpha)/alpha))
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	term := math.Sqrt(math.Max(0, 1-x*x))

	return besselI0(beta*term) / besselI0(beta)
}

func parzenAt(x float64) float64 {
	if x <= 0.5 {
		return 1 - 6*x*x*(1-x)
	}

	t := 1 - x

	return 2 * t * t * t
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
