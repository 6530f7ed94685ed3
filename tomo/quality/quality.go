// Package quality provides reconstruction quality metrics for comparing a
// reconstructed volume against a reference.
package quality

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	errLengthMismatch = errors.New("quality: inputs must have the same length")
	errEmptyInput     = errors.New("quality: inputs must not be empty")
	errFlatReference  = errors.New("quality: reference has zero dynamic range")
)

// RMSE returns the root mean square error between reference and test.
func RMSE(reference, test []float64) (float64, error) {
	if err := validate(reference, test); err != nil {
		return 0, err
	}

	sum := 0.0

	for i, r := range reference {
		d := test[i] - r
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(reference))), nil
}

// PSNR returns the peak signal-to-noise ratio in dB, using the reference's
// dynamic range as the peak.
func PSNR(reference, test []float64) (float64, error) {
	rmse, err := RMSE(reference, test)
	if err != nil {
		return 0, err
	}

	peak := floats.Max(reference) - floats.Min(reference)
	if peak == 0 {
		return 0, errFlatReference
	}

	if rmse == 0 {
		return math.Inf(1), nil
	}

	return 20 * math.Log10(peak/rmse), nil
}

// Correlation returns the Pearson correlation between reference and test.
func Correlation(reference, test []float64) (float64, error) {
	if err := validate(reference, test); err != nil {
		return 0, err
	}

	return stat.Correlation(reference, test, nil), nil
}

func validate(reference, test []float64) error {
	if len(reference) == 0 {
		return errEmptyInput
	}

	if len(reference) != len(test) {
		return errLengthMismatch
	}

	return nil
}
