package quality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRMSE(t *testing.T) {
	ref := []float64{1, 2, 3, 4}

	rmse, err := RMSE(ref, ref)
	require.NoError(t, err)
	require.Zero(t, rmse)

	rmse, err = RMSE(ref, []float64{2, 3, 4, 5})
	require.NoError(t, err)
	require.InDelta(t, 1.0, rmse, 1e-12)

	_, err = RMSE(ref, ref[:2])
	require.Error(t, err)

	_, err = RMSE(nil, nil)
	require.Error(t, err)
}

func TestPSNR(t *testing.T) {
	ref := []float64{0, 1, 0, 1}

	psnr, err := PSNR(ref, ref)
	require.NoError(t, err)
	require.True(t, math.IsInf(psnr, 1))

	psnr, err = PSNR(ref, []float64{0.1, 0.9, 0.1, 0.9})
	require.NoError(t, err)
	require.InDelta(t, 20.0, psnr, 1e-9)

	_, err = PSNR([]float64{5, 5}, []float64{5, 5})
	require.Error(t, err)
}

func TestCorrelation(t *testing.T) {
	a := []float64{1, 2, 3, 4}

	c, err := Correlation(a, []float64{2, 4, 6, 8})
	require.NoError(t, err)
	require.InDelta(t, 1.0, c, 1e-12)

	c, err = Correlation(a, []float64{4, 3, 2, 1})
	require.NoError(t, err)
	require.InDelta(t, -1.0, c, 1e-12)
}
