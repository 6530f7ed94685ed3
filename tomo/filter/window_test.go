package filter

import (
	"math"
	"testing"
)

func TestWindowAllAnalyticKinds(t *testing.T) {
	kinds := []Kind{
		RamLak, SheppLogan, Cosine, Hamming, Hann, None, Tukey, Lanczos,
		Triangular, Gaussian, BartlettHann, Blackman, Nuttall,
		BlackmanHarris, BlackmanNuttall, FlatTop, Kaiser, Parzen,
	}

	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			w, err := Window(k, 64, -1, 1)
			if err != nil {
				t.Fatalf("Window: %v", err)
			}

			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}

				if v < -0.1 || v > 1.0001 {
					t.Fatalf("coefficient[%d] out of range: %v", i, v)
				}
			}

			if math.Abs(w[0]-1) > 0.09 {
				t.Fatalf("DC apodization = %v, want about 1", w[0])
			}
		})
	}
}

func TestWindowRamLakIsFlat(t *testing.T) {
	w, err := Window(RamLak, 16, -1, 1)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}

	for i, v := range w {
		if v != 1 {
			t.Fatalf("ram-lak[%d] = %v, want 1", i, v)
		}
	}
}

func TestWindowHannEdges(t *testing.T) {
	w, err := Window(Hann, 33, -1, 1)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}

	if math.Abs(w[0]-1) > 1e-12 {
		t.Fatalf("hann at DC = %v, want 1", w[0])
	}

	if math.Abs(w[32]) > 1e-12 {
		t.Fatalf("hann at edge = %v, want 0", w[32])
	}

	if math.Abs(w[16]-0.5) > 1e-12 {
		t.Fatalf("hann at midband = %v, want 0.5", w[16])
	}
}

func TestWindowDomainScaleCutsAboveD(t *testing.T) {
	w, err := Window(RamLak, 11, -1, 0.5)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}

	// Samples above normalized frequency 0.5 must be zeroed.
	for i := 6; i < 11; i++ {
		if w[i] != 0 {
			t.Fatalf("w[%d] = %v, want 0 beyond D", i, w[i])
		}
	}

	if w[0] != 1 || w[5] != 1 {
		t.Fatalf("passband not flat: w[0]=%v w[5]=%v", w[0], w[5])
	}
}

func TestWindowRejectsCustomKinds(t *testing.T) {
	for _, k := range []Kind{Projection, Sinogram, RProjection, RSinogram} {
		if _, err := Window(k, 8, -1, 1); err == nil {
			t.Fatalf("Window(%v) should fail", k)
		}
	}
}

func TestWindowRejectsBadSize(t *testing.T) {
	if _, err := Window(Hann, 0, -1, 1); err == nil {
		t.Fatal("expected error for size 0")
	}
}
