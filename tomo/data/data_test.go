package data

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-tomo/tomo/geometry"
)

func testGeometry(t *testing.T, detectors, angles int) geometry.Geometry {
	t.Helper()

	g, err := geometry.NewParallel(detectors, 1.0, geometry.UniformAngles(angles, math.Pi))
	if err != nil {
		t.Fatalf("NewParallel: %v", err)
	}

	return g
}

func TestNewProjections(t *testing.T) {
	p, err := NewProjections(testGeometry(t, 8, 4))
	if err != nil {
		t.Fatalf("NewProjections: %v", err)
	}

	if !p.Initialized() {
		t.Fatal("fresh projections must be initialized")
	}

	if len(p.Values()) != 32 {
		t.Fatalf("len=%d, want 32", len(p.Values()))
	}

	if _, err := NewProjections(nil); err == nil {
		t.Fatal("expected error for nil geometry")
	}
}

func TestProjectionsFromValues(t *testing.T) {
	values := make([]float64, 32)
	for i := range values {
		values[i] = float64(i)
	}

	p, err := ProjectionsFromValues(testGeometry(t, 8, 4), values)
	if err != nil {
		t.Fatalf("ProjectionsFromValues: %v", err)
	}

	row := p.Row(2)
	if len(row) != 8 || row[0] != 16 {
		t.Fatalf("Row(2) = %v", row)
	}

	if _, err := ProjectionsFromValues(testGeometry(t, 8, 4), values[:10]); err == nil {
		t.Fatal("expected error for wrong value count")
	}
}

func TestVolume(t *testing.T) {
	v, err := NewVolume(3, 4)
	if err != nil {
		t.Fatalf("NewVolume: %v", err)
	}

	if !v.Initialized() || v.Rows() != 3 || v.Cols() != 4 {
		t.Fatalf("rows=%d cols=%d", v.Rows(), v.Cols())
	}

	v.Values()[5] = 7
	if v.At(1, 1) != 7 {
		t.Fatalf("At(1,1) = %v, want 7", v.At(1, 1))
	}

	if _, err := NewVolume(0, 4); err == nil {
		t.Fatal("expected error for zero rows")
	}

	if _, err := VolumeFromValues(2, 2, []float64{1}); err == nil {
		t.Fatal("expected error for wrong value count")
	}
}

func TestManagerResolve(t *testing.T) {
	m := NewManager()

	p, err := NewProjections(testGeometry(t, 4, 2))
	if err != nil {
		t.Fatalf("NewProjections: %v", err)
	}

	v, err := NewVolume(4, 4)
	if err != nil {
		t.Fatalf("NewVolume: %v", err)
	}

	pid := m.RegisterProjections(p)
	vid := m.RegisterVolume(v)

	got, err := m.Projections(pid)
	if err != nil || got != p {
		t.Fatalf("Projections(%d) = %v, %v", pid, got, err)
	}

	gotV, err := m.Volume(vid)
	if err != nil || gotV != v {
		t.Fatalf("Volume(%d) = %v, %v", vid, gotV, err)
	}

	if _, err := m.Projections(vid); err == nil {
		t.Fatal("expected kind mismatch error")
	}

	if _, err := m.Volume(999); err == nil {
		t.Fatal("expected unknown id error")
	}

	m.Remove(pid)

	if _, err := m.Projections(pid); err == nil {
		t.Fatal("expected error after Remove")
	}
}
