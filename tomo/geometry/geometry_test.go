package geometry

import (
	"math"
	"testing"
)

func TestNewParallel(t *testing.T) {
	angles := UniformAngles(180, math.Pi)

	g, err := NewParallel(128, 1.0, angles)
	if err != nil {
		t.Fatalf("NewParallel: %v", err)
	}

	if g.DetectorCount() != 128 || g.AngleCount() != 180 {
		t.Fatalf("detectors=%d angles=%d", g.DetectorCount(), g.AngleCount())
	}

	if g.SupportsShortScan() {
		t.Fatal("parallel geometry must not support short-scan")
	}

	angles[0] = 42
	if g.Angles()[0] == 42 {
		t.Fatal("angles were not copied")
	}
}

func TestNewParallelValidation(t *testing.T) {
	angles := UniformAngles(4, math.Pi)

	if _, err := NewParallel(0, 1, angles); err == nil {
		t.Fatal("expected error for zero detector count")
	}

	if _, err := NewParallel(8, 0, angles); err == nil {
		t.Fatal("expected error for zero spacing")
	}

	if _, err := NewParallel(8, 1, nil); err == nil {
		t.Fatal("expected error for no angles")
	}
}

func TestNewFanFlat(t *testing.T) {
	angles := UniformAngles(360, 2*math.Pi)

	g, err := NewFanFlat(256, 1.5, angles, 500, 250)
	if err != nil {
		t.Fatalf("NewFanFlat: %v", err)
	}

	if !g.SupportsShortScan() {
		t.Fatal("fan-flat geometry must support short-scan")
	}

	if g.SourceOriginDistance() != 500 || g.OriginDetectorDistance() != 250 {
		t.Fatalf("distances: %v %v", g.SourceOriginDistance(), g.OriginDetectorDistance())
	}
}

func TestNewFanFlatValidation(t *testing.T) {
	angles := UniformAngles(4, 2*math.Pi)

	if _, err := NewFanFlat(8, 1, angles, 0, 100); err == nil {
		t.Fatal("expected error for zero source distance")
	}

	if _, err := NewFanFlat(8, 1, angles, 100, -1); err == nil {
		t.Fatal("expected error for negative detector distance")
	}
}

func TestUniformAngles(t *testing.T) {
	a := UniformAngles(4, math.Pi)
	if len(a) != 4 || a[0] != 0 {
		t.Fatalf("unexpected angles: %v", a)
	}

	if math.Abs(a[3]-3*math.Pi/4) > 1e-12 {
		t.Fatalf("a[3] = %v", a[3])
	}

	if UniformAngles(0, math.Pi) != nil {
		t.Fatal("n=0 must return nil")
	}
}
