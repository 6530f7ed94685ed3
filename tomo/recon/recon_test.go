package recon

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tomo/tomo/config"
	"github.com/cwbudde/algo-tomo/tomo/data"
	"github.com/cwbudde/algo-tomo/tomo/geometry"
)

func testSetup(t *testing.T) (*data.Manager, int, int) {
	t.Helper()

	g, err := geometry.NewParallel(16, 1.0, geometry.UniformAngles(8, math.Pi))
	if err != nil {
		t.Fatalf("NewParallel: %v", err)
	}

	proj, err := data.NewProjections(g)
	if err != nil {
		t.Fatalf("NewProjections: %v", err)
	}

	vol, err := data.NewVolume(16, 16)
	if err != nil {
		t.Fatalf("NewVolume: %v", err)
	}

	mgr := data.NewManager()

	return mgr, mgr.RegisterProjections(proj), mgr.RegisterVolume(vol)
}

func TestBase2DInitializeFrom(t *testing.T) {
	mgr, pid, vid := testSetup(t)

	node := config.NewNode(map[string]any{
		"ProjectionDataId":     pid,
		"ReconstructionDataId": vid,
		"DeviceIndex":          1,
		"PixelSuperSampling":   2,
	})

	var b Base2D

	err := b.InitializeFrom(node, mgr)
	if err != nil {
		t.Fatalf("InitializeFrom: %v", err)
	}

	if b.Projections == nil || b.Reconstruction == nil {
		t.Fatal("datasets not bound")
	}

	if b.DeviceIndex != 1 || b.Supersampling != 2 {
		t.Fatalf("device=%d supersampling=%d", b.DeviceIndex, b.Supersampling)
	}

	if unused := node.Unconsumed(); len(unused) != 0 {
		t.Fatalf("unconsumed fields: %v", unused)
	}
}

func TestBase2DDefaults(t *testing.T) {
	mgr, pid, vid := testSetup(t)

	node := config.NewNode(map[string]any{
		"ProjectionDataId":     pid,
		"ReconstructionDataId": vid,
	})

	var b Base2D

	err := b.InitializeFrom(node, mgr)
	if err != nil {
		t.Fatalf("InitializeFrom: %v", err)
	}

	if b.DeviceIndex != -1 || b.Supersampling != 0 {
		t.Fatalf("device=%d supersampling=%d, want -1, 0", b.DeviceIndex, b.Supersampling)
	}
}

func TestBase2DMissingFields(t *testing.T) {
	mgr, pid, _ := testSetup(t)

	var b Base2D

	err := b.InitializeFrom(config.NewNode(nil), mgr)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("err = %v, want ErrMissingField", err)
	}

	node := config.NewNode(map[string]any{
		"ProjectionDataId":     pid,
		"ReconstructionDataId": 999,
	})

	if err := b.InitializeFrom(node, mgr); err == nil {
		t.Fatal("expected error for unknown volume id")
	}
}

func TestBase2DClear(t *testing.T) {
	mgr, pid, vid := testSetup(t)

	node := config.NewNode(map[string]any{
		"ProjectionDataId":     pid,
		"ReconstructionDataId": vid,
		"DeviceIndex":          3,
	})

	var b Base2D

	if err := b.InitializeFrom(node, mgr); err != nil {
		t.Fatalf("InitializeFrom: %v", err)
	}

	b.Clear()

	if b.Projections != nil || b.Reconstruction != nil {
		t.Fatal("Clear must drop dataset references")
	}

	if b.DeviceIndex != -1 || b.Supersampling != 0 {
		t.Fatal("Clear must reset scalars to defaults")
	}
}

type fakeAlgorithm struct{ Base2D }

func (f *fakeAlgorithm) Run() error { return nil }

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	err := r.Register("FAKE", func() Algorithm { return &fakeAlgorithm{} })
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := r.Register("FAKE", func() Algorithm { return &fakeAlgorithm{} }); err == nil {
		t.Fatal("expected duplicate registration error")
	}

	if err := r.Register("", func() Algorithm { return &fakeAlgorithm{} }); err == nil {
		t.Fatal("expected empty type error")
	}

	if err := r.Register("X", nil); err == nil {
		t.Fatal("expected nil factory error")
	}

	alg, err := r.New("FAKE")
	if err != nil || alg == nil {
		t.Fatalf("New: %v, %v", alg, err)
	}

	if _, err := r.New("nope"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("err = %v, want ErrUnknownAlgorithm", err)
	}
}
