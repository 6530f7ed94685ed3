package engine

import (
	"fmt"

	"github.com/cwbudde/algo-tomo/tomo/data"
	"github.com/cwbudde/algo-tomo/tomo/filter"
)

// MockBackend is a host-memory backend for development and tests. Engines it
// creates record every call and can be scripted to fail individual steps.
type MockBackend struct {
	// FailNewEngine makes NewEngine fail.
	FailNewEngine bool

	// Engines collects every engine handed out, in creation order.
	Engines []*MockEngine

	// Script is applied to each new engine before it is returned.
	Script func(*MockEngine)
}

// NewMockBackend returns an empty mock backend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

func (b *MockBackend) Name() string    { return "mock" }
func (b *MockBackend) Available() bool { return true }

func (b *MockBackend) NewEngine(deviceIndex int) (Engine, error) {
	if b.FailNewEngine {
		return nil, fmt.Errorf("mock backend: engine creation refused")
	}

	e := &MockEngine{DeviceIndex: deviceIndex}
	if b.Script != nil {
		b.Script(e)
	}

	b.Engines = append(b.Engines, e)

	return e, nil
}

// MockEngine records the configuration pushed into it.
type MockEngine struct {
	DeviceIndex int

	Calls       []string
	CloseCount  int
	SetupCalled bool

	FilterKind      filter.Kind
	FilterCoeffs    []float64
	FilterWidth     int
	FilterD         float64
	FilterParameter float64
	ShortScan       bool

	FailSetup     error
	FailSetFilter error
	FailShortScan error
	FailRun       error
}

func (e *MockEngine) record(call string) {
	e.Calls = append(e.Calls, call)
}

func (e *MockEngine) Setup(proj *data.Projections, vol *data.Volume, deviceIndex, supersampling int) error {
	e.record("setup")

	if e.FailSetup != nil {
		return e.FailSetup
	}

	e.SetupCalled = true

	return nil
}

func (e *MockEngine) SetFilter(kind filter.Kind, coeffs []float64, width int, d, parameter float64) error {
	e.record("setFilter")

	if e.FailSetFilter != nil {
		return e.FailSetFilter
	}

	e.FilterKind = kind
	e.FilterCoeffs = append([]float64(nil), coeffs...)
	e.FilterWidth = width
	e.FilterD = d
	e.FilterParameter = parameter

	return nil
}

func (e *MockEngine) SetShortScan(enabled bool) error {
	e.record("setShortScan")

	if e.FailShortScan != nil {
		return e.FailShortScan
	}

	e.ShortScan = enabled

	return nil
}

func (e *MockEngine) UploadProjections(proj *data.Projections) error {
	e.record("upload")

	return nil
}

func (e *MockEngine) Run() error {
	e.record("run")

	return e.FailRun
}

func (e *MockEngine) DownloadVolume(vol *data.Volume) error {
	e.record("download")

	return nil
}

func (e *MockEngine) Close() error {
	e.record("close")
	e.CloseCount++

	return nil
}
