// Package recon holds the shared lifecycle of 2-D reconstruction algorithms:
// the Algorithm contract, the common dataset/device state every algorithm
// carries, and a registry keyed by algorithm type tags.
package recon

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tomo/tomo/config"
	"github.com/cwbudde/algo-tomo/tomo/data"
)

var (
	// ErrMissingField is returned when a required configuration field is
	// absent or has the wrong type.
	ErrMissingField = errors.New("missing or invalid configuration field")

	// ErrUnknownAlgorithm is returned for unregistered type tags.
	ErrUnknownAlgorithm = errors.New("unknown algorithm type")

	errEmptyType  = errors.New("empty algorithm type")
	errNilFactory = errors.New("nil algorithm factory")
	errDuplicate  = errors.New("duplicate algorithm type")
)

// Algorithm is a 2-D reconstruction algorithm driven by a declarative
// configuration. Run may be called repeatedly once initialization succeeds;
// Clear returns the instance to its unconfigured state and releases owned
// resources.
type Algorithm interface {
	InitializeFrom(node *config.Node, mgr *data.Manager) error
	Run() error
	Clear()
}

// Base2D carries the state shared by all 2-D reconstruction algorithms:
// non-owning dataset references, the device index (-1 = backend default)
// and the pixel supersampling factor.
type Base2D struct {
	Projections    *data.Projections
	Reconstruction *data.Volume
	DeviceIndex    int
	Supersampling  int
}

// InitializeFrom consumes the shared configuration fields: the required
// ProjectionDataId and ReconstructionDataId references plus the optional
// DeviceIndex (default -1) and PixelSuperSampling (default 0).
func (b *Base2D) InitializeFrom(node *config.Node, mgr *data.Manager) error {
	pid, ok := node.Int("ProjectionDataId")
	if !ok {
		return fmt.Errorf("recon: %w: ProjectionDataId", ErrMissingField)
	}

	vid, ok := node.Int("ReconstructionDataId")
	if !ok {
		return fmt.Errorf("recon: %w: ReconstructionDataId", ErrMissingField)
	}

	proj, err := mgr.Projections(pid)
	if err != nil {
		return fmt.Errorf("recon: ProjectionDataId: %w", err)
	}

	vol, err := mgr.Volume(vid)
	if err != nil {
		return fmt.Errorf("recon: ReconstructionDataId: %w", err)
	}

	b.Projections = proj
	b.Reconstruction = vol
	b.DeviceIndex = node.OptionInt("DeviceIndex", -1)
	b.Supersampling = node.OptionInt("PixelSuperSampling", 0)

	return nil
}

// Clear drops dataset references and resets scalars to their defaults.
func (b *Base2D) Clear() {
	b.Projections = nil
	b.Reconstruction = nil
	b.DeviceIndex = -1
	b.Supersampling = 0
}
