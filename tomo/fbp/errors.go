package fbp

import "errors"

// Each validation precondition fails with its own sentinel so callers can
// tell which field was violated.
var (
	ErrProjectionData     = errors.New("fbp: invalid projection data object")
	ErrReconstructionData = errors.New("fbp: invalid reconstruction data object")
	ErrFilterCoefficients = errors.New("fbp: custom-data filter kind requires coefficient data")
	ErrDeviceIndex        = errors.New("fbp: device index must be -1 or a non-negative integer")
	ErrSupersampling      = errors.New("fbp: pixel supersampling must be a non-negative integer")
	ErrNotConfigured      = errors.New("fbp: algorithm not configured")
)
