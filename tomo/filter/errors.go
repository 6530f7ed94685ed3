package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned (wrapped with the offending name) when a
	// filter name is not in the catalog.
	ErrUnknownKind = errors.New("unknown filter kind")

	errEmptyCoefficients = errors.New("filter coefficients must not be empty")
	errInvalidWidth      = errors.New("filter width must be >= 0")
	errShortCoefficients = errors.New("coefficient data shorter than required length")
)

func wrapUnknownKind(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func validateWindowSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("window size must be > 0: %d", n)
	}

	return nil
}
