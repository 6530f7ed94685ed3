package filter

import "strings"

// Kind identifies an FBP filter kernel.
type Kind int

const (
	// None disables filtering; projections are back-projected as-is.
	None Kind = iota
	RamLak
	SheppLogan
	Cosine
	Hamming
	Hann
	Tukey
	Lanczos
	Triangular
	Gaussian
	BartlettHann
	Blackman
	Nuttall
	BlackmanHarris
	BlackmanNuttall
	FlatTop
	Kaiser
	Parzen

	// Custom-data kinds carry caller-supplied coefficients instead of a
	// closed-form window. Projection and RProjection are indexed per
	// detector channel per angle; Sinogram and RSinogram per angle.
	Projection
	Sinogram
	RProjection
	RSinogram
)

var kindNames = map[Kind]string{
	None:            "none",
	RamLak:          "ram-lak",
	SheppLogan:      "shepp-logan",
	Cosine:          "cosine",
	Hamming:         "hamming",
	Hann:            "hann",
	Tukey:           "tukey",
	Lanczos:         "lanczos",
	Triangular:      "triangular",
	Gaussian:        "gaussian",
	BartlettHann:    "bartlett-hann",
	Blackman:        "blackman",
	Nuttall:         "nuttall",
	BlackmanHarris:  "blackman-harris",
	BlackmanNuttall: "blackman-nuttall",
	FlatTop:         "flat-top",
	Kaiser:          "kaiser",
	Parzen:          "parzen",
	Projection:      "projection",
	Sinogram:        "sinogram",
	RProjection:     "rprojection",
	RSinogram:       "rsinogram",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}

	return m
}()

// ParseKind resolves a textual filter name case-insensitively.
// Unknown names degrade to None; the returned error is the diagnostic and
// the caller decides whether the absence of a recognized filter is fatal.
func ParseKind(name string) (Kind, error) {
	k, ok := kindsByName[strings.ToLower(name)]
	if !ok {
		return None, wrapUnknownKind(name)
	}

	return k, nil
}

// String returns the canonical catalog name of the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return "unknown"
}

// Names returns all catalog names in no particular order.
func Names() []string {
	out := make([]string, 0, len(kindNames))
	for _, n := range kindNames {
		out = append(out, n)
	}

	return out
}

// CustomData reports whether the kind requires externally supplied
// coefficient data instead of a closed-form window.
func (k Kind) CustomData() bool {
	switch k {
	case Projection, Sinogram, RProjection, RSinogram:
		return true
	default:
		return false
	}
}

// AngleIndexed reports whether the kind's coefficients are indexed per
// projection angle rather than per detector channel.
func (k Kind) AngleIndexed() bool {
	return k == Sinogram || k == RSinogram
}

// RealSpace reports whether custom coefficients are given in real space
// (the r-prefixed kinds) rather than in the Fourier domain.
func (k Kind) RealSpace() bool {
	return k == RProjection || k == RSinogram
}
