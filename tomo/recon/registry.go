package recon

import "fmt"

// Factory builds one fresh Algorithm instance.
type Factory func() Algorithm

// Registry maps algorithm type tags to their factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given type tag.
func (r *Registry) Register(algType string, factory Factory) error {
	if algType == "" {
		return errEmptyType
	}

	if factory == nil {
		return errNilFactory
	}

	if _, exists := r.factories[algType]; exists {
		return fmt.Errorf("%w: %s", errDuplicate, algType)
	}

	r.factories[algType] = factory

	return nil
}

// MustRegister is like Register but panics on error. Intended for package
// init-time registration.
func (r *Registry) MustRegister(algType string, factory Factory) {
	err := r.Register(algType, factory)
	if err != nil {
		panic("recon registry: " + err.Error())
	}
}

// New instantiates the algorithm registered under the type tag.
func (r *Registry) New(algType string) (Algorithm, error) {
	factory := r.factories[algType]
	if factory == nil {
		return nil, fmt.Errorf("recon: %w: %s", ErrUnknownAlgorithm, algType)
	}

	return factory(), nil
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry algorithm packages register
// into at load time.
func Default() *Registry {
	return defaultRegistry
}
