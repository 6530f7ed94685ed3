package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML mapping into a configuration node.
func FromYAML(data []byte) (*Node, error) {
	var raw map[string]any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if raw == nil {
		raw = map[string]any{}
	}

	return NewNode(raw), nil
}
