// Package config provides the declarative configuration node tree consumed
// by reconstruction algorithms. Every field access marks the field as
// consumed so callers can audit configurations for unused or mistyped
// entries afterwards.
package config

import (
	"math"
	"sort"
)

// Node is a flat set of named configuration fields with typed accessors.
type Node struct {
	fields   map[string]any
	consumed map[string]bool
}

// NewNode wraps a field map. The map is used as-is; callers hand over
// ownership.
func NewNode(fields map[string]any) *Node {
	if fields == nil {
		fields = map[string]any{}
	}

	return &Node{fields: fields, consumed: make(map[string]bool, len(fields))}
}

// Has reports whether the field exists, without consuming it.
func (n *Node) Has(name string) bool {
	_, ok := n.fields[name]

	return ok
}

// String returns the field as a string and marks it consumed.
func (n *Node) String(name string) (string, bool) {
	v, ok := n.consume(name)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

// Int returns the field as an int and marks it consumed. Whole-valued
// floats are accepted, matching what YAML decoding produces.
func (n *Node) Int(name string) (int, bool) {
	v, ok := n.consume(name)
	if !ok {
		return 0, false
	}

	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t == math.Trunc(t) {
			return int(t), true
		}

		return 0, false
	default:
		return 0, false
	}
}

// Float returns the field as a float64 and marks it consumed.
func (n *Node) Float(name string) (float64, bool) {
	v, ok := n.consume(name)
	if !ok {
		return 0, false
	}

	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// Bool returns the field as a bool and marks it consumed.
func (n *Node) Bool(name string) (bool, bool) {
	v, ok := n.consume(name)
	if !ok {
		return false, false
	}

	b, ok := v.(bool)

	return b, ok
}

// OptionString returns the field or def when absent.
func (n *Node) OptionString(name, def string) string {
	if v, ok := n.String(name); ok {
		return v
	}

	return def
}

// OptionInt returns the field or def when absent.
func (n *Node) OptionInt(name string, def int) int {
	if v, ok := n.Int(name); ok {
		return v
	}

	return def
}

// OptionFloat returns the field or def when absent.
func (n *Node) OptionFloat(name string, def float64) float64 {
	if v, ok := n.Float(name); ok {
		return v
	}

	return def
}

// OptionBool returns the field or def when absent.
func (n *Node) OptionBool(name string, def bool) bool {
	if v, ok := n.Bool(name); ok {
		return v
	}

	return def
}

// Set stores a field value, overwriting any existing entry and clearing
// its consumed mark.
func (n *Node) Set(name string, value any) {
	n.fields[name] = value
	delete(n.consumed, name)
}

// MarkConsumed flags a field as handled without reading it.
func (n *Node) MarkConsumed(name string) {
	if n.Has(name) {
		n.consumed[name] = true
	}
}

// Unconsumed lists the fields no accessor has touched, sorted by name.
// A non-empty result after initialization usually means a mistyped field.
func (n *Node) Unconsumed() []string {
	var out []string

	for name := range n.fields {
		if !n.consumed[name] {
			out = append(out, name)
		}
	}

	sort.Strings(out)

	return out
}

func (n *Node) consume(name string) (any, bool) {
	v, ok := n.fields[name]
	if ok {
		n.consumed[name] = true
	}

	return v, ok
}
