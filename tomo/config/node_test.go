package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedAccessors(t *testing.T) {
	n := NewNode(map[string]any{
		"FilterType":       "hann",
		"FilterSinogramId": 3,
		"FilterParameter":  0.5,
		"ShortScan":        true,
	})

	s, ok := n.String("FilterType")
	require.True(t, ok)
	require.Equal(t, "hann", s)

	id, ok := n.Int("FilterSinogramId")
	require.True(t, ok)
	require.Equal(t, 3, id)

	f, ok := n.Float("FilterParameter")
	require.True(t, ok)
	require.InDelta(t, 0.5, f, 1e-15)

	b, ok := n.Bool("ShortScan")
	require.True(t, ok)
	require.True(t, b)

	_, ok = n.String("Missing")
	require.False(t, ok)
}

func TestIntCoercion(t *testing.T) {
	n := NewNode(map[string]any{"A": 2.0, "B": 2.5, "C": int64(7)})

	a, ok := n.Int("A")
	require.True(t, ok)
	require.Equal(t, 2, a)

	_, ok = n.Int("B")
	require.False(t, ok)

	c, ok := n.Int("C")
	require.True(t, ok)
	require.Equal(t, 7, c)
}

func TestOptionDefaults(t *testing.T) {
	n := NewNode(map[string]any{"D": 2.0})

	require.Equal(t, "ram-lak", n.OptionString("FilterType", "ram-lak"))
	require.InDelta(t, 2.0, n.OptionFloat("D", 1.0), 1e-15)
	require.InDelta(t, -1.0, n.OptionFloat("FilterParameter", -1.0), 1e-15)
	require.False(t, n.OptionBool("ShortScan", false))
	require.Equal(t, -1, n.OptionInt("DeviceIndex", -1))
}

func TestUnconsumedAudit(t *testing.T) {
	n := NewNode(map[string]any{
		"FilterType": "hann",
		"FilterTyp":  "hamming", // mistyped field
		"ShortScan":  true,
	})

	_, _ = n.String("FilterType")
	n.MarkConsumed("ShortScan")

	require.Equal(t, []string{"FilterTyp"}, n.Unconsumed())

	n.MarkConsumed("NoSuchField")
	require.Equal(t, []string{"FilterTyp"}, n.Unconsumed())
}

func TestSetOverwritesAndResetsConsumed(t *testing.T) {
	n := NewNode(map[string]any{"ProjectionDataId": 1})

	_, _ = n.Int("ProjectionDataId")
	require.Empty(t, n.Unconsumed())

	n.Set("ProjectionDataId", 9)
	require.Equal(t, []string{"ProjectionDataId"}, n.Unconsumed())

	id, ok := n.Int("ProjectionDataId")
	require.True(t, ok)
	require.Equal(t, 9, id)

	n.Set("ReconstructionDataId", 2)
	require.True(t, n.Has("ReconstructionDataId"))
}

func TestHasDoesNotConsume(t *testing.T) {
	n := NewNode(map[string]any{"A": 1})

	require.True(t, n.Has("A"))
	require.Equal(t, []string{"A"}, n.Unconsumed())
}

func TestFromYAML(t *testing.T) {
	raw := []byte(`
FilterType: Shepp-Logan
FilterD: 0.8
FilterSinogramId: 12
ShortScan: true
`)

	n, err := FromYAML(raw)
	require.NoError(t, err)

	require.Equal(t, "Shepp-Logan", n.OptionString("FilterType", "ram-lak"))
	require.InDelta(t, 0.8, n.OptionFloat("FilterD", 1.0), 1e-15)

	id, ok := n.Int("FilterSinogramId")
	require.True(t, ok)
	require.Equal(t, 12, id)

	require.True(t, n.OptionBool("ShortScan", false))
	require.Empty(t, n.Unconsumed())
}

func TestFromYAMLEmptyAndInvalid(t *testing.T) {
	n, err := FromYAML(nil)
	require.NoError(t, err)
	require.Empty(t, n.Unconsumed())

	_, err = FromYAML([]byte("[1, 2, 3]"))
	require.Error(t, err)
}
