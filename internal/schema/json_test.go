package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip_AllShapes(t *testing.T) {
	cases := []string{
		`"float64"`,
		`{"x":"float64","y":"float64"}`,
		`["int32","float64"]`,
		`{"dtype":{"x":"float64","y":"float64"},"length":100}`,
		`{"dtype":"int32","length":10,"offset":4,"stride":8,"endian":"big"}`,
	}
	for _, text := range cases {
		n, err := Parse([]byte(text))
		require.NoError(t, err, text)

		again, err := Parse([]byte(n.ToJSON()))
		require.NoError(t, err, n.ToJSON())

		require.True(t, n.Equal(again), "round trip changed tree: %s -> %s", text, n.ToJSON())
	}
}

func TestToJSON_PreservesOrder(t *testing.T) {
	n, err := Parse([]byte(`{"zeta":"int8","alpha":"int8"}`))
	require.NoError(t, err)
	require.Equal(t, `{"zeta":"int8","alpha":"int8"}`, n.ToJSON())
}

func TestToJSON_LeafShortFormWhenBare(t *testing.T) {
	n := Leaf("uint8", 1)
	require.Equal(t, `"uint8"`, n.ToJSON())
}

func TestToJSON_LeafLongFormWhenDecorated(t *testing.T) {
	n := Leaf("uint8", 4)
	require.Equal(t, `{"dtype":"uint8","length":4}`, n.ToJSON())
}
