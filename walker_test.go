package datatree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalkSchema_CompoundListOf(t *testing.T) {
	buf := make([]byte, 40)
	for i := range buf {
		buf[i] = byte(i)
	}

	n := New()
	schemaText := []byte(`{"dtype":{"x":"float64","y":"float64"},"length":5}`)
	require.NoError(t, WalkSchema(n, schemaText, buf))

	require.True(t, n.IsList())
	require.Equal(t, 5, n.NumberOfEntries())

	for i := 0; i < 5; i++ {
		item := n.Index(i)
		require.Equal(t, i*16, item.Entry("x").DataType().Offset)
		require.Equal(t, i*16+8, item.Entry("y").DataType().Offset)
	}
}

func TestWalkSchema_ExplicitLeafOffsetDoesNotShiftSiblings(t *testing.T) {
	buf := make([]byte, 32)
	n := New()
	// "b" pins offset 16 explicitly; "c" must still advance from
	// the walker's own running offset (8, after "a"'s and "b"'s 4
	// bytes each), not from "b"'s explicit 16.
	schemaText := []byte(`{"a":"uint32","b":{"dtype":"uint32","length":1,"offset":16},"c":"uint32"}`)
	require.NoError(t, WalkSchema(n, schemaText, buf))

	require.Equal(t, 0, n.Entry("a").DataType().Offset)
	require.Equal(t, 16, n.Entry("b").DataType().Offset)
	require.Equal(t, 8, n.Entry("c").DataType().Offset)
}

func TestWalkSchema_UnknownKind(t *testing.T) {
	buf := make([]byte, 8)
	n := New()
	err := WalkSchema(n, []byte(`"frobnicate"`), buf)
	require.Error(t, err)
}

func TestWalkSchema_BareLeaf(t *testing.T) {
	buf := make([]byte, 8)
	n := New()
	require.NoError(t, WalkSchema(n, []byte(`"float64"`), buf))
	require.True(t, n.IsLeaf())
	v, err := As[float64](n, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}
