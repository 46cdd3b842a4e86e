package datatree

import (
	"testing"

	"github.com/scigolib/datatree/internal/dtype"
	"github.com/stretchr/testify/require"
)

func TestToString_Scalar(t *testing.T) {
	n := New()
	require.NoError(t, SetScalar(n, uint32(42)))
	require.Equal(t, "42", n.ToString())
}

func TestToString_Object(t *testing.T) {
	n := New()
	require.NoError(t, SetScalar(n.Fetch("a"), uint32(1)))
	require.NoError(t, SetScalar(n.Fetch("b"), uint32(2)))
	require.Equal(t, `{"a":1,"b":2}`, n.ToString())
}

func TestToString_List(t *testing.T) {
	n := New()
	require.NoError(t, AppendScalar(n, uint32(1)))
	require.NoError(t, AppendScalar(n, uint32(2)))
	require.Equal(t, `[1,2]`, n.ToString())
}

func TestToString_ByteStr(t *testing.T) {
	buf := []byte("hi")
	dt, err := dtype.New(dtype.ByteStr, 1, 0, len(buf), len(buf), dtype.DefaultEndian)
	require.NoError(t, err)

	n := New()
	require.NoError(t, SetDescriptorPointer(n, dt, buf))
	require.Equal(t, `"hi"`, n.ToString())
}

func TestJSONSchema_NoValues(t *testing.T) {
	n := New()
	require.NoError(t, SetScalar(n.Fetch("a"), uint32(7)))
	schemaOut := n.JSONSchema()
	require.Contains(t, schemaOut, `"dtype":"uint32"`)
	require.NotContains(t, schemaOut, ":7")
}

func TestTotalBytes(t *testing.T) {
	n := New()
	require.NoError(t, SetScalar(n.Fetch("a"), uint32(1)))
	require.NoError(t, SetScalar(n.Fetch("b"), float64(1)))
	require.Equal(t, 12, n.TotalBytes())
}

func TestSerialize_NonCompact(t *testing.T) {
	n := New()
	require.NoError(t, SetScalar(n.Fetch("a"), uint32(0xAABBCCDD)))
	require.NoError(t, SetScalar(n.Fetch("b"), uint32(0x11223344)))

	dst := make([]byte, 8)
	written, err := n.Serialize(dst, false)
	require.NoError(t, err)
	require.Equal(t, 8, written)
}

func TestSerialize_Compact_RepacksStride(t *testing.T) {
	buf := make([]byte, 16)
	dt, err := dtype.New(dtype.Uint32, 2, 0, 8, 4, dtype.DefaultEndian)
	require.NoError(t, err)

	n := New()
	require.NoError(t, SetDescriptorPointer(n, dt, buf))
	require.NoError(t, SetAt[uint32](n, 0, 1))
	require.NoError(t, SetAt[uint32](n, 1, 2))

	dst := make([]byte, 8)
	written, werr := n.Serialize(dst, true)
	require.NoError(t, werr)
	require.Equal(t, 8, written)

	nonCompact := make([]byte, 16)
	written2, err2 := n.Serialize(nonCompact, false)
	require.NoError(t, err2)
	require.Equal(t, 16, written2, "non-compact serialize uses count*stride, including padding")
}
