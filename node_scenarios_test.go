package datatree

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/scigolib/datatree/internal/dtype"
	"github.com/stretchr/testify/require"
)

// S1 — scalar trio.
func TestScenario_S1_ScalarTrio(t *testing.T) {
	n := New()
	require.NoError(t, SetScalar(n.Fetch("a"), uint32(10)))
	require.NoError(t, SetScalar(n.Fetch("b"), uint32(20)))
	require.NoError(t, SetScalar(n.Fetch("c"), float64(30.0)))

	a, err := As[uint32](n.Fetch("a"), 0)
	require.NoError(t, err)
	require.Equal(t, uint32(10), a)

	b, err := As[uint32](n.Fetch("b"), 0)
	require.NoError(t, err)
	require.Equal(t, uint32(20), b)

	c, err := As[float64](n.Fetch("c"), 0)
	require.NoError(t, err)
	require.Equal(t, 30.0, c)
}

// S2 — nested auto-create.
func TestScenario_S2_NestedAutoCreate(t *testing.T) {
	n := New()
	require.NoError(t, SetScalar(n.Fetch("a/b"), uint32(10)))

	v, err := As[uint32](n.Fetch("a/b"), 0)
	require.NoError(t, err)
	require.Equal(t, uint32(10), v)
	require.Equal(t, dtype.Object, n.Entry("a").Kind())
}

// S3 — vector leaf.
func TestScenario_S3_VectorLeaf(t *testing.T) {
	vals := make([]uint32, 100)
	for i := range vals {
		vals[i] = uint32(i)
	}

	n := New()
	require.NoError(t, SetVector(n.Fetch("a"), vals))

	arr, err := AsArray[uint32](n.Entry("a"))
	require.NoError(t, err)
	v, err := arr.Get(99)
	require.NoError(t, err)
	require.Equal(t, uint32(99), v)
}

// S4 — list.
func TestScenario_S4_List(t *testing.T) {
	n := New()
	list := n.Fetch("mylist")

	require.NoError(t, AppendScalar(list, uint32(10)))
	require.NoError(t, AppendScalar(list, uint32(20)))
	require.NoError(t, AppendScalar(list, float64(30.0)))

	vals := make([]uint32, 100)
	for i := range vals {
		vals[i] = uint32(i)
	}
	require.NoError(t, AppendVector(list, vals))

	v0, err := As[uint32](list.Index(0), 0)
	require.NoError(t, err)
	require.Equal(t, uint32(10), v0)

	v1, err := As[uint32](list.Index(1), 0)
	require.NoError(t, err)
	require.Equal(t, uint32(20), v1)

	v2, err := As[float64](list.Index(2), 0)
	require.NoError(t, err)
	require.Equal(t, 30.0, v2)

	arr, err := AsArray[uint32](list.Index(3))
	require.NoError(t, err)
	require.Equal(t, 100, arr.Len())
	last, err := arr.Get(99)
	require.NoError(t, err)
	require.Equal(t, uint32(99), last)
}

// S5 — schema-over-buffer.
func TestScenario_S5_SchemaOverBuffer(t *testing.T) {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], 111)
	binary.LittleEndian.PutUint32(buf[4:8], 222)
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(30.0))

	n := New()
	require.NoError(t, WalkSchema(n, []byte(`{"a":"uint32","b":"uint32","c":"float64"}`), buf))

	a, err := As[uint32](n.Entry("a"), 0)
	require.NoError(t, err)
	require.Equal(t, uint32(111), a)

	c, err := As[float64](n.Entry("c"), 0)
	require.NoError(t, err)
	require.Equal(t, 30.0, c)

	require.NoError(t, SetAt[uint32](n.Entry("b"), 0, 999))
	require.Equal(t, uint32(999), binary.LittleEndian.Uint32(buf[4:8]), "writes through the tree must modify the buffer bytes")
}

// S6 — compound list-of.
func TestScenario_S6_CompoundListOf(t *testing.T) {
	buf := make([]byte, 28)
	for i := range buf {
		buf[i] = byte(i)
	}

	n := New()
	schemaText := []byte(`{"top":[{"int1":"uint32","int2":"uint32"},"float64","uint32"],"other":"float64"}`)
	require.NoError(t, WalkSchema(n, schemaText, buf))

	top := n.Entry("top")
	require.True(t, top.IsList())

	first := top.Index(0)
	require.Equal(t, 0, first.Entry("int1").DataType().Offset)
	require.Equal(t, 4, first.Entry("int2").DataType().Offset)

	second := top.Index(1)
	require.Equal(t, 8, second.DataType().Offset)

	third := top.Index(2)
	require.Equal(t, 16, third.DataType().Offset)

	other := n.Entry("other")
	require.Equal(t, 20, other.DataType().Offset)
}
