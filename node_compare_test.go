package datatree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual_Scalars(t *testing.T) {
	a := New()
	b := New()
	require.NoError(t, SetScalar(a, uint32(5)))
	require.NoError(t, SetScalar(b, uint32(5)))
	require.True(t, a.Equal(b))

	require.NoError(t, SetScalar(b, uint32(6)))
	require.False(t, a.Equal(b))
}

func TestEqual_KindMismatch(t *testing.T) {
	a := New()
	b := New()
	require.NoError(t, SetScalar(a, uint32(5)))
	require.NoError(t, SetScalar(b, int32(5)))
	require.False(t, a.Equal(b))
}

func TestEqual_Objects(t *testing.T) {
	a := New()
	require.NoError(t, SetScalar(a.Fetch("x"), uint32(1)))
	require.NoError(t, SetScalar(a.Fetch("y"), uint32(2)))

	b := New()
	require.NoError(t, SetScalar(b.Fetch("x"), uint32(1)))
	require.NoError(t, SetScalar(b.Fetch("y"), uint32(2)))

	require.True(t, a.Equal(b))

	require.NoError(t, SetScalar(b.Fetch("y"), uint32(3)))
	require.False(t, a.Equal(b))
}

func TestCompare_DiffTreeMarksMismatch(t *testing.T) {
	a := New()
	require.NoError(t, SetScalar(a.Fetch("x"), uint32(1)))
	require.NoError(t, SetScalar(a.Fetch("y"), uint32(2)))

	b := New()
	require.NoError(t, SetScalar(b.Fetch("x"), uint32(1)))
	require.NoError(t, SetScalar(b.Fetch("y"), uint32(99)))

	ok, diff := a.Compare(b)
	require.False(t, ok)

	xMatch, err := diff.Entry("x").ToInt64()
	require.NoError(t, err)
	require.Equal(t, int64(1), xMatch)

	yMatch, err := diff.Entry("y").ToInt64()
	require.NoError(t, err)
	require.Equal(t, int64(0), yMatch)
}

func TestRoundTripSerializeWalk(t *testing.T) {
	buf := make([]byte, 16)
	original := New()
	require.NoError(t, WalkSchema(original, []byte(`{"a":"uint32","b":"uint32","c":"float64"}`), buf))
	require.NoError(t, SetAt[uint32](original.Entry("a"), 0, 111))
	require.NoError(t, SetAt[uint32](original.Entry("b"), 0, 222))

	serialized := make([]byte, 16)
	_, err := original.Serialize(serialized, false)
	require.NoError(t, err)
	require.Equal(t, buf, serialized)

	rebuilt := New()
	require.NoError(t, WalkSchema(rebuilt, []byte(`{"a":"uint32","b":"uint32","c":"float64"}`), serialized))
	require.True(t, original.Equal(rebuilt))
}
