package datatree

import (
	"testing"

	"github.com/scigolib/datatree/internal/dtype"
	"github.com/stretchr/testify/require"
)

func TestNew_IsEmpty(t *testing.T) {
	n := New()
	require.True(t, n.IsEmpty())
	require.Equal(t, dtype.Empty, n.Kind())
}

func TestReset_ReturnsToEmpty(t *testing.T) {
	n := New()
	require.NoError(t, SetScalar(n, uint32(10)))
	require.False(t, n.IsEmpty())

	require.NoError(t, n.Reset())
	require.True(t, n.IsEmpty())
}

func TestCoerceTo_DiscardsPriorLeafOnObjectFetch(t *testing.T) {
	n := New()
	require.NoError(t, SetScalar(n, uint32(10)))
	require.True(t, n.IsLeaf())

	child := n.Fetch("a")
	require.True(t, n.IsObject())
	require.True(t, child.IsEmpty())
}

func TestSetScalar_DiscardsPriorChildren(t *testing.T) {
	n := New()
	n.Fetch("a")
	require.True(t, n.IsObject())

	require.NoError(t, SetScalar(n, int32(5)))
	require.True(t, n.IsLeaf())
	require.Equal(t, 0, n.NumberOfEntries())
}
