package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegion_EmptyIsNone(t *testing.T) {
	r := EmptyRegion()
	require.Equal(t, None, r.Mode())
	require.Nil(t, r.Bytes())
	require.Equal(t, 0, r.Len())
}

func TestRegion_Release_None(t *testing.T) {
	r := EmptyRegion()
	require.NoError(t, r.Release())
	require.Equal(t, None, r.Mode())
}

func TestRegion_Release_OwnedHeap(t *testing.T) {
	r := OwnedFromBytes([]byte{1, 2, 3})
	require.Equal(t, OwnedHeap, r.Mode())
	require.NoError(t, r.Release())
	require.Equal(t, None, r.Mode())
	require.Nil(t, r.Bytes())
}

func TestRegion_Release_Borrowed(t *testing.T) {
	buf := []byte{1, 2, 3}
	r := BorrowedFromBytes(buf)
	require.Equal(t, Borrowed, r.Mode())
	require.NoError(t, r.Release())
	require.Equal(t, None, r.Mode())
	// releasing a borrow must not touch the caller's buffer
	require.Equal(t, []byte{1, 2, 3}, buf)
}

func TestRegion_Reassign_OwnedDeepCopies(t *testing.T) {
	src := OwnedFromBytes([]byte{9, 9, 9})

	var dst Region
	require.NoError(t, dst.Reassign(src))
	require.Equal(t, OwnedHeap, dst.Mode())

	dst.Bytes()[0] = 0
	require.Equal(t, byte(9), src.Bytes()[0], "reassigning from an owned source must deep-copy")
}

func TestRegion_Reassign_BorrowedShares(t *testing.T) {
	buf := []byte{1, 2, 3}
	src := BorrowedFromBytes(buf)

	var dst Region
	require.NoError(t, dst.Reassign(src))
	require.Equal(t, Borrowed, dst.Mode())

	dst.Bytes()[0] = 42
	require.Equal(t, byte(42), buf[0], "reassigning from a borrowed source must share the same backing array")
}

func TestRegion_Reassign_ReleasesPriorStorage(t *testing.T) {
	var r Region
	require.NoError(t, r.Reassign(OwnedFromBytes([]byte{1})))
	require.NoError(t, r.Reassign(OwnedFromBytes([]byte{2, 2})))
	require.Equal(t, 2, r.Len())
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "none", None.String())
	require.Equal(t, "owned", OwnedHeap.String())
	require.Equal(t, "borrowed", Borrowed.String())
	require.Equal(t, "mmap", Mmap.String())
}
