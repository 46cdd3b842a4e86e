package datatree

import (
	"github.com/scigolib/datatree/internal/dtype"
	"github.com/scigolib/datatree/internal/storage"
)

// SetScalar discards n's prior state, allocates sizeof(T) bytes, and
// writes v as a length-1 leaf of kind T.
func SetScalar[T dtype.Numeric](n *Node, v T) error {
	if err := n.guardSentinel(); err != nil {
		return err
	}
	k := kindOf[T]()
	dt, err := dtype.Default(k)
	if err != nil {
		return wrapErr("set scalar", err)
	}
	buf := make([]byte, dt.TotalBytes())
	if err := n.setLeaf(dt, storage.OwnedFromBytes(buf)); err != nil {
		return err
	}
	arr := dtype.NewArray[T](n.region.Bytes(), n.dt)
	return wrapErr("set scalar", arr.Set(0, v))
}

// SetVector discards n's prior state, allocates n*sizeof(T) bytes,
// and copies vs in as a contiguous length-len(vs) leaf of kind T.
func SetVector[T dtype.Numeric](n *Node, vs []T) error {
	if err := n.guardSentinel(); err != nil {
		return err
	}
	k := kindOf[T]()
	elemBytes := dtype.NativeSize(k)
	dt, err := dtype.New(k, len(vs), 0, elemBytes, elemBytes, dtype.DefaultEndian)
	if err != nil {
		return wrapErr("set vector", err)
	}
	buf := make([]byte, dt.TotalBytes())
	if err := n.setLeaf(dt, storage.OwnedFromBytes(buf)); err != nil {
		return err
	}
	arr := dtype.NewArray[T](n.region.Bytes(), n.dt)
	return wrapErr("set vector", arr.CopyFromContiguous(vs))
}

// SetArrayView adopts arr's backing bytes as a borrowed leaf; no
// allocation or copy occurs.
func SetArrayView[T dtype.Numeric](n *Node, arr dtype.Array[T]) error {
	if err := n.guardSentinel(); err != nil {
		return err
	}
	return n.setLeaf(arr.DataType(), storage.BorrowedFromBytes(arr.Base()))
}

// SetDescriptor records dt without provisioning storage. The caller
// must follow up with SetDescriptorPointer or a schema walk before
// any typed accessor is used.
func SetDescriptor(n *Node, dt dtype.DataType) error {
	if err := n.guardSentinel(); err != nil {
		return err
	}
	return n.setLeaf(dt, storage.EmptyRegion())
}

// SetDescriptorPointer binds dt as a borrowed leaf over ptr.
func SetDescriptorPointer(n *Node, dt dtype.DataType, ptr []byte) error {
	if err := n.guardSentinel(); err != nil {
		return err
	}
	return n.setLeaf(dt, storage.BorrowedFromBytes(ptr))
}
