package datatree

import "github.com/scigolib/datatree/internal/dtype"

// Append coerces n to LIST if it is not already one, then pushes a
// new child assigned from value via assignFrom: the node structure is
// copied, owned leaf bytes are copied, and borrowed or mmapped leaf
// bytes are shared with value.
func (n *Node) Append(value *Node) error {
	if err := n.guardSentinel(); err != nil {
		return err
	}
	if err := n.coerceTo(dtype.List); err != nil {
		return err
	}
	child := New()
	if err := child.assignFrom(value); err != nil {
		return wrapErr("append", err)
	}
	n.list = append(n.list, child)
	return nil
}

// AppendScalar is a convenience wrapper that builds a length-1 leaf of
// kind T and appends it.
func AppendScalar[T dtype.Numeric](n *Node, v T) error {
	tmp := New()
	if err := SetScalar(tmp, v); err != nil {
		return err
	}
	return n.Append(tmp)
}

// AppendVector is a convenience wrapper that builds a contiguous
// vector leaf of kind T and appends it.
func AppendVector[T dtype.Numeric](n *Node, vs []T) error {
	tmp := New()
	if err := SetVector(tmp, vs); err != nil {
		return err
	}
	return n.Append(tmp)
}
