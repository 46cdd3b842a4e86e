package datatree

import (
	"github.com/scigolib/datatree/internal/dtype"
	"github.com/scigolib/datatree/internal/storage"
)

// Equal reports structural equality: same shape, and for leaves the
// same kind, length, and values (exact match, no widening). Offset,
// stride, and endianness differences do not affect equality as long
// as the decoded values match.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n.dt.Kind != other.dt.Kind {
		return false
	}

	switch n.dt.Kind {
	case dtype.Empty:
		return true
	case dtype.Object:
		if len(n.entries) != len(other.entries) {
			return false
		}
		for i, e := range n.entries {
			o := other.entries[i]
			if e.name != o.name || !e.node.Equal(o.node) {
				return false
			}
		}
		return true
	case dtype.List:
		if len(n.list) != len(other.list) {
			return false
		}
		for i, c := range n.list {
			if !c.Equal(other.list[i]) {
				return false
			}
		}
		return true
	default:
		return leafValuesEqual(n, other)
	}
}

// leafValuesEqual compares two same-kind leaves element by element.
func leafValuesEqual(a, b *Node) bool {
	if a.dt.Count != b.dt.Count {
		return false
	}
	switch a.dt.Kind {
	case dtype.Bool:
		for i := 0; i < a.dt.Count; i++ {
			av, aerr := a.boolAt(i)
			bv, berr := b.boolAt(i)
			if aerr != nil || berr != nil || av != bv {
				return false
			}
		}
		return true
	case dtype.ByteStr:
		as, aerr := a.AsString()
		bs, berr := b.AsString()
		return aerr == nil && berr == nil && as == bs
	case dtype.Int8:
		return numericEqual[int8](a, b)
	case dtype.Int16:
		return numericEqual[int16](a, b)
	case dtype.Int32:
		return numericEqual[int32](a, b)
	case dtype.Int64:
		return numericEqual[int64](a, b)
	case dtype.Uint8:
		return numericEqual[uint8](a, b)
	case dtype.Uint16:
		return numericEqual[uint16](a, b)
	case dtype.Uint32:
		return numericEqual[uint32](a, b)
	case dtype.Uint64:
		return numericEqual[uint64](a, b)
	case dtype.Float32:
		return numericEqual[float32](a, b)
	case dtype.Float64:
		return numericEqual[float64](a, b)
	default:
		return false
	}
}

func numericEqual[T dtype.Numeric](a, b *Node) bool {
	av := dtype.NewArray[T](a.region.Bytes(), a.dt)
	bv := dtype.NewArray[T](b.region.Bytes(), b.dt)
	for i := 0; i < a.dt.Count; i++ {
		x, errA := av.Get(i)
		y, errB := bv.Get(i)
		if errA != nil || errB != nil || x != y {
			return false
		}
	}
	return true
}

// Compare is like Equal but additionally produces a diff tree that
// mirrors the receiver's structure, with a BOOL leaf at each leaf
// position recording whether that leaf matched, and a BOOL leaf in
// place of any structural mismatch. The first return value is the
// same verdict Equal would give.
func (n *Node) Compare(other *Node) (bool, *Node) {
	diff := New()
	ok := n.compareInto(other, diff)
	return ok, diff
}

// setBoolLeaf makes n a length-1 BOOL leaf holding v.
func setBoolLeaf(n *Node, v bool) {
	b := byte(0)
	if v {
		b = 1
	}
	dt, _ := dtype.Default(dtype.Bool)
	n.setLeaf(dt, storage.OwnedFromBytes([]byte{b}))
}

func (n *Node) compareInto(other *Node, diff *Node) bool {
	if n.dt.Kind != other.dt.Kind {
		setBoolLeaf(diff, false)
		return false
	}

	switch n.dt.Kind {
	case dtype.Empty:
		setBoolLeaf(diff, true)
		return true
	case dtype.Object:
		allEqual := len(n.entries) == len(other.entries)
		for i, e := range n.entries {
			childDiff := diff.Fetch(e.name)
			oi, ok := other.index[e.name]
			if !ok {
				setBoolLeaf(childDiff, false)
				allEqual = false
				continue
			}
			if oi != i {
				allEqual = false
			}
			if !e.node.compareInto(other.entries[oi].node, childDiff) {
				allEqual = false
			}
		}
		return allEqual
	case dtype.List:
		allEqual := len(n.list) == len(other.list)
		for i, c := range n.list {
			childDiff := New()
			if i < len(other.list) {
				if !c.compareInto(other.list[i], childDiff) {
					allEqual = false
				}
			} else {
				setBoolLeaf(childDiff, false)
				allEqual = false
			}
			diff.Append(childDiff)
		}
		return allEqual
	default:
		eq := leafValuesEqual(n, other)
		setBoolLeaf(diff, eq)
		return eq
	}
}
