// Package datatree implements a hierarchical, self-describing,
// schema-driven data tree for scientific computing. A Node is a leaf
// (a typed array of numeric elements at a specified memory layout),
// an ordered mapping from name to child node, or an ordered list of
// child nodes; its storage may be heap-owned, borrowed from an
// external buffer, or backed by a memory-mapped file.
package datatree

import (
	"github.com/scigolib/datatree/internal/dtype"
	"github.com/scigolib/datatree/internal/storage"
)

// entry is one (name, child) pair of an object Node, kept in
// insertion order.
type entry struct {
	name string
	node *Node
}

// Node is the tagged-variant tree entity described in §3 of the
// system's data model: it holds exactly one of empty, leaf, object,
// or list state, discriminated by dt.Kind.
type Node struct {
	dt     dtype.DataType
	region storage.Region

	entries []entry
	index   map[string]int // name -> position in entries

	list []*Node

	// backing holds the whole-tree mmap or loaded-file region when
	// this node is the root produced by Load/Mmap and is itself
	// structural (OBJECT/LIST), so no single leaf's region owns it.
	// Every leaf beneath the root still borrows directly from the
	// same bytes; this field exists solely so Reset on the root can
	// unmap/release them. Leaf roots use region directly instead and
	// leave this nil.
	backing *storage.Region
}

// New returns an empty Node (kind EMPTY, storage None).
func New() *Node {
	dt, _ := dtype.Default(dtype.Empty)
	return &Node{dt: dt}
}

// Kind reports the node's current discriminant.
func (n *Node) Kind() dtype.Kind { return n.dt.Kind }

// DataType returns the node's descriptor. For OBJECT/LIST/EMPTY nodes
// every numeric field is zero.
func (n *Node) DataType() dtype.DataType { return n.dt }

func (n *Node) IsEmpty() bool  { return n.dt.Kind == dtype.Empty }
func (n *Node) IsLeaf() bool   { return n.dt.Kind.IsLeaf() }
func (n *Node) IsObject() bool { return n.dt.Kind == dtype.Object }
func (n *Node) IsList() bool   { return n.dt.Kind == dtype.List }

// Reset releases any owned/mmapped storage and discards children,
// returning the node to EMPTY. This is the release half of every
// reset-before-adopt transition.
func (n *Node) Reset() error {
	if err := n.region.Release(); err != nil {
		return wrapErr("reset", err)
	}
	if n.backing != nil {
		if err := n.backing.Release(); err != nil {
			return wrapErr("reset", err)
		}
		n.backing = nil
	}
	n.entries = nil
	n.index = nil
	n.list = nil
	dt, _ := dtype.Default(dtype.Empty)
	n.dt = dt
	return nil
}

// coerceTo releases existing storage/children (if any) and installs
// the requested structural shape, unless the node already has that
// shape. It is the single point where every mutating accessor
// performs its shape transition, per the design note that recommends
// concentrating coercion in one helper rather than scattering it.
func (n *Node) coerceTo(kind dtype.Kind) error {
	if n.dt.Kind == kind {
		return nil
	}
	if err := n.Reset(); err != nil {
		return err
	}
	dt, err := dtype.Default(kind)
	if err != nil {
		return wrapErr("coerce", err)
	}
	n.dt = dt
	if kind == dtype.Object {
		n.index = make(map[string]int)
	}
	return nil
}

// setLeaf installs a leaf descriptor and storage region, discarding any
// prior children per "setting a leaf value into a previously-
// structural node first discards its children".
func (n *Node) setLeaf(dt dtype.DataType, region storage.Region) error {
	if err := n.Reset(); err != nil {
		return err
	}
	n.dt = dt
	n.region = region
	return nil
}

// assignFrom implements Node-to-Node assignment: deep-copy if src
// owns its bytes, share if src borrows, and mmap sources are treated
// as borrowed (never a second mmap owner). Structural children are
// deep-copied recursively.
func (n *Node) assignFrom(src *Node) error {
	if err := n.Reset(); err != nil {
		return err
	}
	n.dt = src.dt

	switch src.dt.Kind {
	case dtype.Empty:
		return nil
	case dtype.Object:
		n.index = make(map[string]int, len(src.entries))
		for _, e := range src.entries {
			child := New()
			if err := child.assignFrom(e.node); err != nil {
				return err
			}
			n.index[e.name] = len(n.entries)
			n.entries = append(n.entries, entry{name: e.name, node: child})
		}
		return nil
	case dtype.List:
		n.list = make([]*Node, 0, len(src.list))
		for _, c := range src.list {
			child := New()
			if err := child.assignFrom(c); err != nil {
				return err
			}
			n.list = append(n.list, child)
		}
		return nil
	default:
		return n.region.Reassign(src.region)
	}
}
