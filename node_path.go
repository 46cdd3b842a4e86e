package datatree

import (
	"strconv"
	"strings"

	"github.com/scigolib/datatree/internal/dtype"
)

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// Fetch resolves a "/"-separated path, coercing this node to OBJECT
// if it is not already one (discarding any prior leaf/list state) and
// auto-creating an empty child for every missing segment. Called on a
// live node it returns a live, mutable node. It never mutates the
// sentinel: called on the shared empty node it returns that same
// sentinel untouched instead of coercing it.
func (n *Node) Fetch(path string) *Node {
	if n.IsSentinel() {
		return emptySentinel
	}
	segs := splitPath(path)
	cur := n
	for _, seg := range segs {
		if err := cur.coerceTo(dtype.Object); err != nil {
			return emptySentinel
		}
		cur = cur.objectChild(seg)
	}
	return cur
}

// objectChild returns the named child, creating an empty one if
// absent. n must already be an OBJECT node.
func (n *Node) objectChild(name string) *Node {
	if i, ok := n.index[name]; ok {
		return n.entries[i].node
	}
	child := New()
	n.index[name] = len(n.entries)
	n.entries = append(n.entries, entry{name: name, node: child})
	return child
}

// Entry performs a read-only path lookup: no coercion, no creation.
// A missing segment or a non-OBJECT ancestor returns the shared empty
// sentinel.
func (n *Node) Entry(path string) *Node {
	segs := splitPath(path)
	cur := n
	for _, seg := range segs {
		if cur.dt.Kind != dtype.Object {
			return emptySentinel
		}
		i, ok := cur.index[seg]
		if !ok {
			return emptySentinel
		}
		cur = cur.entries[i].node
	}
	return cur
}

// Index performs a read-only list lookup by position. An out-of-range
// index or a non-LIST node returns the shared empty sentinel.
func (n *Node) Index(i int) *Node {
	if n.dt.Kind != dtype.List || i < 0 || i >= len(n.list) {
		return emptySentinel
	}
	return n.list[i]
}

// HasPath reports whether path resolves to an existing child. Only
// meaningful on OBJECT nodes (or object-shaped ancestors along path);
// a leaf/list/empty receiver returns false immediately.
func (n *Node) HasPath(path string) bool {
	if len(splitPath(path)) == 0 {
		return n.dt.Kind == dtype.Object
	}
	return !n.Entry(path).IsSentinel()
}

// Remove erases the named child of an OBJECT node. It returns false
// if the node is not an OBJECT, the name is absent, or name is empty;
// it never deletes the root itself.
func (n *Node) Remove(name string) bool {
	if n.dt.Kind != dtype.Object || name == "" {
		return false
	}
	i, ok := n.index[name]
	if !ok {
		return false
	}
	n.entries = append(n.entries[:i], n.entries[i+1:]...)
	delete(n.index, name)
	for name, idx := range n.index {
		if idx > i {
			n.index[name] = idx - 1
		}
	}
	return true
}

// RemoveIndex erases the child at position i of a LIST node. It
// returns false if the node is not a LIST or i is out of range.
func (n *Node) RemoveIndex(i int) bool {
	if n.dt.Kind != dtype.List || i < 0 || i >= len(n.list) {
		return false
	}
	n.list = append(n.list[:i], n.list[i+1:]...)
	return true
}

// NumberOfEntries returns the count of direct children: len(entries)
// for OBJECT, len(list) for LIST, 0 otherwise.
func (n *Node) NumberOfEntries() int {
	switch n.dt.Kind {
	case dtype.Object:
		return len(n.entries)
	case dtype.List:
		return len(n.list)
	default:
		return 0
	}
}

// Paths lists this OBJECT node's children: direct names if expand is
// false, or the full "/"-separated path (with "[i]" for list
// positions) to every descendant leaf if expand is true. Non-OBJECT
// nodes return nil.
func (n *Node) Paths(expand bool) []string {
	if n.dt.Kind != dtype.Object {
		return nil
	}
	if !expand {
		names := make([]string, len(n.entries))
		for i, e := range n.entries {
			names[i] = e.name
		}
		return names
	}

	var out []string
	n.collectLeafPaths("", &out)
	return out
}

func (n *Node) collectLeafPaths(prefix string, out *[]string) {
	switch n.dt.Kind {
	case dtype.Object:
		for _, e := range n.entries {
			next := e.name
			if prefix != "" {
				next = prefix + "/" + e.name
			}
			e.node.collectLeafPaths(next, out)
		}
	case dtype.List:
		for i, c := range n.list {
			next := prefix + "[" + strconv.Itoa(i) + "]"
			c.collectLeafPaths(next, out)
		}
	default:
		if prefix != "" {
			*out = append(*out, prefix)
		}
	}
}
