// Package schema parses the schema text grammar (§6 of the
// specification: a JSON superset with order-preserving objects) into
// an internal tree, and serializes that tree back to canonical text.
// Binding a parsed schema onto a byte buffer (the "schema walker") is
// implemented by the tree package, which owns the Node type the
// walker produces.
package schema

import "github.com/scigolib/datatree/internal/dtype"

// Shape discriminates the four schema-node shapes the grammar
// produces.
type Shape uint8

const (
	// ShapeLeaf is `"<kind>"` or `{"dtype":"<kind>","length":N,...}`.
	ShapeLeaf Shape = iota
	// ShapeCompoundList is `{"dtype":{...},"length":N}`.
	ShapeCompoundList
	// ShapeObject is any other JSON object; keys are child names.
	ShapeObject
	// ShapeList is a JSON array.
	ShapeList
)

// Entry is one (name, value) pair of an ShapeObject node, in the
// order it appeared in the source text.
type Entry struct {
	Name  string
	Value *Node
}

// Node is one node of the parsed schema tree.
type Node struct {
	Shape Shape

	// ShapeLeaf fields.
	DTypeName string
	Length    int
	Offset    *int // nil unless the schema text supplied an explicit offset
	Stride    *int // nil unless the schema text supplied an explicit stride
	Endian    string

	// ShapeCompoundList fields.
	Inner *Node // the repeated compound's own schema

	// ShapeObject fields, in source order.
	Entries []Entry

	// ShapeList fields.
	Items []*Node
}

// Leaf returns a ShapeLeaf node for element kind name with the given
// length.
func Leaf(kindName string, length int) *Node {
	return &Node{Shape: ShapeLeaf, DTypeName: kindName, Length: length}
}

// Equal reports structural equality between two parsed schema trees,
// per spec.md §4.3 ("equality is structural").
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Shape != other.Shape {
		return false
	}

	switch n.Shape {
	case ShapeLeaf:
		return n.DTypeName == other.DTypeName &&
			n.Length == other.Length &&
			intPtrEqual(n.Offset, other.Offset) &&
			intPtrEqual(n.Stride, other.Stride) &&
			n.Endian == other.Endian
	case ShapeCompoundList:
		return n.Length == other.Length && n.Inner.Equal(other.Inner)
	case ShapeObject:
		if len(n.Entries) != len(other.Entries) {
			return false
		}
		for i, e := range n.Entries {
			o := other.Entries[i]
			if e.Name != o.Name || !e.Value.Equal(o.Value) {
				return false
			}
		}
		return true
	case ShapeList:
		if len(n.Items) != len(other.Items) {
			return false
		}
		for i, item := range n.Items {
			if !item.Equal(other.Items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// resolvedKind looks up DTypeName in the dtype registry.
func (n *Node) resolvedKind() (dtype.Kind, bool) {
	return dtype.LookupKind(n.DTypeName)
}
