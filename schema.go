package datatree

import "github.com/scigolib/datatree/internal/schema"

// Schema is the parsed form of schema text (§6): a value type that
// round-trips to canonical text and reports the total byte size its
// leaves describe.
type Schema struct {
	root *schema.Node
}

// ParseSchema parses schema text (the JSON superset described in §6)
// into a Schema. It also validates every leaf's dtype name against
// the type registry.
func ParseSchema(text []byte) (Schema, error) {
	n, err := schema.Parse(text)
	if err != nil {
		return Schema{}, wrapErr("parse schema", err)
	}
	if err := n.Validate(); err != nil {
		return Schema{}, wrapErr("parse schema", err)
	}
	return Schema{root: n}, nil
}

// ToJSON renders the schema back to canonical text.
func (s Schema) ToJSON() string {
	if s.root == nil {
		return "null"
	}
	return s.root.ToJSON()
}

// TotalBytes sums, depth-first, the total bytes of every leaf the
// schema describes.
func (s Schema) TotalBytes() (int, error) {
	if s.root == nil {
		return 0, nil
	}
	return schemaTotalBytes(s.root)
}

// Equal reports structural equality between two schemas.
func (s Schema) Equal(other Schema) bool {
	if s.root == nil || other.root == nil {
		return s.root == other.root
	}
	return s.root.Equal(other.root)
}

// Walk binds the schema onto base (a borrowed, externally owned
// buffer) starting at byte 0, writing the result into n.
func (s Schema) Walk(n *Node, base []byte) error {
	if s.root == nil {
		return wrapErr("walk", ErrParseError)
	}
	if _, err := walkSchema(n, s.root, base, 0); err != nil {
		return wrapErr("walk", err)
	}
	return nil
}
