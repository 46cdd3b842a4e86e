package schema

import "fmt"

// Validate walks the tree and confirms every leaf's dtype name
// resolves to a known kind and every length/offset/stride is
// non-negative. It does not check byte-level layout; DataType.New
// does that once the walker resolves offsets.
func (n *Node) Validate() error {
	return n.validate("$")
}

func (n *Node) validate(path string) error {
	if n == nil {
		return nil
	}

	switch n.Shape {
	case ShapeLeaf:
		if _, ok := n.resolvedKind(); !ok {
			return fmt.Errorf("%s: %w: %q", path, ErrUnknownKind, n.DTypeName)
		}
		if n.Length < 0 {
			return fmt.Errorf(`%s: %w: negative "length"`, path, ErrMalformed)
		}
		if n.Offset != nil && *n.Offset < 0 {
			return fmt.Errorf(`%s: %w: negative "offset"`, path, ErrMalformed)
		}
		if n.Stride != nil && *n.Stride < 0 {
			return fmt.Errorf(`%s: %w: negative "stride"`, path, ErrMalformed)
		}
		return nil

	case ShapeCompoundList:
		if n.Length < 0 {
			return fmt.Errorf(`%s: %w: negative "length"`, path, ErrMalformed)
		}
		return n.Inner.validate(path + ".dtype")

	case ShapeObject:
		for _, e := range n.Entries {
			if err := e.Value.validate(path + "/" + e.Name); err != nil {
				return err
			}
		}
		return nil

	case ShapeList:
		for i, item := range n.Items {
			if err := item.validate(fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("%s: %w: unrecognized shape", path, ErrMalformed)
	}
}
