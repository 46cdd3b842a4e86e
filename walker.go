package datatree

import (
	"fmt"

	"github.com/scigolib/datatree/internal/dtype"
	"github.com/scigolib/datatree/internal/schema"
	"github.com/scigolib/datatree/internal/storage"
	"github.com/scigolib/datatree/internal/utils"
)

// walkSchema binds a parsed schema node onto base starting at offset,
// writing the resulting structure into n. It returns the offset just
// past everything it wrote (offset + its own total_bytes), so the
// caller can advance a running sibling offset. Per the design note,
// base is an externally managed buffer handle the walker never frees;
// ownership transfer is entirely the caller's job, both for Load and
// for any direct construction from a schema over borrowed bytes.
func walkSchema(n *Node, sn *schema.Node, base []byte, offset int) (int, error) {
	switch sn.Shape {
	case schema.ShapeCompoundList:
		if err := n.coerceTo(dtype.List); err != nil {
			return offset, err
		}
		length := sn.Length
		if length == 0 {
			length = 1
		}
		cur := offset
		for i := 0; i < length; i++ {
			child := New()
			next, err := walkSchema(child, sn.Inner, base, cur)
			if err != nil {
				return offset, fmt.Errorf("top[%d]: %w", i, err)
			}
			n.list = append(n.list, child)
			cur = next
		}
		return cur, nil

	case schema.ShapeLeaf:
		return walkLeaf(n, sn, base, offset)

	case schema.ShapeObject:
		if err := n.coerceTo(dtype.Object); err != nil {
			return offset, err
		}
		cur := offset
		for _, e := range sn.Entries {
			child := New()
			next, err := walkSchema(child, e.Value, base, cur)
			if err != nil {
				return offset, fmt.Errorf("%s: %w", e.Name, err)
			}
			n.index[e.Name] = len(n.entries)
			n.entries = append(n.entries, entry{name: e.Name, node: child})
			cur = next
		}
		return cur, nil

	case schema.ShapeList:
		if err := n.coerceTo(dtype.List); err != nil {
			return offset, err
		}
		cur := offset
		for i, item := range sn.Items {
			child := New()
			next, err := walkSchema(child, item, base, cur)
			if err != nil {
				return offset, fmt.Errorf("[%d]: %w", i, err)
			}
			n.list = append(n.list, child)
			cur = next
		}
		return cur, nil

	default:
		return offset, fmt.Errorf("%w: unrecognized schema shape", ErrParseError)
	}
}

func walkLeaf(n *Node, sn *schema.Node, base []byte, offset int) (int, error) {
	kind, ok := dtype.LookupKind(sn.DTypeName)
	if !ok {
		return offset, fmt.Errorf("%w: %q", ErrUnknownKind, sn.DTypeName)
	}

	length := sn.Length
	elemBytes := dtype.NativeSize(kind)

	leafOffset := offset
	if sn.Offset != nil {
		leafOffset = *sn.Offset
	}
	stride := elemBytes
	if sn.Stride != nil {
		stride = *sn.Stride
	}
	endian := dtype.DefaultEndian
	if sn.Endian != "" {
		e, ok := dtype.ParseEndian(sn.Endian)
		if !ok {
			return offset, fmt.Errorf("%w: unknown endian %q", ErrParseError, sn.Endian)
		}
		endian = e
	}

	dt, err := dtype.New(kind, length, leafOffset, stride, elemBytes, endian)
	if err != nil {
		return offset, wrapErr("walk leaf", err)
	}
	if err := n.setLeaf(dt, storage.BorrowedFromBytes(base)); err != nil {
		return offset, err
	}

	// Siblings still advance by the walker's own running offset, not
	// by an explicit leaf offset override.
	return offset + dt.TotalBytes(), nil
}

// WalkSchema parses schemaText and binds it onto base (a borrowed,
// externally owned buffer) starting at byte 0, writing the result
// into n.
func WalkSchema(n *Node, schemaText []byte, base []byte) error {
	sn, err := schema.Parse(schemaText)
	if err != nil {
		return wrapErr("walk schema", err)
	}
	if err := sn.Validate(); err != nil {
		return wrapErr("walk schema", err)
	}
	if _, err := walkSchema(n, sn, base, 0); err != nil {
		return wrapErr("walk schema", err)
	}
	return nil
}

// schemaTotalBytes computes the sum, depth-first, of every leaf's
// total bytes a parsed schema describes — used to size Load/Mmap's
// backing buffer before the walk runs.
func schemaTotalBytes(sn *schema.Node) (int, error) {
	switch sn.Shape {
	case schema.ShapeLeaf:
		kind, ok := dtype.LookupKind(sn.DTypeName)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownKind, sn.DTypeName)
		}
		elemBytes := dtype.NativeSize(kind)
		stride := elemBytes
		if sn.Stride != nil {
			stride = *sn.Stride
		}
		total, err := utils.SafeMultiply(uint64(sn.Length), uint64(stride))
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
		}
		return int(total), nil
	case schema.ShapeCompoundList:
		inner, err := schemaTotalBytes(sn.Inner)
		if err != nil {
			return 0, err
		}
		length := sn.Length
		if length == 0 {
			length = 1
		}
		return inner * length, nil
	case schema.ShapeObject:
		total := 0
		for _, e := range sn.Entries {
			n, err := schemaTotalBytes(e.Value)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	case schema.ShapeList:
		total := 0
		for _, item := range sn.Items {
			n, err := schemaTotalBytes(item)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized schema shape", ErrParseError)
	}
}
