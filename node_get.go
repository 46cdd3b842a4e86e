package datatree

import (
	"fmt"
	"strconv"

	"github.com/scigolib/datatree/internal/dtype"
)

// As reads the node as a scalar of kind T. The current leaf kind must
// equal T exactly; a mismatch signals ErrKindMismatch (no implicit
// widening here — that's what ToInt64/ToUint64/ToFloat64 are for).
func As[T dtype.Numeric](n *Node, i int) (T, error) {
	var zero T
	if n.dt.Kind != kindOf[T]() {
		return zero, wrapErr("as", fmt.Errorf("%w: leaf is %s", ErrKindMismatch, n.dt.Kind))
	}
	arr := dtype.NewArray[T](n.region.Bytes(), n.dt)
	v, err := arr.Get(i)
	if err != nil {
		return zero, wrapErr("as", err)
	}
	return v, nil
}

// SetAt writes element i of an already-bound leaf of kind T in place,
// honoring the leaf's existing offset/stride/endianness. Unlike
// SetScalar/SetVector, it never reallocates or changes storage mode —
// this is how a leaf bound by the schema walker (borrowed, or mmap)
// gets mutated in place. The current leaf kind must equal T exactly.
func SetAt[T dtype.Numeric](n *Node, i int, v T) error {
	if err := n.guardSentinel(); err != nil {
		return err
	}
	if n.dt.Kind != kindOf[T]() {
		return wrapErr("set_at", fmt.Errorf("%w: leaf is %s", ErrKindMismatch, n.dt.Kind))
	}
	arr := dtype.NewArray[T](n.region.Bytes(), n.dt)
	return wrapErr("set_at", arr.Set(i, v))
}

// AsArray returns a typed array view over the node's full leaf
// region. The current leaf kind must equal T exactly.
func AsArray[T dtype.Numeric](n *Node) (dtype.Array[T], error) {
	var zero dtype.Array[T]
	if n.dt.Kind != kindOf[T]() {
		return zero, wrapErr("as_array", fmt.Errorf("%w: leaf is %s", ErrKindMismatch, n.dt.Kind))
	}
	return dtype.NewArray[T](n.region.Bytes(), n.dt), nil
}

// ToInt64 widens element 0 of any numeric leaf (or a BOOL leaf) to
// int64.
func (n *Node) ToInt64() (int64, error) {
	switch n.dt.Kind {
	case dtype.Int8:
		v, err := As[int8](n, 0)
		return int64(v), err
	case dtype.Int16:
		v, err := As[int16](n, 0)
		return int64(v), err
	case dtype.Int32:
		v, err := As[int32](n, 0)
		return int64(v), err
	case dtype.Int64:
		return As[int64](n, 0)
	case dtype.Uint8:
		v, err := As[uint8](n, 0)
		return int64(v), err
	case dtype.Uint16:
		v, err := As[uint16](n, 0)
		return int64(v), err
	case dtype.Uint32:
		v, err := As[uint32](n, 0)
		return int64(v), err
	case dtype.Uint64:
		v, err := As[uint64](n, 0)
		return int64(v), err
	case dtype.Float32:
		v, err := As[float32](n, 0)
		return int64(v), err
	case dtype.Float64:
		v, err := As[float64](n, 0)
		return int64(v), err
	case dtype.Bool:
		v, err := n.boolAt(0)
		if v {
			return 1, err
		}
		return 0, err
	default:
		return 0, wrapErr("to_int64", fmt.Errorf("%w: leaf is %s", ErrKindMismatch, n.dt.Kind))
	}
}

// ToUint64 widens element 0 of any numeric leaf (or a BOOL leaf) to
// uint64.
func (n *Node) ToUint64() (uint64, error) {
	v, err := n.ToInt64()
	return uint64(v), err
}

// ToFloat64 widens element 0 of any numeric leaf to float64.
func (n *Node) ToFloat64() (float64, error) {
	switch n.dt.Kind {
	case dtype.Float32:
		v, err := As[float32](n, 0)
		return float64(v), err
	case dtype.Float64:
		return As[float64](n, 0)
	default:
		v, err := n.ToInt64()
		return float64(v), err
	}
}

// boolAt reads element i of a BOOL leaf (stored as a single byte,
// nonzero meaning true).
func (n *Node) boolAt(i int) (bool, error) {
	if n.dt.Kind != dtype.Bool {
		return false, wrapErr("bool", fmt.Errorf("%w: leaf is %s", ErrKindMismatch, n.dt.Kind))
	}
	b := n.region.Bytes()
	off := n.dt.ElementAddress(i)
	if off < 0 || off >= len(b) {
		return false, wrapErr("bool", ErrIndexOutOfRange)
	}
	return b[off] != 0, nil
}

// AsString reads a BYTESTR leaf's raw bytes as a string.
func (n *Node) AsString() (string, error) {
	if n.dt.Kind != dtype.ByteStr {
		return "", wrapErr("as_string", fmt.Errorf("%w: leaf is %s", ErrKindMismatch, n.dt.Kind))
	}
	total, err := n.dt.TotalBytesChecked()
	if err != nil {
		return "", wrapErr("as_string", err)
	}
	b := n.region.Bytes()
	start := n.dt.Offset
	if start+total > len(b) {
		return "", wrapErr("as_string", ErrIndexOutOfRange)
	}
	return string(b[start : start+total]), nil
}

// ToString renders the node as JSON-like text, values included. See
// Node.render in node_render.go for the recursive implementation.
func (n *Node) ToString() string {
	return n.render(true)
}

// scalarText formats a single leaf value (widened for numeric/bool
// kinds, quoted for bytestr) as text. Used by render's leaf case,
// which ToString goes through.
func (n *Node) scalarText() string {
	switch n.dt.Kind {
	case dtype.ByteStr:
		s, err := n.AsString()
		if err != nil {
			return ""
		}
		return strconv.Quote(s)
	case dtype.Bool:
		v, err := n.boolAt(0)
		if err != nil {
			return ""
		}
		return strconv.FormatBool(v)
	case dtype.Float32, dtype.Float64:
		f, err := n.ToFloat64()
		if err != nil {
			return ""
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		i, err := n.ToInt64()
		if err != nil {
			return ""
		}
		return strconv.FormatInt(i, 10)
	}
}
