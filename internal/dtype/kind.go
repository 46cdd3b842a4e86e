// Package dtype implements the primitive type registry, the data-type
// descriptor, and the strided typed array view that the tree package
// binds onto raw memory.
package dtype

import "fmt"

// Kind is the element-type tag of a leaf, or a structural tag for
// OBJECT/LIST/EMPTY nodes.
type Kind uint8

// Kind constants. EMPTY, OBJECT and LIST are structural; the rest are
// leaf element kinds.
const (
	Empty Kind = iota
	Object
	List
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	ByteStr
)

var kindNames = map[Kind]string{
	Empty:   "empty",
	Object:  "object",
	List:    "list",
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	ByteStr: "bytestr",
}

var namesToKind = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns the registry name for the kind, or "unknown_<n>" for
// an unrecognized value.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown_%d", uint8(k))
}

// IsStructural reports whether the kind is EMPTY, OBJECT, or LIST.
func (k Kind) IsStructural() bool {
	return k == Empty || k == Object || k == List
}

// IsNumeric reports whether the kind is one of the ten numeric leaf
// kinds (everything except EMPTY/OBJECT/LIST/BOOL/BYTESTR).
func (k Kind) IsNumeric() bool {
	switch k {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Float32, Float64:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether the kind describes a leaf (numeric, bool, or
// byte-string).
func (k Kind) IsLeaf() bool {
	return !k.IsStructural()
}

// LookupKind resolves a registry name (e.g. "uint32") to its Kind.
// The bool result is false for an unrecognized name.
func LookupKind(name string) (Kind, bool) {
	k, ok := namesToKind[name]
	return k, ok
}

// NativeSize returns the default on-the-wire byte size for a leaf
// kind: the natural width for numeric/bool kinds, or 0 for EMPTY,
// OBJECT, LIST, and BYTESTR (whose size is caller-supplied since a
// byte string has no fixed element width).
func NativeSize(k Kind) int {
	switch k {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}
