package dtype

import (
	"fmt"

	"github.com/scigolib/datatree/internal/utils"
)

// DataType describes how to interpret a region of bytes for one leaf:
// element kind, element count, byte offset from a base pointer, byte
// stride between consecutive elements, per-element byte size, and
// endianness. It is a plain value — copying a DataType never touches
// any backing memory.
type DataType struct {
	Kind       Kind
	Count      int
	Offset     int
	Stride     int
	ElemBytes  int
	Endianness Endian
}

// Default returns a descriptor for a single element of kind k at
// offset 0, with ElemBytes and Stride set to the kind's native size
// and endianness DEFAULT. Structural kinds get a zero-valued
// descriptor (count, offset, stride, elem bytes all zero).
func Default(k Kind) (DataType, error) {
	if k.IsStructural() {
		return DataType{Kind: k}, nil
	}

	size := NativeSize(k)
	if size == 0 && k != ByteStr {
		return DataType{}, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}

	return DataType{
		Kind:      k,
		Count:     1,
		Offset:    0,
		Stride:    size,
		ElemBytes: size,
	}, nil
}

// New validates and constructs a descriptor from explicit fields.
func New(k Kind, count, offset, stride, elemBytes int, endian Endian) (DataType, error) {
	if k.IsStructural() {
		return DataType{Kind: k}, nil
	}

	if count < 0 {
		return DataType{}, fmt.Errorf("%w: negative count %d", ErrInvalidLayout, count)
	}

	native := NativeSize(k)
	if k != ByteStr && elemBytes < native {
		return DataType{}, fmt.Errorf("%w: elem_bytes %d smaller than native size %d for %s",
			ErrInvalidLayout, elemBytes, native, k)
	}

	if stride < elemBytes {
		return DataType{}, fmt.Errorf("%w: stride %d smaller than elem_bytes %d", ErrInvalidLayout, stride, elemBytes)
	}

	return DataType{
		Kind:       k,
		Count:      count,
		Offset:     offset,
		Stride:     stride,
		ElemBytes:  elemBytes,
		Endianness: endian,
	}, nil
}

// IsCompatible reports whether two descriptors agree on kind,
// elem_bytes, endianness, and count. Offset and stride are locators,
// not shape, and need not match.
func (d DataType) IsCompatible(other DataType) bool {
	return d.Kind == other.Kind &&
		d.ElemBytes == other.ElemBytes &&
		d.Endianness == other.Endianness &&
		d.Count == other.Count
}

// TotalBytes returns count*stride for numeric/bool/bytestr kinds, and
// 0 for structural kinds. Offset does not count toward the total; it
// is a locator, not a size.
func (d DataType) TotalBytes() int {
	if d.Kind.IsStructural() || d.Count == 0 {
		return 0
	}
	return d.Count * d.Stride
}

// TotalBytesChecked is TotalBytes with an overflow/sanity guard,
// for use while walking caller-supplied schema text.
func (d DataType) TotalBytesChecked() (int, error) {
	if d.Kind.IsStructural() || d.Count == 0 {
		return 0, nil
	}

	total, err := utils.SafeMultiply(uint64(d.Count), uint64(d.Stride))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	if total > utils.MaxLeafBytes {
		return 0, fmt.Errorf("%w: leaf size %d exceeds limit %d", ErrInvalidLayout, total, uint64(utils.MaxLeafBytes))
	}
	return int(total), nil
}

// ElementAddress returns base + offset + i*stride, the byte address of
// element i relative to a base pointer.
func (d DataType) ElementAddress(i int) int {
	return d.Offset + i*d.Stride
}

// String renders a short debugging form, e.g. "uint32[10]@4+8".
func (d DataType) String() string {
	if d.Kind.IsStructural() {
		return d.Kind.String()
	}
	return fmt.Sprintf("%s[%d]@%d+%d", d.Kind, d.Count, d.Offset, d.Stride)
}
