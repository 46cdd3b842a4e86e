package dtype

import (
	"fmt"
	"math"

	"github.com/scigolib/datatree/internal/utils"
)

// Numeric is the set of Go types the typed array view can read and
// write. It mirrors the ten numeric ElementKinds one-to-one.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Array is a non-owning strided accessor over raw bytes plus a
// DataType, parametric over one of the ten numeric kinds. It never
// allocates or frees the backing bytes; that is the owning Node's job.
type Array[T Numeric] struct {
	base  []byte
	dtype DataType
}

// NewArray builds a view over base using dtype's offset/stride/count.
// base must be at least dtype.Offset+dtype.TotalBytes() long relative
// to the slice's own index 0. Offsets are counted from base's index 0,
// so a leaf bound by the schema walker passes the whole walked buffer
// together with the leaf's absolute offset into it.
func NewArray[T Numeric](base []byte, dt DataType) Array[T] {
	return Array[T]{base: base, dtype: dt}
}

// Len returns the element count.
func (a Array[T]) Len() int {
	return a.dtype.Count
}

// DataType returns the descriptor the view was built from.
func (a Array[T]) DataType() DataType {
	return a.dtype
}

// Base returns the raw backing slice the view was built over. Callers
// adopting the view as a borrowed leaf need this to share the same
// underlying array rather than the (unsliceable) view alone.
func (a Array[T]) Base() []byte {
	return a.base
}

func (a Array[T]) elemSlice(i int) ([]byte, error) {
	if i < 0 || i >= a.dtype.Count {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, a.dtype.Count)
	}
	start := a.dtype.ElementAddress(i)
	end := start + a.dtype.ElemBytes
	if end > len(a.base) {
		return nil, fmt.Errorf("%w: index %d addresses byte %d past buffer length %d", ErrIndexOutOfRange, i, end, len(a.base))
	}
	return a.base[start:end], nil
}

// Get reads element i, byte-swapping if the view's declared
// endianness differs from host order.
func (a Array[T]) Get(i int) (T, error) {
	b, err := a.elemSlice(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeElem[T](b, a.dtype.Endianness), nil
}

// Set writes v into element i, byte-swapping on the way out if the
// view's declared endianness differs from host order.
func (a Array[T]) Set(i int, v T) error {
	b, err := a.elemSlice(i)
	if err != nil {
		return err
	}
	encodeElem(b, v, a.dtype.Endianness)
	return nil
}

// CopyFromContiguous copies a contiguous source slice of exactly
// Len() elements into the view, honoring stride (and endianness).
func (a Array[T]) CopyFromContiguous(src []T) error {
	if len(src) != a.dtype.Count {
		return fmt.Errorf("%w: source has %d elements, view has %d", ErrInvalidLayout, len(src), a.dtype.Count)
	}
	for i, v := range src {
		if err := a.Set(i, v); err != nil {
			return err
		}
	}
	return nil
}

// CopyToContiguous is the inverse of CopyFromContiguous: it fills dst
// (which must have length Len()) by reading every element of the view.
func (a Array[T]) CopyToContiguous(dst []T) error {
	if len(dst) != a.dtype.Count {
		return fmt.Errorf("%w: destination has %d elements, view has %d", ErrInvalidLayout, len(dst), a.dtype.Count)
	}
	for i := range dst {
		v, err := a.Get(i)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// decodeElem reads a single element of width len(b) from b. The
// internal codec below is little-endian; bytes are reversed first when
// the declared endianness resolves to big-endian. b must be exactly
// the element's natural width for its numeric kind.
func decodeElem[T Numeric](b []byte, e Endian) T {
	buf := utils.GetBuffer(len(b))
	defer utils.ReleaseBuffer(buf)
	copy(buf, b)
	if e.Resolve() == BigEndian {
		reverse(buf)
	}

	var zero T
	switch any(zero).(type) {
	case int8:
		return any(int8(buf[0])).(T)
	case uint8:
		return any(uint8(buf[0])).(T)
	case int16:
		return any(int16(le16(buf))).(T)
	case uint16:
		return any(le16(buf)).(T)
	case int32:
		return any(int32(le32(buf))).(T)
	case uint32:
		return any(le32(buf)).(T)
	case int64:
		return any(int64(le64(buf))).(T)
	case uint64:
		return any(le64(buf)).(T)
	case float32:
		return any(math.Float32frombits(le32(buf))).(T)
	case float64:
		return any(math.Float64frombits(le64(buf))).(T)
	default:
		return zero
	}
}

// encodeElem writes v into b as little-endian, then reverses in place
// if e resolves to big-endian.
func encodeElem[T Numeric](b []byte, v T, e Endian) {
	switch x := any(v).(type) {
	case int8:
		b[0] = byte(x)
	case uint8:
		b[0] = x
	case int16:
		putLE16(b, uint16(x))
	case uint16:
		putLE16(b, x)
	case int32:
		putLE32(b, uint32(x))
	case uint32:
		putLE32(b, x)
	case int64:
		putLE64(b, uint64(x))
	case uint64:
		putLE64(b, x)
	case float32:
		putLE32(b, math.Float32bits(x))
	case float64:
		putLE64(b, math.Float64bits(x))
	}
	if e.Resolve() == BigEndian {
		reverse(b)
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func le16(b []byte) uint16 { return uint16(b[0]) | uint16(b[1])<<8 }
func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
func le64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func putLE16(b []byte, v uint16) { b[0] = byte(v); b[1] = byte(v >> 8) }
func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
func putLE64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
}
