package datatree

import "github.com/scigolib/datatree/internal/dtype"

// kindOf resolves a Numeric type parameter to its registry Kind. It
// mirrors the type switch dtype.Array's codec uses, just once per
// call site instead of once per element.
func kindOf[T dtype.Numeric]() dtype.Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return dtype.Int8
	case int16:
		return dtype.Int16
	case int32:
		return dtype.Int32
	case int64:
		return dtype.Int64
	case uint8:
		return dtype.Uint8
	case uint16:
		return dtype.Uint16
	case uint32:
		return dtype.Uint32
	case uint64:
		return dtype.Uint64
	case float32:
		return dtype.Float32
	case float64:
		return dtype.Float64
	default:
		return dtype.Empty
	}
}
