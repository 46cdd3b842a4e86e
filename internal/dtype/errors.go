package dtype

import "errors"

// Sentinel errors shared across the dtype/schema/storage/tree layers.
// The root package re-exports each of these under the same name so
// errors.Is(err, datatree.ErrKindMismatch) works after any amount of
// wrapping with fmt.Errorf("%w", ...).
var (
	ErrUnknownKind     = errors.New("unknown element kind")
	ErrInvalidLayout   = errors.New("invalid data type layout")
	ErrKindMismatch    = errors.New("kind mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrPathNotFound    = errors.New("path not found")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrIOError         = errors.New("i/o error")
	ErrParseError      = errors.New("schema parse error")
	ErrWriteToSentinel = errors.New("write to empty sentinel")
)
