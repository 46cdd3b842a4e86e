package datatree

import (
	"github.com/scigolib/datatree/internal/dtype"
	"github.com/scigolib/datatree/internal/utils"
)

// Sentinel errors, re-exported from internal/dtype so errors.Is works
// against a single canonical value regardless of which internal layer
// (dtype, schema, storage, or this package) raised it.
var (
	ErrUnknownKind     = dtype.ErrUnknownKind
	ErrInvalidLayout   = dtype.ErrInvalidLayout
	ErrKindMismatch    = dtype.ErrKindMismatch
	ErrIndexOutOfRange = dtype.ErrIndexOutOfRange
	ErrPathNotFound    = dtype.ErrPathNotFound
	ErrShapeMismatch   = dtype.ErrShapeMismatch
	ErrIOError         = dtype.ErrIOError
	ErrParseError      = dtype.ErrParseError
	ErrWriteToSentinel = dtype.ErrWriteToSentinel
)

// TreeError is the structured error type every public operation wraps
// its failures in: a short context string plus the underlying sentinel
// or I/O cause. It is an alias for the internal H5Error shape so that
// a single Context/Cause wrapper is used across the whole module.
type TreeError = utils.H5Error

// wrapErr builds a TreeError, or returns nil if cause is nil.
func wrapErr(context string, cause error) error {
	return utils.WrapError(context, cause)
}
