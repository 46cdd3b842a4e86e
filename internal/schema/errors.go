package schema

import "github.com/scigolib/datatree/internal/dtype"

// ErrMalformed is wrapped by every schema-text parse failure: bad
// JSON/YAML syntax, an unrecognized field, or a shape the grammar
// does not allow. It is an alias for dtype.ErrParseError so callers
// can match with a single sentinel regardless of which layer raised
// the error.
var ErrMalformed = dtype.ErrParseError

// ErrUnknownKind is returned when a leaf's "dtype" does not name a
// kind known to the type registry.
var ErrUnknownKind = dtype.ErrUnknownKind
