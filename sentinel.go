package datatree

// emptySentinel is the single canonical empty node returned by every
// read-only failed lookup (missing path, wrong shape). It is immutable
// by contract: every mutating method detects it by identity and
// signals ErrWriteToSentinel instead of touching shared state. Its
// storage mode is always None, and as a package-level var it lives for
// the life of the process.
var emptySentinel = New()

// IsSentinel reports whether n is the shared empty sentinel returned
// by Entry on a missing or mistyped path.
func (n *Node) IsSentinel() bool {
	return n == emptySentinel
}

// guardSentinel returns ErrWriteToSentinel if n is the shared empty
// node; every mutating accessor calls this first.
func (n *Node) guardSentinel() error {
	if n.IsSentinel() {
		return wrapErr("mutate", ErrWriteToSentinel)
	}
	return nil
}
