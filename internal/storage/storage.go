// Package storage implements the three byte-region ownership regimes
// a leaf Node can hold: a heap allocation the node owns, a pointer
// borrowed from an external owner, and a memory-mapped file region.
// A single Region value dispatches release on whichever regime it
// currently holds, mirroring the variant-with-one-release-routine
// shape sirgallo-mari's Mari type uses for its own mmap'd storage.
package storage

import "fmt"

// Mode tags which ownership regime a Region currently holds.
type Mode uint8

const (
	None Mode = iota
	OwnedHeap
	Borrowed
	Mmap
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case OwnedHeap:
		return "owned"
	case Borrowed:
		return "borrowed"
	case Mmap:
		return "mmap"
	default:
		return "unknown"
	}
}

// mmapHandle is the teardown hook for an Mmap-mode Region. It is an
// interface (rather than a concrete struct) so this tag-free file
// never depends on the platform-specific unmap syscall; mmap_unix.go
// supplies the real implementation, and non-unix builds simply never
// construct one (OpenMmap there always errors out first).
type mmapHandle interface {
	close() error
}

// Region is a variant over the four storage regimes. Bytes() always
// returns the live backing slice regardless of mode; Release dispatches
// teardown on Mode and resets the Region to None once teardown
// succeeds.
type Region struct {
	mode  Mode
	bytes []byte
	mmap  mmapHandle // non-nil only when mode == Mmap
}

// EmptyRegion returns the zero Region (mode None): no bytes, no
// resources to release.
func EmptyRegion() Region { return Region{} }

// OwnedFromBytes wraps a heap slice the Region now owns. Release
// drops the reference (Go's GC reclaims it); no explicit free is
// needed, but the mode distinction still matters for Reassign, which
// deep-copies an owned source and shares a borrowed one.
func OwnedFromBytes(b []byte) Region {
	return Region{mode: OwnedHeap, bytes: b}
}

// BorrowedFromBytes wraps a slice this Region never releases. The
// caller retains responsibility for the buffer's lifetime.
func BorrowedFromBytes(b []byte) Region {
	return Region{mode: Borrowed, bytes: b}
}

// Mode reports which regime the Region currently holds.
func (r Region) Mode() Mode { return r.mode }

// Bytes returns the live backing slice (nil if Mode() == None).
func (r Region) Bytes() []byte { return r.bytes }

// Len returns len(Bytes()).
func (r Region) Len() int { return len(r.bytes) }

// Release tears down whatever the Region currently holds and resets
// it to None. OwnedHeap and Borrowed both just drop the slice
// reference; Mmap additionally unmaps and closes the backing file
// descriptor. If unmapping fails, the error is returned and the
// Region keeps its Mmap mode. Calling Release on an already-None
// Region is a no-op.
func (r *Region) Release() error {
	switch r.mode {
	case Mmap:
		if r.mmap != nil {
			if err := r.mmap.close(); err != nil {
				return fmt.Errorf("storage: releasing mmap region: %w", err)
			}
		}
	case None, OwnedHeap, Borrowed:
		// nothing to release beyond dropping the slice reference
	}
	r.mode = None
	r.bytes = nil
	r.mmap = nil
	return nil
}

// Reassign implements the Lifecycle section's assignment policy:
// deep-copy if the source owns its bytes, share if the source
// borrows, and treat an mmap source as borrowed (the target never
// becomes a second mmap owner). It releases the receiver's prior
// storage first, per the reset-before-adopt rule.
func (r *Region) Reassign(src Region) error {
	if err := r.Release(); err != nil {
		return err
	}

	switch src.mode {
	case None:
		*r = Region{}
	case OwnedHeap:
		dup := make([]byte, len(src.bytes))
		copy(dup, src.bytes)
		*r = Region{mode: OwnedHeap, bytes: dup}
	case Borrowed, Mmap:
		*r = Region{mode: Borrowed, bytes: src.bytes}
	}
	return nil
}
