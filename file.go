package datatree

import (
	"fmt"
	"io"
	"os"

	"github.com/scigolib/datatree/internal/schema"
	"github.com/scigolib/datatree/internal/storage"
)

// Load reads schema.total_bytes() bytes from path into a freshly
// allocated owned buffer, walks schemaText over it, and returns the
// resulting root node. A short file signals ErrIOError.
func Load(schemaText []byte, path string) (*Node, error) {
	sn, err := schema.Parse(schemaText)
	if err != nil {
		return nil, wrapErr("load", err)
	}
	if err := sn.Validate(); err != nil {
		return nil, wrapErr("load", err)
	}
	total, err := schemaTotalBytes(sn)
	if err != nil {
		return nil, wrapErr("load", err)
	}

	buf := make([]byte, total)
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapErr("load", fmt.Errorf("%w: open %q: %v", ErrIOError, path, err))
	}
	defer f.Close()

	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, wrapErr("load", fmt.Errorf("%w: short read from %q: %v", ErrIOError, path, err))
	}

	// The walker binds leaves as borrowed over buf; only once the
	// walk has fully returned do we flip the root's ownership to
	// OwnedHeap, so nothing can free buf mid-traversal.
	n := New()
	if _, err := walkSchema(n, sn, buf, 0); err != nil {
		return nil, wrapErr("load", err)
	}
	if err := adoptOwnership(n, buf); err != nil {
		return nil, wrapErr("load", err)
	}
	return n, nil
}

// Mmap opens path read-write (creating and truncating it to
// schema.total_bytes() if shorter), memory-maps the region, walks
// schemaText over it, and returns the resulting root node backed by
// the mapping. A failure at either step signals ErrIOError and
// releases any partial acquisition.
func Mmap(schemaText []byte, path string) (*Node, error) {
	sn, err := schema.Parse(schemaText)
	if err != nil {
		return nil, wrapErr("mmap", err)
	}
	if err := sn.Validate(); err != nil {
		return nil, wrapErr("mmap", err)
	}
	total, err := schemaTotalBytes(sn)
	if err != nil {
		return nil, wrapErr("mmap", err)
	}

	region, err := storage.OpenMmap(path, total)
	if err != nil {
		return nil, wrapErr("mmap", fmt.Errorf("%w: %v", ErrIOError, err))
	}

	n := New()
	if _, err := walkSchema(n, sn, region.Bytes(), 0); err != nil {
		region.Release()
		return nil, wrapErr("mmap", err)
	}
	if err := adoptMmapOwnership(n, region); err != nil {
		region.Release()
		return nil, wrapErr("mmap", err)
	}
	return n, nil
}

// adoptOwnership marks the root's storage as owning buf. The walker
// left every leaf borrowed over buf; a leaf root adopts buf directly
// as its own OwnedHeap region, while a structural (OBJECT/LIST) root
// stores it in backing so Reset still releases it even though no
// single leaf under the root owns it.
func adoptOwnership(n *Node, buf []byte) error {
	if n.IsLeaf() {
		n.region = storage.OwnedFromBytes(buf)
		return nil
	}
	owned := storage.OwnedFromBytes(buf)
	n.backing = &owned
	return nil
}

// adoptMmapOwnership is adoptOwnership's mmap counterpart: a leaf
// root adopts the mapped region itself (so Reset unmaps it); a
// structural root stores it in backing for the same reason.
func adoptMmapOwnership(n *Node, region storage.Region) error {
	if n.IsLeaf() {
		n.region = region
		return nil
	}
	n.backing = &region
	return nil
}
