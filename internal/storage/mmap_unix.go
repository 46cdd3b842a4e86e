//go:build unix

package storage

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// unixMmapHandle pairs the mapped slice with the file descriptor that
// backs it, so close() can unmap then close in the right order. It
// implements the tag-free mmapHandle interface declared in storage.go.
type unixMmapHandle struct {
	file *os.File
	data []byte
}

func (h *unixMmapHandle) close() error {
	if err := unix.Munmap(h.data); err != nil {
		h.file.Close()
		return fmt.Errorf("munmap: %w", err)
	}
	return h.file.Close()
}

// OpenMmap opens path read-write (creating it if necessary), grows it
// to size bytes if it is shorter, maps the region shared read-write,
// and returns a Region in Mmap mode over it.
func OpenMmap(path string, size int) (Region, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return Region{}, fmt.Errorf("storage: open %q: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return Region{}, fmt.Errorf("storage: stat %q: %w", path, err)
	}
	if int(info.Size()) < size {
		if err := f.Truncate(int64(size)); err != nil {
			f.Close()
			return Region{}, fmt.Errorf("storage: truncate %q to %d: %w", path, size, err)
		}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return Region{}, fmt.Errorf("storage: mmap %q: %w", path, err)
	}

	return Region{
		mode:  Mmap,
		bytes: data,
		mmap:  &unixMmapHandle{file: f, data: data},
	}, nil
}
