//go:build !unix

package storage

import "fmt"

// OpenMmap is unavailable on non-Unix targets; the Region variant
// still compiles everywhere, only this constructor is platform-gated.
func OpenMmap(path string, size int) (Region, error) {
	return Region{}, fmt.Errorf("storage: mmap is not supported on this platform")
}
