package dtype

import (
	"encoding/binary"
	"unsafe"
)

// Endian is the endianness tag carried by a DataType. DEFAULT resolves
// to host endianness wherever byte order actually matters (byte-swap
// decisions in the typed array view); it is never itself a byte order.
type Endian uint8

const (
	DefaultEndian Endian = iota
	LittleEndian
	BigEndian
)

func (e Endian) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "default"
	}
}

// hostEndian is detected once; scientific-computing hosts are
// overwhelmingly little-endian, but the check stays honest rather than
// assuming it.
var hostEndian = func() Endian {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	if b[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}()

// Resolve turns DEFAULT into the host's actual byte order; LITTLE and
// BIG pass through unchanged.
func (e Endian) Resolve() Endian {
	if e == DefaultEndian {
		return hostEndian
	}
	return e
}

// NeedsSwap reports whether data declared with Endian e must be
// byte-swapped to be read/written in host order.
func (e Endian) NeedsSwap() bool {
	return e.Resolve() != hostEndian
}

// ByteOrder returns the encoding/binary.ByteOrder matching e, resolving
// DEFAULT to the host's order first.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e.Resolve() == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ParseEndian resolves a schema-text endianness name ("little", "big",
// "default", or "") to an Endian. The bool result is false for an
// unrecognized non-empty name.
func ParseEndian(name string) (Endian, bool) {
	switch name {
	case "", "default":
		return DefaultEndian, true
	case "little":
		return LittleEndian, true
	case "big":
		return BigEndian, true
	default:
		return DefaultEndian, false
	}
}
