package datatree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scigolib/datatree/internal/dtype"
)

// render recursively produces JSON-like text for the node. When
// withValues is true, leaves are rendered as their scalar value
// (first element only, widened/quoted as scalarText does); when
// false, leaves are rendered as their descriptor shape instead,
// producing a structural schema with no data (JSONSchema's use).
func (n *Node) render(withValues bool) string {
	switch n.dt.Kind {
	case dtype.Empty:
		return "null"
	case dtype.Object:
		var b strings.Builder
		b.WriteByte('{')
		for i, e := range n.entries {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(e.name))
			b.WriteByte(':')
			b.WriteString(e.node.render(withValues))
		}
		b.WriteByte('}')
		return b.String()
	case dtype.List:
		var b strings.Builder
		b.WriteByte('[')
		for i, c := range n.list {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(c.render(withValues))
		}
		b.WriteByte(']')
		return b.String()
	default:
		if withValues {
			return n.scalarText()
		}
		return n.leafSchemaText()
	}
}

// leafSchemaText renders this leaf's descriptor as schema-text long
// form, reproducing kind/length/offset/stride but no data.
func (n *Node) leafSchemaText() string {
	return fmt.Sprintf(`{"dtype":%s,"length":%d,"offset":%d,"stride":%d,"endian":%s}`,
		quote(n.dt.Kind.String()), n.dt.Count, n.dt.Offset, n.dt.Stride, quote(n.dt.Endianness.String()))
}

func quote(s string) string {
	return strconv.Quote(s)
}

// JSONSchema renders a JSON-like text reproducing the node's
// structural and leaf-descriptor shape, with no values.
func (n *Node) JSONSchema() string {
	return n.render(false)
}

// TotalBytes recursively sums the byte size of every descendant leaf.
func (n *Node) TotalBytes() int {
	switch n.dt.Kind {
	case dtype.Object:
		total := 0
		for _, e := range n.entries {
			total += e.node.TotalBytes()
		}
		return total
	case dtype.List:
		total := 0
		for _, c := range n.list {
			total += c.TotalBytes()
		}
		return total
	case dtype.Empty:
		return 0
	default:
		return n.dt.TotalBytes()
	}
}

// Serialize writes the tree's leaf bytes, depth-first, into dst
// (which must be at least TotalBytes() long — the sum of each leaf's
// count*stride — when not compact, or at least the sum of each leaf's
// count*elem_bytes when compact; the two coincide unless a leaf's
// elem_bytes < stride). With compact=false
// it copies each leaf's full count*stride bytes verbatim; with
// compact=true it repacks each leaf to count*elem_bytes, dropping
// inter-element stride padding. Returns the number of bytes written.
func (n *Node) Serialize(dst []byte, compact bool) (int, error) {
	written, err := n.serializeInto(dst, 0, compact)
	if err != nil {
		return written, wrapErr("serialize", err)
	}
	return written, nil
}

func (n *Node) serializeInto(dst []byte, at int, compact bool) (int, error) {
	switch n.dt.Kind {
	case dtype.Empty:
		return at, nil
	case dtype.Object:
		for _, e := range n.entries {
			next, err := e.node.serializeInto(dst, at, compact)
			if err != nil {
				return at, err
			}
			at = next
		}
		return at, nil
	case dtype.List:
		for _, c := range n.list {
			next, err := c.serializeInto(dst, at, compact)
			if err != nil {
				return at, err
			}
			at = next
		}
		return at, nil
	default:
		return n.serializeLeaf(dst, at, compact)
	}
}

func (n *Node) serializeLeaf(dst []byte, at int, compact bool) (int, error) {
	src := n.region.Bytes()
	if !compact {
		width := n.dt.TotalBytes()
		if at+width > len(dst) {
			return at, fmt.Errorf("%w: destination too short at offset %d", ErrIndexOutOfRange, at)
		}
		copy(dst[at:at+width], src[n.dt.Offset:n.dt.Offset+width])
		return at + width, nil
	}

	width := n.dt.Count * n.dt.ElemBytes
	if at+width > len(dst) {
		return at, fmt.Errorf("%w: destination too short at offset %d", ErrIndexOutOfRange, at)
	}
	for i := 0; i < n.dt.Count; i++ {
		elemStart := n.dt.ElementAddress(i)
		copy(dst[at+i*n.dt.ElemBytes:at+(i+1)*n.dt.ElemBytes], src[elemStart:elemStart+n.dt.ElemBytes])
	}
	return at + width, nil
}
