package schema

import (
	"strconv"
	"strings"
)

// ToJSON renders the tree back to canonical schema text. Object keys
// are emitted in the order they were parsed (or inserted), which is
// the property encoding/json cannot give us over a plain map.
func (n *Node) ToJSON() string {
	var b strings.Builder
	n.writeJSON(&b)
	return b.String()
}

func (n *Node) writeJSON(b *strings.Builder) {
	if n == nil {
		b.WriteString("null")
		return
	}

	switch n.Shape {
	case ShapeLeaf:
		n.writeLeafJSON(b)
	case ShapeCompoundList:
		b.WriteString(`{"dtype":`)
		n.Inner.writeJSON(b)
		b.WriteString(`,"length":`)
		b.WriteString(strconv.Itoa(n.Length))
		b.WriteByte('}')
	case ShapeObject:
		b.WriteByte('{')
		for i, e := range n.Entries {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSONString(b, e.Name)
			b.WriteByte(':')
			e.Value.writeJSON(b)
		}
		b.WriteByte('}')
	case ShapeList:
		b.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			item.writeJSON(b)
		}
		b.WriteByte(']')
	}
}

// writeLeafJSON uses the bare-string short form when the leaf carries
// nothing but a kind name and a length of 1; otherwise it emits the
// long form so offset/stride/endian survive the round trip.
func (n *Node) writeLeafJSON(b *strings.Builder) {
	if n.Length == 1 && n.Offset == nil && n.Stride == nil && n.Endian == "" {
		writeJSONString(b, n.DTypeName)
		return
	}

	b.WriteByte('{')
	b.WriteString(`"dtype":`)
	writeJSONString(b, n.DTypeName)
	b.WriteString(`,"length":`)
	b.WriteString(strconv.Itoa(n.Length))
	if n.Offset != nil {
		b.WriteString(`,"offset":`)
		b.WriteString(strconv.Itoa(*n.Offset))
	}
	if n.Stride != nil {
		b.WriteString(`,"stride":`)
		b.WriteString(strconv.Itoa(*n.Stride))
	}
	if n.Endian != "" {
		b.WriteString(`,"endian":`)
		writeJSONString(b, n.Endian)
	}
	b.WriteByte('}')
}

func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
