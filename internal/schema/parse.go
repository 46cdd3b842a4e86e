package schema

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Parse parses schema text (the JSON superset described in §6) into a
// Node tree. JSON is a strict subset of YAML, so the document is
// parsed with the YAML AST; that AST preserves mapping-key order,
// which a round trip through encoding/json + map[string]any cannot.
func Parse(text []byte) (*Node, error) {
	file, err := parser.ParseBytes(text, 0)
	if err != nil {
		return nil, fmt.Errorf("schema: %w: %w", ErrMalformed, err)
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, fmt.Errorf("schema: %w: empty document", ErrMalformed)
	}
	return fromAST(file.Docs[0].Body)
}

func fromAST(n ast.Node) (*Node, error) {
	n = unwrapNode(n)
	if n == nil {
		return nil, fmt.Errorf("schema: %w: nil node", ErrMalformed)
	}

	switch v := n.(type) {
	case *ast.StringNode:
		return Leaf(v.Value, 1), nil
	case *ast.MappingValueNode:
		return fromMapping(&ast.MappingNode{Values: []*ast.MappingValueNode{v}})
	case *ast.MappingNode:
		return fromMapping(v)
	case *ast.SequenceNode:
		return fromSequence(v)
	default:
		return nil, fmt.Errorf("schema: %w: node of type %T is not a valid schema value (expected string, object, or array)", ErrMalformed, n)
	}
}

func unwrapNode(n ast.Node) ast.Node {
	for {
		switch v := n.(type) {
		case *ast.TagNode:
			n = v.Value
		case *ast.AnchorNode:
			n = v.Value
		default:
			return n
		}
	}
}

// fromMapping turns a `{...}` into either a leaf (has a "dtype" key
// whose value is a string), a compound-list (has a "dtype" key whose
// value is itself an object), or a plain object (anything else).
func fromMapping(mn *ast.MappingNode) (*Node, error) {
	var dtypeEntry *ast.MappingValueNode
	for _, mv := range mn.Values {
		if keyName(mv.Key) == "dtype" {
			dtypeEntry = mv
			break
		}
	}

	if dtypeEntry == nil {
		return fromObjectMapping(mn)
	}

	switch dv := unwrapNode(dtypeEntry.Value).(type) {
	case *ast.StringNode:
		return fromLeafMapping(mn, dv.Value)
	case *ast.MappingNode, *ast.MappingValueNode:
		return fromCompoundListMapping(mn, dv)
	default:
		return nil, fmt.Errorf(`schema: %w: "dtype" must be a string or an object`, ErrMalformed)
	}
}

func fromObjectMapping(mn *ast.MappingNode) (*Node, error) {
	node := &Node{Shape: ShapeObject}
	for _, mv := range mn.Values {
		name := keyName(mv.Key)
		child, err := fromAST(mv.Value)
		if err != nil {
			return nil, fmt.Errorf("schema: field %q: %w", name, err)
		}
		node.Entries = append(node.Entries, Entry{Name: name, Value: child})
	}
	return node, nil
}

// fromLeafMapping builds the long-form leaf:
//
//	{"dtype": "<kind>", "length": N, "offset": N, "stride": N, "endian": "<e>"}
func fromLeafMapping(mn *ast.MappingNode, kindName string) (*Node, error) {
	node := &Node{Shape: ShapeLeaf, DTypeName: kindName, Length: 1}

	for _, mv := range mn.Values {
		switch keyName(mv.Key) {
		case "dtype":
			// already consumed
		case "length":
			n, err := intValue(mv.Value)
			if err != nil {
				return nil, fmt.Errorf(`schema: "length": %w`, err)
			}
			node.Length = n
		case "offset":
			n, err := intValue(mv.Value)
			if err != nil {
				return nil, fmt.Errorf(`schema: "offset": %w`, err)
			}
			node.Offset = &n
		case "stride":
			n, err := intValue(mv.Value)
			if err != nil {
				return nil, fmt.Errorf(`schema: "stride": %w`, err)
			}
			node.Stride = &n
		case "endian":
			s, err := stringValue(mv.Value)
			if err != nil {
				return nil, fmt.Errorf(`schema: "endian": %w`, err)
			}
			node.Endian = s
		default:
			return nil, fmt.Errorf("schema: %w: unexpected leaf field %q", ErrMalformed, keyName(mv.Key))
		}
	}
	return node, nil
}

// fromCompoundListMapping builds the compound-list-of form:
//
//	{"dtype": {...}, "length": N}
func fromCompoundListMapping(mn *ast.MappingNode, dtypeVal ast.Node) (*Node, error) {
	var innerMapping *ast.MappingNode
	switch v := dtypeVal.(type) {
	case *ast.MappingNode:
		innerMapping = v
	case *ast.MappingValueNode:
		innerMapping = &ast.MappingNode{Values: []*ast.MappingValueNode{v}}
	}

	inner, err := fromMapping(innerMapping)
	if err != nil {
		return nil, fmt.Errorf("schema: compound dtype: %w", err)
	}

	node := &Node{Shape: ShapeCompoundList, Inner: inner}
	for _, mv := range mn.Values {
		switch keyName(mv.Key) {
		case "dtype":
		case "length":
			n, err := intValue(mv.Value)
			if err != nil {
				return nil, fmt.Errorf(`schema: "length": %w`, err)
			}
			node.Length = n
		default:
			return nil, fmt.Errorf("schema: %w: unexpected compound-list field %q", ErrMalformed, keyName(mv.Key))
		}
	}
	return node, nil
}

func fromSequence(seq *ast.SequenceNode) (*Node, error) {
	node := &Node{Shape: ShapeList}
	for _, v := range seq.Values {
		item, err := fromAST(v)
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, item)
	}
	return node, nil
}

func keyName(k ast.MapKeyNode) string {
	if s, ok := unwrapNode(k.(ast.Node)).(*ast.StringNode); ok {
		return s.Value
	}
	return k.String()
}

func stringValue(n ast.Node) (string, error) {
	if s, ok := unwrapNode(n).(*ast.StringNode); ok {
		return s.Value, nil
	}
	return "", fmt.Errorf("%w: expected a string", ErrMalformed)
}

func intValue(n ast.Node) (int, error) {
	switch v := unwrapNode(n).(type) {
	case *ast.IntegerNode:
		switch iv := v.Value.(type) {
		case int64:
			return int(iv), nil
		case uint64:
			return int(iv), nil
		default:
			return atoiMalformed(v.String())
		}
	case *ast.StringNode:
		return atoiMalformed(v.Value)
	default:
		return 0, fmt.Errorf("%w: expected an integer", ErrMalformed)
	}
}

func atoiMalformed(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return n, nil
}
