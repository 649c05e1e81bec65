package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// MaxDepth bounds the nesting of documents and flat keys.
const MaxDepth = 100

// Decoding a document may produce at most minNodeBudget + nodesPerByte*len(input)
// values. Only alias expansion can get close to it.
const (
	minNodeBudget = 10_000
	nodesPerByte  = 64
)

const (
	nullTag  = "!!null"
	mergeTag = "!!merge"
)

// Decode parses a YAML document into a Value.
// Empty input and an explicit null document decode to an empty mapping.
// Any other non-mapping root is rejected with ErrNotMapping.
func Decode(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, errors.Join(ErrParse, err)
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return Mapping(), nil
	}

	node := &root
	if root.Kind == yaml.DocumentNode {
		node = root.Content[0]
	}

	d := &decoder{budget: minNodeBudget + nodesPerByte*len(data)}
	v, err := d.fromNode(node, 0)
	if err != nil {
		return Value{}, err
	}

	switch v.Kind {
	case KindNull:
		return Mapping(), nil
	case KindMapping:
		return v, nil
	default:
		return Value{}, fmt.Errorf("%w: got %s", ErrNotMapping, v.Kind)
	}
}

// Encode renders a Value as a YAML document with two-space indentation.
// Scalars are always emitted as strings; values that would otherwise resolve
// to another type (true, 42, null) are quoted.
func Encode(v Value) ([]byte, error) {
	node, err := toNode(v, 0)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}

	return buf.Bytes(), nil
}

// decoder converts yaml.Node trees while counting the values it builds.
type decoder struct {
	budget int
}

func (d *decoder) fromNode(n *yaml.Node, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, ErrTooDeep
	}
	d.budget--
	if d.budget < 0 {
		return Value{}, ErrTooLarge
	}

	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return Null(), nil
		}
		return d.fromNode(n.Alias, depth+1)

	case yaml.ScalarNode:
		if n.ShortTag() == nullTag {
			return Null(), nil
		}
		return Scalar(n.Value), nil

	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, child := range n.Content {
			item, err := d.fromNode(child, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Sequence(items...), nil

	case yaml.MappingNode:
		return d.mappingFromNode(n, depth)

	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return d.fromNode(n.Content[0], depth+1)

	default:
		return Null(), nil
	}
}

func (d *decoder) mappingFromNode(n *yaml.Node, depth int) (Value, error) {
	fields := make([]Field, 0, len(n.Content)/2)
	index := make(map[string]int, len(n.Content)/2)
	// Keys pulled in through "<<" may be overridden by explicit keys.
	merged := make(map[string]bool)

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
			keyNode = keyNode.Alias
		}
		if keyNode.Kind != yaml.ScalarNode {
			return Value{}, fmt.Errorf("%w: line %d", ErrInvalidKey, keyNode.Line)
		}

		if keyNode.ShortTag() == mergeTag {
			sources, err := d.mergeSources(valueNode, depth)
			if err != nil {
				return Value{}, err
			}
			for _, src := range sources {
				for _, f := range src.Fields {
					if _, exists := index[f.Key]; exists {
						continue
					}
					index[f.Key] = len(fields)
					merged[f.Key] = true
					fields = append(fields, f)
				}
			}
			continue
		}

		value, err := d.fromNode(valueNode, depth+1)
		if err != nil {
			return Value{}, err
		}

		key := keyNode.Value
		if pos, exists := index[key]; exists {
			if !merged[key] {
				return Value{}, fmt.Errorf("%w: %q at line %d", ErrDuplicateKey, key, keyNode.Line)
			}
			delete(merged, key)
			fields[pos].Value = value
			continue
		}

		index[key] = len(fields)
		fields = append(fields, Field{Key: key, Value: value})
	}

	return Mapping(fields...), nil
}

func (d *decoder) mergeSources(n *yaml.Node, depth int) ([]Value, error) {
	v, err := d.fromNode(n, depth+1)
	if err != nil {
		return nil, err
	}

	switch v.Kind {
	case KindMapping:
		return []Value{v}, nil
	case KindSequence:
		for _, item := range v.Items {
			if item.Kind != KindMapping {
				return nil, fmt.Errorf("%w: merge value must be a mapping, got %s", ErrParse, item.Kind)
			}
		}
		return v.Items, nil
	default:
		return nil, fmt.Errorf("%w: merge value must be a mapping, got %s", ErrParse, v.Kind)
	}
}

func toNode(v Value, depth int) (*yaml.Node, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}

	switch v.Kind {
	case KindScalar:
		return stringNode(v.Scalar)

	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items {
			child, err := toNode(item, depth+1)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil

	case KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range v.Fields {
			key, err := stringNode(f.Key)
			if err != nil {
				return nil, err
			}
			child, err := toNode(f.Value, depth+1)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, key, child)
		}
		return n, nil

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: nullTag, Value: "null"}, nil
	}
}

// stringNode builds a scalar that always decodes back to s as a string.
// Multi-line text uses a literal block unless it begins with whitespace,
// which block scalars cannot carry verbatim.
func stringNode(s string) (*yaml.Node, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUTF8, s)
	}

	n := &yaml.Node{}
	n.SetString(s)
	if n.Style == yaml.LiteralStyle && strings.ContainsAny(s[:1], " \t\n") {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n, nil
}
