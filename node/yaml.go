package node

import (
	"fmt"
	"math"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Unmarshal decodes a YAML or JSON document into a Node, keeping the
// source key order. An empty document yields a KindMissing node.
func Unmarshal(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return FromYAML(&root)
}

// FromYAML converts a parsed yaml.Node tree into a Node.
//
// Anchored values reached through several aliases are converted once and
// shared. Merge keys ("<<") are expanded; explicit keys take precedence over
// merged ones.
func FromYAML(root *yaml.Node) (*Node, error) {
	c := &yamlConverter{
		done:   make(map[*yaml.Node]*Node),
		active: make(map[*yaml.Node]bool),
	}
	return c.convert(root)
}

type yamlConverter struct {
	done   map[*yaml.Node]*Node
	active map[*yaml.Node]bool
}

func (c *yamlConverter) convert(y *yaml.Node) (*Node, error) {
	if y == nil || y.Kind == 0 {
		return &Node{}, nil
	}
	if n, ok := c.done[y]; ok {
		return n, nil
	}
	if c.active[y] {
		return nil, fmt.Errorf("line %d: anchor %q contains itself", y.Line, y.Anchor)
	}
	c.active[y] = true
	defer delete(c.active, y)

	var (
		n   *Node
		err error
	)
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return &Node{}, nil
		}
		n, err = c.convert(y.Content[0])
	case yaml.AliasNode:
		n, err = c.convert(y.Alias)
	case yaml.SequenceNode:
		n, err = c.sequence(y)
	case yaml.MappingNode:
		n, err = c.mapping(y)
	case yaml.ScalarNode:
		n, err = scalar(y)
	default:
		err = fmt.Errorf("line %d: unsupported YAML node kind %v", y.Line, y.Kind)
	}
	if err != nil {
		return nil, err
	}
	if y.Anchor != "" {
		c.done[y] = n
	}
	return n, nil
}

func (c *yamlConverter) sequence(y *yaml.Node) (*Node, error) {
	items := make([]*Node, 0, len(y.Content))
	for _, item := range y.Content {
		v, err := c.convert(item)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return NewArray(items...), nil
}

func (c *yamlConverter) mapping(y *yaml.Node) (*Node, error) {
	obj := NewObject()
	explicit := make(map[string]bool, len(y.Content)/2)
	for i := 0; i+1 < len(y.Content); i += 2 {
		if !isMergeKey(y.Content[i]) {
			explicit[y.Content[i].Value] = true
		}
	}

	for i := 0; i+1 < len(y.Content); i += 2 {
		k, v := y.Content[i], y.Content[i+1]
		if isMergeKey(k) {
			if err := c.merge(obj, v, explicit); err != nil {
				return nil, err
			}
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
		}
		val, err := c.convert(v)
		if err != nil {
			return nil, err
		}
		obj.Set(k.Value, val)
	}
	return obj, nil
}

func (c *yamlConverter) merge(obj *Node, src *yaml.Node, explicit map[string]bool) error {
	for src.Kind == yaml.AliasNode {
		src = src.Alias
	}
	sources := []*yaml.Node{src}
	if src.Kind == yaml.SequenceNode {
		sources = src.Content
	}
	for _, s := range sources {
		m, err := c.convert(s)
		if err != nil {
			return err
		}
		if !m.IsObject() {
			return fmt.Errorf("line %d: merge value must be a mapping", s.Line)
		}
		for _, key := range m.Keys() {
			if explicit[key] || obj.Has(key) {
				continue
			}
			obj.Set(key, m.Get(key))
		}
	}
	return nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.Value == "<<" && k.ShortTag() == "!!merge"
}

func scalar(y *yaml.Node) (*Node, error) {
	switch y.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := y.Decode(&b); err != nil {
			return nil, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := y.Decode(&i); err == nil {
			return Int(i), nil
		}
		f, err := strconv.ParseFloat(y.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid integer %q", y.Line, y.Value)
		}
		return Float(f), nil
	case "!!float":
		var f float64
		if err := y.Decode(&f); err != nil {
			return nil, err
		}
		return Float(f), nil
	default:
		return String(y.Value), nil
	}
}

// MarshalYAML implements yaml.Marshaler, preserving key order.
func (n *Node) MarshalYAML() (any, error) {
	return n.ToYAML(), nil
}

// ToYAML converts n into a yaml.Node tree.
func (n *Node) ToYAML() *yaml.Node {
	switch n.Kind() {
	case KindMissing, KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(n.b)}
	case KindNumber:
		if n.isInt {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(n.i, 10)}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatYAMLFloat(n.f)}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.str}
	case KindArray:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.items {
			seq.Content = append(seq.Content, item.ToYAML())
		}
		return seq
	default:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range n.keys {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				n.props[k].ToYAML())
		}
		return m
	}
}

func formatYAMLFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return s
		}
	}
	return s + ".0"
}
