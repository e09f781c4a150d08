package node

import (
	"strconv"
)

// Kind identifies the type of value a Node holds.
type Kind uint8

const (
	// KindMissing marks an absent value. It is the zero Kind.
	KindMissing Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Node is a single value of a JSON document.
type Node struct {
	kind  Kind
	str   string
	b     bool
	i     int64
	f     float64
	isInt bool
	items []*Node
	keys  []string
	props map[string]*Node
}

// Null returns a null node.
func Null() *Node { return &Node{kind: KindNull} }

// Bool returns a boolean node.
func Bool(b bool) *Node { return &Node{kind: KindBool, b: b} }

// Int returns an integral number node.
func Int(i int64) *Node { return &Node{kind: KindNumber, i: i, f: float64(i), isInt: true} }

// Float returns a number node.
func Float(f float64) *Node { return &Node{kind: KindNumber, f: f} }

// String returns a string node.
func String(s string) *Node { return &Node{kind: KindString, str: s} }

// NewArray returns an array node holding items.
func NewArray(items ...*Node) *Node {
	return &Node{kind: KindArray, items: items}
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{kind: KindObject, props: make(map[string]*Node)}
}

// Kind returns the kind of n. A nil node is KindMissing.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindMissing
	}
	return n.kind
}

// IsAbsent reports whether n is nil or KindMissing.
func (n *Node) IsAbsent() bool { return n.Kind() == KindMissing }

// IsNull reports whether n is JSON null.
func (n *Node) IsNull() bool { return n.Kind() == KindNull }

// IsObject reports whether n is an object.
func (n *Node) IsObject() bool { return n.Kind() == KindObject }

// IsArray reports whether n is an array.
func (n *Node) IsArray() bool { return n.Kind() == KindArray }

// IsContainer reports whether n is an array or object.
func (n *Node) IsContainer() bool {
	k := n.Kind()
	return k == KindArray || k == KindObject
}

// AsString returns the string value of n.
func (n *Node) AsString() (string, bool) {
	if n.Kind() != KindString {
		return "", false
	}
	return n.str, true
}

// AsBool returns the boolean value of n.
func (n *Node) AsBool() (bool, bool) {
	if n.Kind() != KindBool {
		return false, false
	}
	return n.b, true
}

// AsInt returns n as an int64 when it holds an integral number.
func (n *Node) AsInt() (int64, bool) {
	if n.Kind() != KindNumber || !n.isInt {
		return 0, false
	}
	return n.i, true
}

// AsFloat returns the numeric value of n.
func (n *Node) AsFloat() (float64, bool) {
	if n.Kind() != KindNumber {
		return 0, false
	}
	return n.f, true
}

// Len returns the number of items or properties in a container, and zero for
// anything else.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindArray:
		return len(n.items)
	case KindObject:
		return len(n.keys)
	default:
		return 0
	}
}

// Keys returns the property names of an object in document order. The slice
// is shared with n and must not be modified.
func (n *Node) Keys() []string {
	if n.Kind() != KindObject {
		return nil
	}
	return n.keys
}

// ChildKeys returns the keys used to address the children of n: property
// names for objects, decimal indices for arrays, and nil otherwise.
func (n *Node) ChildKeys() []string {
	switch n.Kind() {
	case KindObject:
		return n.keys
	case KindArray:
		keys := make([]string, len(n.items))
		for i := range n.items {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	default:
		return nil
	}
}

// Get returns the property key of an object, or nil.
func (n *Node) Get(key string) *Node {
	if n.Kind() != KindObject {
		return nil
	}
	return n.props[key]
}

// Has reports whether an object has a property named key. Null, false and
// zero values are present.
func (n *Node) Has(key string) bool {
	if n.Kind() != KindObject {
		return false
	}
	_, ok := n.props[key]
	return ok
}

// Index returns the i-th array item, or nil.
func (n *Node) Index(i int) *Node {
	if n.Kind() != KindArray || i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// Items returns the items of an array. The slice is shared with n.
func (n *Node) Items() []*Node {
	if n.Kind() != KindArray {
		return nil
	}
	return n.items
}

// Child returns the child addressed by key, which is a property name for an
// object or a decimal index for an array.
func (n *Node) Child(key string) *Node {
	switch n.Kind() {
	case KindObject:
		return n.props[key]
	case KindArray:
		i, err := strconv.Atoi(key)
		if err != nil || strconv.Itoa(i) != key {
			return nil
		}
		return n.Index(i)
	default:
		return nil
	}
}

// Set adds or replaces a property of an object and returns n. A new key is
// appended to the key order. Set panics if n is not an object.
func (n *Node) Set(key string, value *Node) *Node {
	if n.Kind() != KindObject {
		panic("node: Set on " + n.Kind().String())
	}
	if _, ok := n.props[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.props[key] = value
	return n
}

// Append adds items to an array and returns n. Append panics if n is not an
// array.
func (n *Node) Append(items ...*Node) *Node {
	if n.Kind() != KindArray {
		panic("node: Append on " + n.Kind().String())
	}
	n.items = append(n.items, items...)
	return n
}

// Ref returns the value of a "$ref" property when n is an object whose
// "$ref" is a string.
func (n *Node) Ref() (string, bool) {
	return n.Get("$ref").AsString()
}

// Equal reports whether n and other are the same value. Scalars compare by
// value; an integral and a fractional number compare numerically. Containers
// are equal only when they are the same node.
func (n *Node) Equal(other *Node) bool {
	if n.Kind() != other.Kind() {
		return false
	}
	switch n.Kind() {
	case KindMissing, KindNull:
		return true
	case KindBool:
		return n.b == other.b
	case KindString:
		return n.str == other.str
	case KindNumber:
		if n.isInt && other.isInt {
			return n.i == other.i
		}
		return n.f == other.f
	default:
		return n == other
	}
}

// String renders n as compact JSON, for diagnostics.
func (n *Node) String() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return "<" + n.Kind().String() + ">"
	}
	return string(b)
}
