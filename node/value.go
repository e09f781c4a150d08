package node

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/erraggy/routediff/internal/maputil"
)

// FromValue converts a decoded Go value into a Node. It accepts the shapes
// produced by encoding/json and YAML decoders: nil, bool, integer and float
// types, json.Number, string, []any, map[string]any and *Node. Map keys are
// sorted, since Go maps carry no order.
func FromValue(v any) (*Node, error) {
	switch v := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if v == nil {
			return Null(), nil
		}
		return v, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return fromUint(v), nil
	case float32:
		return fromFloat(float64(v)), nil
	case float64:
		return fromFloat(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("node: invalid number %q", v.String())
		}
		return Float(f), nil
	case []any:
		arr := NewArray()
		for i, item := range v {
			child, err := FromValue(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr.Append(child)
		}
		return arr, nil
	case map[string]any:
		obj := NewObject()
		for _, k := range maputil.SortedKeys(v) {
			child, err := FromValue(v[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			obj.Set(k, child)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("node: unsupported value type %T", v)
	}
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// fromFloat keeps whole floats integral, the way JSON decoders lose the
// distinction anyway.
func fromFloat(f float64) *Node {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return Int(int64(f))
	}
	return Float(f)
}

// Value converts n back into plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any. Key order is lost.
func (n *Node) Value() any {
	switch n.Kind() {
	case KindBool:
		return n.b
	case KindNumber:
		if n.isInt {
			return n.i
		}
		return n.f
	case KindString:
		return n.str
	case KindArray:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.Value()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(n.keys))
		for _, k := range n.keys {
			out[k] = n.props[k].Value()
		}
		return out
	default:
		return nil
	}
}
