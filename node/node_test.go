package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilNode(t *testing.T) {
	var n *Node

	assert.Equal(t, KindMissing, n.Kind())
	assert.True(t, n.IsAbsent())
	assert.False(t, n.IsContainer())
	assert.Nil(t, n.Get("a"))
	assert.Nil(t, n.Get("a").Get("b"))
	assert.Nil(t, n.Keys())
	assert.Nil(t, n.ChildKeys())
	assert.Zero(t, n.Len())
	assert.False(t, n.Has("a"))

	_, ok := n.Ref()
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindMissing, "missing"},
		{KindNull, "null"},
		{KindBool, "boolean"},
		{KindNumber, "number"},
		{KindString, "string"},
		{KindArray, "array"},
		{KindObject, "object"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestObjectKeepsInsertionOrder(t *testing.T) {
	obj := NewObject().
		Set("zeta", Int(1)).
		Set("alpha", Int(2)).
		Set("mid", Int(3))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	obj.Set("alpha", String("replaced"))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys(), "replacing a value must not move its key")
	s, ok := obj.Get("alpha").AsString()
	require.True(t, ok)
	assert.Equal(t, "replaced", s)
}

func TestHasCountsFalsyValues(t *testing.T) {
	obj := NewObject().
		Set("null", Null()).
		Set("false", Bool(false)).
		Set("zero", Int(0)).
		Set("empty", String(""))

	for _, k := range []string{"null", "false", "zero", "empty"} {
		assert.True(t, obj.Has(k), "key %q", k)
	}
	assert.False(t, obj.Has("other"))
}

func TestChildKeys(t *testing.T) {
	arr := NewArray(String("a"), String("b"), String("c"))
	assert.Equal(t, []string{"0", "1", "2"}, arr.ChildKeys())
	assert.Nil(t, String("x").ChildKeys())

	s, _ := arr.Child("1").AsString()
	assert.Equal(t, "b", s)
	assert.Nil(t, arr.Child("3"))
	assert.Nil(t, arr.Child("01"))
	assert.Nil(t, arr.Child("x"))
}

func TestRef(t *testing.T) {
	ref, ok := NewObject().Set("$ref", String("#/components/schemas/Pet")).Ref()
	assert.True(t, ok)
	assert.Equal(t, "#/components/schemas/Pet", ref)

	_, ok = NewObject().Set("$ref", Int(1)).Ref()
	assert.False(t, ok, "non-string $ref")

	_, ok = String("#/a").Ref()
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	obj := NewObject()
	arr := NewArray()

	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"nil and missing", nil, &Node{}, true},
		{"null", Null(), Null(), true},
		{"null vs missing", Null(), nil, false},
		{"bool", Bool(true), Bool(true), true},
		{"bool differs", Bool(true), Bool(false), false},
		{"string", String("a"), String("a"), true},
		{"string differs", String("a"), String("b"), false},
		{"int", Int(3), Int(3), true},
		{"int vs float", Int(3), Float(3), true},
		{"float", Float(1.5), Float(1.5), true},
		{"number differs", Int(3), Float(3.5), false},
		{"number vs string", Int(1), String("1"), false},
		{"same object", obj, obj, true},
		{"distinct empty objects", NewObject(), NewObject(), false},
		{"same array", arr, arr, true},
		{"distinct empty arrays", NewArray(), NewArray(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestSetPanicsOnNonObject(t *testing.T) {
	assert.Panics(t, func() { NewArray().Set("a", Null()) })
	assert.Panics(t, func() { NewObject().Append(Null()) })
}

func TestAccessorsRejectWrongKind(t *testing.T) {
	_, ok := Int(1).AsString()
	assert.False(t, ok)
	_, ok = String("1").AsInt()
	assert.False(t, ok)
	_, ok = Float(1.5).AsInt()
	assert.False(t, ok)
	f, ok := Int(2).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 2.0, f)
	_, ok = Null().AsBool()
	assert.False(t, ok)
}
