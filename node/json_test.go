package node

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	doc := NewObject().
		Set("z", Int(1)).
		Set("a", NewArray(Float(0.5), String(`q"uote`), Bool(false), Null())).
		Set("m", NewObject())

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":[0.5,"q\"uote",false,null],"m":{}}`, string(out))
}

func TestMarshalJSONMissing(t *testing.T) {
	var n *Node
	out, err := n.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestMarshalJSONRejectsNonFinite(t *testing.T) {
	_, err := Float(math.Inf(1)).MarshalJSON()
	assert.Error(t, err)
	assert.Equal(t, "<number>", Float(math.NaN()).String())
}

func TestMarshalJSONInsideStruct(t *testing.T) {
	type wrapper struct {
		Schema *Node `json:"schema"`
	}
	out, err := json.Marshal(wrapper{Schema: NewObject().Set("type", String("string"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"schema":{"type":"string"}}`, string(out))
}
