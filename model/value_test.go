package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, KindNull, Null().Kind())
	assert.Equal(t, KindBool, Boolean(true).Kind())
	assert.Equal(t, KindNumber, Number(1.5).Kind())
	assert.Equal(t, KindText, Text("x").Kind())
	assert.Equal(t, KindList, List(nil).Kind())
	assert.Equal(t, KindMap, Map(nil).Kind())

	// The zero Value is null
	assert.Equal(t, KindNull, Value{}.Kind())
}

func TestAccessors(t *testing.T) {
	assert.True(t, Boolean(true).Bool())
	assert.Equal(t, 1.5, Number(1.5).Number())
	assert.Equal(t, "hello", Text("hello").Text())

	l := List([]Value{Number(1), Text("two")})
	require.Len(t, l.Items(), 2)
	assert.Equal(t, "two", l.Items()[1].Text())

	m := Map(map[string]Value{"a": Number(1)})
	require.Len(t, m.Fields(), 1)
	assert.Equal(t, 1.0, m.Fields()["a"].Number())
}

func TestInterface(t *testing.T) {
	v := Map(map[string]Value{
		"null":  Null(),
		"bool":  Boolean(true),
		"num":   Number(2.5),
		"text":  Text("hi"),
		"items": List([]Value{Number(1), Number(2)}),
	})

	want := map[string]any{
		"null":  nil,
		"bool":  true,
		"num":   2.5,
		"text":  "hi",
		"items": []any{1.0, 2.0},
	}
	assert.Equal(t, want, v.Interface())
}

func TestEqual(t *testing.T) {
	assert.True(t, Null().Equal(Null()))
	assert.False(t, Null().Equal(Boolean(false)))
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))

	a := List([]Value{Text("x"), Number(1)})
	b := List([]Value{Text("x"), Number(1)})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(List([]Value{Number(1), Text("x")})), "list order is meaningful")

	// Map comparison ignores entry order by construction
	m1 := Map(map[string]Value{"a": Number(1), "b": Number(2)})
	m2 := Map(map[string]Value{"b": Number(2), "a": Number(1)})
	assert.True(t, m1.Equal(m2))
	assert.False(t, m1.Equal(Map(map[string]Value{"a": Number(1)})))

	// An empty list and a nil list are the same list
	assert.True(t, List(nil).Equal(List([]Value{})))
}

func TestMarshalJSON(t *testing.T) {
	v := Map(map[string]Value{
		"name":    Text("Sharel"),
		"age":     Number(-256),
		"tags":    List([]Value{Text("a"), Text("b")}),
		"active":  Boolean(true),
		"deleted": Null(),
	})

	out, err := json.Marshal(v)
	require.NoError(t, err)

	// Keys are sorted by encoding/json, so the output is deterministic
	assert.JSONEq(t, `{"name":"Sharel","age":-256,"tags":["a","b"],"active":true,"deleted":null}`, string(out))
}

func TestMarshalJSONEscapes(t *testing.T) {
	out, err := json.Marshal(Text(`Bob said, "Hello!"`))
	require.NoError(t, err)

	var back string
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, `Bob said, "Hello!"`, back)
}
