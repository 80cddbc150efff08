package encode

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NishantJoshi00/debug-parser/model"
	"github.com/NishantJoshi00/debug-parser/parser"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "cbor", "yaml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestMarshalJSON(t *testing.T) {
	v := model.Map(map[string]model.Value{
		"inner_int":    model.Number(123),
		"inner_string": model.Text("data"),
	})

	out, err := Marshal(v, JSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inner_int":123,"inner_string":"data"}`, string(out))
}

func TestMarshalCBOR(t *testing.T) {
	v := model.Map(map[string]model.Value{
		"ok":    model.Boolean(true),
		"count": model.Number(3),
	})

	out, err := Marshal(v, CBOR)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, cbor.Unmarshal(out, &back))
	assert.Equal(t, true, back["ok"])

	// Canonical encoding: equal trees produce identical bytes
	again, err := Marshal(v, CBOR)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestMarshalYAML(t *testing.T) {
	v := model.List([]model.Value{model.Text("a"), model.Number(1), model.Null()})

	out, err := Marshal(v, YAML)
	require.NoError(t, err)

	var back []any
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Len(t, back, 3)
	assert.Equal(t, "a", back[0])
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON(`Bob { inner_int: 123.0, inner_string: "data" }`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inner_int":123,"inner_string":"data"}`, out)
}

// TestToJSONRoundTripsEscapes checks the escaped-quote round trip: the
// parsed text unescapes, and JSON re-escapes it to an equivalent literal.
func TestToJSONRoundTripsEscapes(t *testing.T) {
	out, err := ToJSON(`"Bob said, \"Hello!\""`)
	require.NoError(t, err)

	var back string
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, `Bob said, "Hello!"`, back)
}

// TestToJSONSurfacesErrors verifies a parse failure is returned, never
// replaced by a default value.
func TestToJSONSurfacesErrors(t *testing.T) {
	_, err := ToJSON(`{ "inner": "data"`)
	require.Error(t, err)

	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "map", perr.Context)
}

func TestToJSONStrictMode(t *testing.T) {
	_, err := ToJSON("123 leftovers", parser.WithTrailingDisallowed())
	assert.Error(t, err)

	out, err := ToJSON("123 leftovers")
	require.NoError(t, err)
	assert.Equal(t, "123", out)
}
