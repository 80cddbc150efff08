// Package encode serializes a parsed value tree to an interchange format.
//
// JSON is the primary target; CBOR and YAML are offered for consumers that
// feed the tree into binary pipelines or config tooling. All three encode
// the same plain representation: null, booleans, float64 numbers, strings,
// arrays, and string-keyed objects.
package encode

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/NishantJoshi00/debug-parser/model"
	"github.com/NishantJoshi00/debug-parser/parser"
)

// Format selects the output serialization.
type Format int

const (
	JSON Format = iota
	CBOR
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case CBOR:
		return "cbor"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name to its Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json":
		return JSON, nil
	case "cbor":
		return CBOR, nil
	case "yaml":
		return YAML, nil
	default:
		return JSON, fmt.Errorf("unsupported format %q (want json, cbor, or yaml)", name)
	}
}

// Marshal serializes v in the given format. CBOR uses canonical encoding
// options so equal trees produce byte-identical output.
func Marshal(v model.Value, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return json.Marshal(v)
	case CBOR:
		mode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return nil, fmt.Errorf("cbor encoder: %w", err)
		}
		return mode.Marshal(v.Interface())
	case YAML:
		return yaml.Marshal(v.Interface())
	default:
		return nil, fmt.Errorf("unsupported format %d", f)
	}
}

// ToJSON parses a debug-formatted string and serializes the result as
// JSON. Both parse and serialization failures are returned, never
// swallowed or substituted with a default value.
func ToJSON(input string, opts ...parser.Option) (string, error) {
	v, err := parser.Parse(input, opts...)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serializing parsed value: %w", err)
	}
	return string(out), nil
}
