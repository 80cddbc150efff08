// Package model defines the generic value tree produced by parsing a
// debug-formatted string.
//
// The tree has six shapes: null, boolean, number, text, list, and map.
// All numeric literals collapse to float64; tuples and lists collapse to
// the same ordered list shape; named structs, named arrays, and unwrapped
// tuple-variants collapse to the plain map/list/value they carry. Nominal
// type and variant names from the input are never retained.
//
// Values are immutable once constructed. A Value is safe to share between
// goroutines after the parse that built it returns.
package model

import "encoding/json"

// Kind identifies the shape of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindText
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is one node of the parsed tree. The zero Value is null.
//
// Text values may share backing storage with the original input string
// (the common case, when no escape sequence was present) or hold their own
// unescaped copy. Consumers cannot observe the difference.
type Value struct {
	kind   Kind
	b      bool
	num    float64
	text   string
	items  []Value
	fields map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Boolean returns a boolean value.
func Boolean(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric value. All numbers are IEEE-754 doubles.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// List returns an ordered list value. Order is preserved; nil is an empty
// list, not null.
func List(items []Value) Value {
	return Value{kind: KindList, items: items}
}

// Map returns a keyed map value. Key order is not meaningful.
func Map(fields map[string]Value) Value {
	return Value{kind: KindMap, fields: fields}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Valid only when Kind is KindBool.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric payload. Valid only when Kind is KindNumber.
func (v Value) Number() float64 { return v.num }

// Text returns the text payload. Valid only when Kind is KindText.
func (v Value) Text() string { return v.text }

// Items returns the list elements. Valid only when Kind is KindList.
// Callers must not mutate the returned slice.
func (v Value) Items() []Value { return v.items }

// Fields returns the map entries. Valid only when Kind is KindMap.
// Callers must not mutate the returned map.
func (v Value) Fields() map[string]Value { return v.fields }

// Interface converts the value to the plain Go representation used by
// generic encoders: nil, bool, float64, string, []any, map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	case KindList:
		items := make([]any, len(v.items))
		for i, item := range v.items {
			items[i] = item.Interface()
		}
		return items
	case KindMap:
		fields := make(map[string]any, len(v.fields))
		for k, f := range v.fields {
			fields[k] = f.Interface()
		}
		return fields
	default:
		return nil
	}
}

// Equal reports structural equality. Lists compare element-wise in order;
// maps compare entry-wise regardless of order. go-cmp picks this method up
// automatically.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindText:
		return v.text == o.text
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for k, f := range v.fields {
			of, ok := o.fields[k]
			if !ok || !f.Equal(of) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// MarshalJSON encodes the value as JSON: null, boolean and numeric
// literals, quoted strings, arrays, and objects with text keys. Object
// keys are emitted in sorted order (encoding/json's map behavior), which
// keeps output deterministic even though map key order carries no meaning.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
