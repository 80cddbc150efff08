// Package parser recovers a generic value tree from a schema-less,
// debug-formatted string: the human-readable rendering of an arbitrary
// nested value (structs, enum variants, tuples, optional wrappers, maps,
// vectors, and already-redacted secret fields).
//
// No schema accompanies the input, so structure is recovered purely from
// punctuation and recognizable literal shapes. Nominal type and variant
// names carry no information the output can represent and are discarded.
//
// The grammar is an ordered alternation of twelve rules (see grammar). The
// order is part of the contract, not an optimization: the date/time
// heuristic must run before the number rule because a date's leading group
// is a valid number prefix; the un-prefixed composite rules must run
// before the named forms; and the wildcard, which matches almost anything,
// must run last.
//
// Parsing is a pure function of the input: no state survives a call, and
// concurrent parses need no coordination.
package parser

import (
	"strconv"

	"github.com/NishantJoshi00/debug-parser/model"
)

// Parse converts a debug-formatted string to a value tree. Surrounding
// whitespace is trimmed. Unconsumed trailing input is ignored unless
// WithTrailingDisallowed is given; use ParsePrefix to inspect the residue
// instead.
func Parse(input string, opts ...Option) (model.Value, error) {
	cfg := newConfig(opts)
	p := &parser{input: input, cfg: cfg}
	v, err := p.root()
	if err != nil {
		return model.Value{}, err
	}
	if cfg.disallowTrailing && !p.eof() {
		return model.Value{}, p.fatalf("value", "unexpected trailing input")
	}
	return v, nil
}

// ParsePrefix parses one value from the front of input and returns the
// unconsumed remainder, leaving the residue judgment to the caller.
func ParsePrefix(input string, opts ...Option) (model.Value, string, error) {
	p := &parser{input: input, cfg: newConfig(opts)}
	v, err := p.root()
	if err != nil {
		return model.Value{}, "", err
	}
	return v, p.input[p.pos:], nil
}

// parser is the state of one parse: the input, a cursor, and the current
// nesting depth. Each production is a method that either consumes input
// and returns a value, or fails: recoverably (errBacktrack, cursor
// restored by the caller) or fatally (*ParseError, reported up the stack).
type parser struct {
	input string
	pos   int
	depth int
	cfg   config
}

// root trims leading whitespace, dispatches once, and trims trailing
// whitespace. A recoverable failure here means none of the grammar rules
// matched, which at the outermost call is a whole-parse failure.
func (p *parser) root() (model.Value, error) {
	v, err := p.value()
	if err != nil {
		if isFatal(err) {
			return model.Value{}, err
		}
		return model.Value{}, p.fatalf("value", "no grammar rule matches the input")
	}
	p.skipSpace()
	return v, nil
}

// rule is one alternative of the grammar: a label for trace output and
// the parsing method itself.
type rule struct {
	name  string
	parse func(*parser) (model.Value, error)
}

// grammar is the dispatcher's ordered alternation, tried left to right;
// the first rule to succeed wins. Ordering constraints:
//
//  1. null literal
//  2. boolean literal
//  3. date/time heuristic, before number: a date's first group is a
//     valid-looking number prefix that the number rule would consume
//     partially and then choke on the following '-'
//  4. number
//  5. quoted string
//  6. tuple; the un-prefixed composites (6-8) run before the named forms
//  7. array     (9-11) so a bare composite literal is not mistaken for a
//  8. map       named form with a zero-length name
//  9. named tuple-variant
//  10. named struct
//  11. named array
//  12. wildcard, the last resort with almost no rejection criteria; anything
//     earlier would be shadowed by it
//
// Populated in init: the rule methods reach back into grammar through
// value, which a package-level composite literal would turn into an
// initialization cycle.
var grammar []rule

func init() {
	grammar = []rule{
		{"null", (*parser).parseNull},
		{"bool", (*parser).parseBool},
		{"datetime", (*parser).parseDatetime},
		{"number", (*parser).parseNumber},
		{"string", (*parser).parseString},
		{"tuple", (*parser).parseTuple},
		{"array", (*parser).parseArray},
		{"map", (*parser).parseMap},
		{"option", (*parser).parseVariant},
		{"struct", (*parser).parseStruct},
		{"named array", (*parser).parseNamedArray},
		{"wildcard", (*parser).parseWildcard},
	}
}

// value is the dispatcher: skip whitespace once, then try each rule in
// grammar order. A recoverable failure restores the cursor and moves on;
// a fatal failure stops the alternation immediately. When a rule matches
// and a trace hook is set, the hook observes the rule's name, the offset
// where the value began, and the nesting depth.
func (p *parser) value() (model.Value, error) {
	p.skipSpace()
	if p.depth >= p.cfg.maxDepth {
		return model.Value{}, p.fatalf("value", "nesting exceeds depth limit of %d", p.cfg.maxDepth)
	}
	depth := p.depth
	p.depth++
	defer func() { p.depth-- }()

	start := p.pos
	for _, r := range grammar {
		v, err := r.parse(p)
		if err == nil {
			if p.cfg.trace != nil {
				p.cfg.trace(TraceEvent{Rule: r.name, Offset: start, Depth: depth})
			}
			return v, nil
		}
		if isFatal(err) {
			return model.Value{}, err
		}
		p.pos = start
	}
	return model.Value{}, errBacktrack
}

// parseNull matches the literal "None".
func (p *parser) parseNull() (model.Value, error) {
	if !p.lit("None") {
		return model.Value{}, errBacktrack
	}
	return model.Null(), nil
}

// parseBool matches the literals "true" and "false".
func (p *parser) parseBool() (model.Value, error) {
	if p.lit("true") {
		return model.Boolean(true), nil
	}
	if p.lit("false") {
		return model.Boolean(false), nil
	}
	return model.Value{}, errBacktrack
}

// parseDatetime matches one or more digit/'.' groups joined by '-', a
// single space, then one or more groups joined by ':'. The matched text is
// captured verbatim, never interpreted numerically. Purely recoverable:
// there is no commit point, so a partial match simply backtracks.
func (p *parser) parseDatetime() (model.Value, error) {
	start := p.pos
	if !p.scanDateGroups('-') || !p.eat(' ') || !p.scanDateGroups(':') {
		p.pos = start
		return model.Value{}, errBacktrack
	}
	return model.Text(p.input[start:p.pos]), nil
}

// scanDateGroups scans one or more date/time groups joined by sep. A
// trailing separator without a following group is left unconsumed.
func (p *parser) scanDateGroups(sep byte) bool {
	if !p.scanDateGroup() {
		return false
	}
	for {
		save := p.pos
		if !p.eat(sep) {
			return true
		}
		if !p.scanDateGroup() {
			p.pos = save
			return true
		}
	}
}

func (p *parser) scanDateGroup() bool {
	start := p.pos
	for p.pos < len(p.input) && dateByte(p.input[p.pos]) {
		p.pos++
	}
	return p.pos > start
}

// parseNumber matches a decimal/exponential floating-point literal. The
// match is rejected when the next byte is '*': a numeric prefix of a
// partially-redacted token (e.g. 424242**********) must fall through to
// the wildcard so the whole token survives as text.
func (p *parser) parseNumber() (model.Value, error) {
	i := p.pos
	n := len(p.input)

	if i < n && (p.input[i] == '+' || p.input[i] == '-') {
		i++
	}
	intStart := i
	for i < n && digitByte(p.input[i]) {
		i++
	}
	intDigits := i - intStart
	fracDigits := 0
	if i < n && p.input[i] == '.' {
		j := i + 1
		for j < n && digitByte(p.input[j]) {
			j++
		}
		fracDigits = j - i - 1
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return model.Value{}, errBacktrack
	}
	if i < n && (p.input[i] == 'e' || p.input[i] == 'E') {
		j := i + 1
		if j < n && (p.input[j] == '+' || p.input[j] == '-') {
			j++
		}
		expStart := j
		for j < n && digitByte(p.input[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	if i < n && p.input[i] == '*' {
		return model.Value{}, errBacktrack
	}
	f, err := strconv.ParseFloat(p.input[p.pos:i], 64)
	if err != nil {
		return model.Value{}, errBacktrack
	}
	p.pos = i
	return model.Number(f), nil
}

// parseString matches a quoted string. The opening quote is the commit
// point: a malformed escape or missing closing quote past it is fatal. An
// unescaped copy is made only when an escape sequence was present;
// otherwise the text is a view into the input.
func (p *parser) parseString() (model.Value, error) {
	if !p.eat('"') {
		return model.Value{}, errBacktrack
	}
	raw, hadEscape, err := p.scanQuotedBody()
	if err != nil {
		return model.Value{}, err
	}
	if !p.eat('"') {
		return model.Value{}, p.fatalf("string", "missing closing '\"'")
	}
	if hadEscape {
		return model.Text(unescape(raw)), nil
	}
	return model.Text(raw), nil
}

// parseTuple matches "( v0, v1, ... )". Tuples and arrays are not
// distinguished in the output; both produce the list shape.
func (p *parser) parseTuple() (model.Value, error) {
	items, err := p.parseSeq('(', ')', "tuple")
	if err != nil {
		return model.Value{}, err
	}
	return model.List(items), nil
}

// parseArray matches "[ v0, v1, ... ]".
func (p *parser) parseArray() (model.Value, error) {
	items, err := p.parseSeq('[', ']', "array")
	if err != nil {
		return model.Value{}, err
	}
	return model.List(items), nil
}

// parseSeq matches a delimited, comma-separated sequence of values. The
// opening delimiter is the commit point; past it, a missing closing
// delimiter is fatal with the construct's label. Zero elements is valid.
func (p *parser) parseSeq(open, close byte, label string) ([]model.Value, error) {
	if !p.eat(open) {
		return nil, errBacktrack
	}
	var items []model.Value
	save := p.pos
	v, err := p.value()
	if err != nil {
		if isFatal(err) {
			return nil, err
		}
		p.pos = save
	} else {
		items = append(items, v)
		for {
			save := p.pos
			p.skipSpace()
			if !p.eat(',') {
				p.pos = save
				break
			}
			v, err := p.value()
			if err != nil {
				if isFatal(err) {
					return nil, err
				}
				p.pos = save
				break
			}
			items = append(items, v)
		}
	}
	p.skipSpace()
	if !p.eat(close) {
		return nil, p.fatalf(label, "missing '%c'", close)
	}
	return items, nil
}

// parseMap matches "{ "k": v, ... }" with quoted keys. The opening brace
// must abut the containing construct; leading whitespace is not consumed
// here (the dispatcher already skipped it for a top-level attempt).
func (p *parser) parseMap() (model.Value, error) {
	if !p.eat('{') {
		return model.Value{}, errBacktrack
	}
	return p.parseEntries("map", (*parser).quotedKey)
}

// parseStructMap matches "{ k: v, ... }" with bare identifier (or quoted)
// keys, the shape of a derived debug-format struct body. Unlike the
// quoted-key map, whitespace before the opening brace is tolerated.
func (p *parser) parseStructMap() (model.Value, error) {
	p.skipSpace()
	if !p.eat('{') {
		return model.Value{}, errBacktrack
	}
	return p.parseEntries("struct map", (*parser).structKey)
}

// parseEntries matches the interior of a map construct after its opening
// brace. Duplicate keys resolve to the most recently parsed entry.
func (p *parser) parseEntries(label string, key func(*parser) (string, error)) (model.Value, error) {
	fields := make(map[string]model.Value)
	save := p.pos
	k, v, err := p.parseEntry(label, key)
	if err != nil {
		if isFatal(err) {
			return model.Value{}, err
		}
		p.pos = save
	} else {
		fields[k] = v
		for {
			save := p.pos
			p.skipSpace()
			if !p.eat(',') {
				p.pos = save
				break
			}
			k, v, err := p.parseEntry(label, key)
			if err != nil {
				if isFatal(err) {
					return model.Value{}, err
				}
				p.pos = save
				break
			}
			fields[k] = v
		}
	}
	p.skipSpace()
	if !p.eat('}') {
		return model.Value{}, p.fatalf(label, "missing '}'")
	}
	return model.Map(fields), nil
}

// parseEntry matches one key/value pair. Once a key has matched, the ':'
// is required: its absence is fatal with the enclosing map's label.
func (p *parser) parseEntry(label string, key func(*parser) (string, error)) (string, model.Value, error) {
	p.skipSpace()
	k, err := key(p)
	if err != nil {
		return "", model.Value{}, err
	}
	p.skipSpace()
	if !p.eat(':') {
		return "", model.Value{}, p.fatalf(label, "missing ':' after key %q", k)
	}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return "", model.Value{}, err
	}
	return k, v, nil
}

// quotedKey matches a quoted-string key, unescaping it when needed.
func (p *parser) quotedKey() (string, error) {
	if !p.eat('"') {
		return "", errBacktrack
	}
	raw, hadEscape, err := p.scanQuotedBody()
	if err != nil {
		return "", err
	}
	if !p.eat('"') {
		return "", p.fatalf("string", "missing closing '\"'")
	}
	if hadEscape {
		return unescape(raw), nil
	}
	return raw, nil
}

// structKey matches a bare identifier key, or falls back to a quoted one.
func (p *parser) structKey() (string, error) {
	if k, ok := p.scanBareKey(); ok {
		return k, nil
	}
	return p.quotedKey()
}

// parseVariant matches "Name( v )": a bare identifier immediately followed
// by '(' with no whitespace between them, which is the commit point. Exactly
// one inner value; the wrapping name is discarded. This single rule
// collapses optional-present wrappers and single-field tuple-variants down
// to the value they carry.
func (p *parser) parseVariant() (model.Value, error) {
	if _, ok := p.scanBareKey(); !ok {
		return model.Value{}, errBacktrack
	}
	if !p.eat('(') {
		return model.Value{}, errBacktrack
	}
	v, err := p.value()
	if err != nil {
		if isFatal(err) {
			return model.Value{}, err
		}
		return model.Value{}, p.fatalf("option", "expected a value")
	}
	if !p.eat(')') {
		return model.Value{}, p.fatalf("option", "missing ')'")
	}
	return v, nil
}

// parseStruct matches "Name { k: v, ... }": a bare identifier followed by
// a struct-shaped map. The identifier is discarded; only the map remains,
// structurally indistinguishable from an unnamed one.
func (p *parser) parseStruct() (model.Value, error) {
	if _, ok := p.scanBareKey(); !ok {
		return model.Value{}, errBacktrack
	}
	return p.parseStructMap()
}

// parseNamedArray matches "Name [ v0, v1, ... ]", discarding the name.
func (p *parser) parseNamedArray() (model.Value, error) {
	if _, ok := p.scanBareKey(); !ok {
		return model.Value{}, errBacktrack
	}
	p.skipSpace()
	items, err := p.parseSeq('[', ']', "array")
	if err != nil {
		return model.Value{}, err
	}
	return model.List(items), nil
}

// parseWildcard is the last-resort rule for bare tokens: masked values
// become the sentinel, anything else is captured verbatim up to the next
// structural delimiter.
func (p *parser) parseWildcard() (model.Value, error) {
	s, ok := p.scanWildcard()
	if !ok {
		return model.Value{}, errBacktrack
	}
	return model.Text(s), nil
}
