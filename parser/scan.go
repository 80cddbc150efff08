package parser

import "strings"

// MaskedText is the fixed sentinel substituted for any masked-value token.
// A masked token has the exact shape "*** <word> ***"; whatever sits
// between the markers (a type path, a byte length) is discarded, since the
// parser never attempts to interpret what was redacted.
const MaskedText = "*** masked ***"

// skipSpace consumes zero or more whitespace bytes. Never fails.
func (p *parser) skipSpace() {
	for p.pos < len(p.input) && spaceByte(p.input[p.pos]) {
		p.pos++
	}
}

// eof reports whether the input is exhausted.
func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

// eat consumes b if it is the current byte.
func (p *parser) eat(b byte) bool {
	if p.eof() || p.input[p.pos] != b {
		return false
	}
	p.pos++
	return true
}

// lit consumes the literal s if the input starts with it here.
func (p *parser) lit(s string) bool {
	if !strings.HasPrefix(p.input[p.pos:], s) {
		return false
	}
	p.pos += len(s)
	return true
}

// scanBareKey scans a bare identifier: a non-empty run of identifier-class
// bytes, where a backslash followed by `"`, `n`, or `\` counts as a unit.
// Used for struct keys and for type/variant names in the named forms. The
// matched text is returned verbatim.
func (p *parser) scanBareKey() (string, bool) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '\\' && p.pos+1 < len(p.input) && escapableByte(p.input[p.pos+1]) {
			p.pos += 2
			continue
		}
		if !identByte(c) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return p.input[start:p.pos], true
}

// scanQuotedBody scans a string interior starting just after the opening
// quote: a maximal run of non-quote bytes where backslash escapes do not
// terminate the run. It stops at the closing quote or end of input and
// reports whether an escape sequence was seen, so the caller only pays for
// an unescaped copy when one is actually needed. A backslash followed by
// anything other than `"`, `n`, or `\` is a malformed escape.
func (p *parser) scanQuotedBody() (raw string, hadEscape bool, err error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '"' {
			break
		}
		if c == '\\' {
			if p.pos+1 >= len(p.input) || !escapableByte(p.input[p.pos+1]) {
				return "", false, p.fatalf("string", "invalid escape sequence")
			}
			hadEscape = true
			p.pos += 2
			continue
		}
		p.pos++
	}
	return p.input[start:p.pos], hadEscape, nil
}

// unescape resolves the escape pairs of a scanned string body.
func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			if s[i] == 'n' {
				b.WriteByte('\n')
			} else {
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// scanMasked recognizes a masked-value token: "*** ", a non-empty run of
// non-space bytes, " ***". On no match the position is restored.
func (p *parser) scanMasked() bool {
	save := p.pos
	if !p.lit("*** ") {
		return false
	}
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != ' ' {
		p.pos++
	}
	if p.pos == start || !p.lit(" ***") {
		p.pos = save
		return false
	}
	return true
}

// scanWildcard is the scanner of last resort for bare, un-quoted tokens:
// a masked token maps to the sentinel, otherwise a maximal non-empty run
// of bytes up to (not including) the next `,`, `}`, `)`, or `]`, honoring
// the same backslash-escape exception as string bodies. The run is kept
// verbatim, spaces included.
func (p *parser) scanWildcard() (string, bool) {
	if p.scanMasked() {
		return MaskedText, true
	}
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '\\' && p.pos+1 < len(p.input) && escapableByte(p.input[p.pos+1]) {
			p.pos += 2
			continue
		}
		if terminatorByte(c) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return p.input[start:p.pos], true
}
