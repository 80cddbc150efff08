package parser

// ASCII character lookup tables for fast classification (zero-allocation).
//
// Use inline bounds-checked lookups:
//
//	if ch < 128 && isIdent[ch] { ... }
//
// The grammar is ASCII-only at the lexical level: identifiers, numeric
// groups, and delimiters are all ASCII. Bytes >= 128 only ever appear
// inside string bodies and wildcard runs, where they are carried through
// untouched.
var (
	isSpace    [128]bool // Space, tab, carriage return, newline
	isIdent    [128]bool // a-z, A-Z, 0-9, _ (bare keys and type/variant names)
	isDigit    [128]bool // 0-9
	isDateChar [128]bool // 0-9 and '.' (date/time groups only)
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		isSpace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'

		isDigit[i] = '0' <= ch && ch <= '9'

		isIdent[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') ||
			isDigit[i] || ch == '_'

		isDateChar[i] = isDigit[i] || ch == '.'
	}
}

// identByte reports whether b belongs to the identifier class.
func identByte(b byte) bool {
	return b < 128 && isIdent[b]
}

// digitByte reports whether b is an ASCII digit.
func digitByte(b byte) bool {
	return b < 128 && isDigit[b]
}

// dateByte reports whether b belongs to the date/time group class.
func dateByte(b byte) bool {
	return b < 128 && isDateChar[b]
}

// spaceByte reports whether b is skippable whitespace.
func spaceByte(b byte) bool {
	return b < 128 && isSpace[b]
}

// escapableByte reports whether b may follow a backslash in a string body,
// bare key, or wildcard run.
func escapableByte(b byte) bool {
	return b == '"' || b == 'n' || b == '\\'
}

// terminatorByte reports whether b ends a wildcard run. Wildcard tokens
// stop only at structural delimiters; everything else, spaces included,
// is part of the token.
func terminatorByte(b byte) bool {
	return b == ',' || b == '}' || b == ')' || b == ']'
}
