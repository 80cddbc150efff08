package parser

import (
	"errors"
	"fmt"
	"strings"
)

// errBacktrack is the recoverable failure: the construct's opening token
// was never consumed, so the dispatcher is free to try the next
// alternative. It carries no position because it is never user-visible;
// the only recoverable failure that escapes Parse is "no grammar rule
// matched", which Parse rewrites into a labeled ParseError.
var errBacktrack = errors.New("no match")

// ParseError is a committed (fatal) parsing failure. Once a construct's
// opening delimiter has been consumed, the input is unambiguously intended
// as that construct; a failure past that point is reported immediately
// with the construct's label instead of letting the dispatcher try other
// alternatives and produce a misleading location.
type ParseError struct {
	Context string // Construct in progress: string, array, tuple, map, struct map, option, value
	Message string
	Offset  int    // Byte offset into Input where the failure occurred
	Input   string // Full input, for snippet rendering
}

// Error formats the error with a caret snippet pointing at the offset.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s\n%s", e.Context, e.Message, e.snippet())
}

// snippet renders the failing region of the input with a caret pointer.
// Long inputs are windowed around the offset so the caret stays visible.
func (e *ParseError) snippet() string {
	if e.Input == "" {
		return fmt.Sprintf("  --> offset %d", e.Offset)
	}

	const window = 40

	offset := e.Offset
	if offset > len(e.Input) {
		offset = len(e.Input)
	}

	start := offset - window
	if start < 0 {
		start = 0
	}
	end := offset + window
	if end > len(e.Input) {
		end = len(e.Input)
	}

	excerpt := e.Input[start:end]
	// Newlines would break the caret alignment
	excerpt = strings.ReplaceAll(excerpt, "\n", " ")
	excerpt = strings.ReplaceAll(excerpt, "\t", " ")

	var b strings.Builder
	fmt.Fprintf(&b, "  --> offset %d\n", e.Offset)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "   | %s\n", excerpt)
	b.WriteString("   | ")
	b.WriteString(strings.Repeat(" ", offset-start))
	b.WriteString("^")
	return b.String()
}

// fatalf builds a committed failure at the parser's current position.
func (p *parser) fatalf(context, format string, args ...any) error {
	return &ParseError{
		Context: context,
		Message: fmt.Sprintf(format, args...),
		Offset:  p.pos,
		Input:   p.input,
	}
}

// isFatal reports whether err is a committed failure that must stop the
// dispatcher from trying further alternatives.
func isFatal(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
