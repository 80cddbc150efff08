package parser

// Option represents a parser configuration option.
type Option func(*config)

// DefaultMaxDepth bounds structural nesting when WithMaxDepth is not
// given. Recursion depth tracks input nesting one-to-one, so the bound
// converts stack exhaustion on hostile input into a reportable error.
const DefaultMaxDepth = 512

// TraceEvent describes one matched grammar rule, observed through an
// injected trace hook. Tracing is opt-in and has zero overhead when unset.
type TraceEvent struct {
	Rule   string // Label of the rule that matched: "null", "number", "struct", ...
	Offset int    // Byte offset where the matched value began
	Depth  int    // Structural nesting depth of the matched value
}

// config holds parser configuration.
type config struct {
	maxDepth         int
	disallowTrailing bool
	trace            func(TraceEvent)
}

func newConfig(opts []Option) config {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxDepth overrides the maximum structural nesting depth.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// WithTrailingDisallowed makes unconsumed input after a successful parse a
// parse error. By default trailing input is ignored, matching the historic
// behavior of leaving the residue judgment to the caller; ParsePrefix
// exposes the residue directly for callers that want to decide themselves.
func WithTrailingDisallowed() Option {
	return func(c *config) {
		c.disallowTrailing = true
	}
}

// WithTraceFunc installs a hook called on every dispatcher entry.
func WithTraceFunc(fn func(TraceEvent)) Option {
	return func(c *config) {
		c.trace = fn
	}
}
