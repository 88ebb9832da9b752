package dsl

import "fmt"

// ParseError describes where and why parsing failed: the grammar rule that
// was being matched, what was expected versus found, the position, and an
// excerpt of the offending line. Parsing is atomic, so a ParseError always
// means no document was produced.
type ParseError struct {
	Rule     string // grammar rule being matched, e.g. "production"
	Expected string // literal or construct that was expected
	Found    string // what the input held instead
	Offset   int    // byte offset of the failure
	Line     int    // 1-based line
	Col      int    // 1-based column
	Excerpt  string // offending line from the failure point
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse lsystem: %s: expected %s, got %s at line %d:%d near %q",
		e.Rule, e.Expected, e.Found, e.Line, e.Col, e.Excerpt)
}

// errf builds a ParseError at the scanner's current position.
func (s *scanner) errf(rule, expected string) *ParseError {
	found := "end of input"
	switch {
	case s.eof():
	case s.ch == '\n':
		found = "end of line"
	default:
		found = fmt.Sprintf("%q", s.ch)
	}
	return &ParseError{
		Rule:     rule,
		Expected: expected,
		Found:    found,
		Offset:   s.off,
		Line:     s.line,
		Col:      s.col,
		Excerpt:  s.currentLine(),
	}
}
