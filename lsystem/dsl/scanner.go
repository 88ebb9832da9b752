// Package dsl parses the textual L-system definition language into an
// lsystem.LSystem.
//
// The format is line oriented: a fixed header (generations, angle, scale),
// an axiom line, then zero or more production lines. Spaces are
// insignificant between tokens and '#' starts a comment running to the end
// of the line; newlines terminate statements and are never skipped silently.
package dsl

import "unicode/utf8"

// scanner is a rune cursor over the input with offset, line and column
// tracking. The parser drives it contextually: there is no fixed token
// alphabet because a symbol is any single non-space, non-newline character.
type scanner struct {
	input   string
	off     int  // byte offset of the current rune
	nextOff int  // byte offset just past the current rune
	ch      rune // current rune, 0 at end of input
	line    int  // 1-based
	col     int  // 1-based rune column
}

func newScanner(input string) *scanner {
	s := &scanner{input: input, line: 1}
	s.next()
	return s
}

func (s *scanner) next() {
	if s.ch == '\n' {
		s.line++
		s.col = 0
	}
	if s.nextOff >= len(s.input) {
		s.off = len(s.input)
		s.ch = 0
		return
	}
	r, w := utf8.DecodeRuneInString(s.input[s.nextOff:])
	s.off = s.nextOff
	s.nextOff += w
	s.ch = r
	s.col++
}

func (s *scanner) eof() bool {
	return s.off >= len(s.input)
}

// skipSpaces consumes space characters only. Newlines are significant and
// stay put.
func (s *scanner) skipSpaces() {
	for s.ch == ' ' {
		s.next()
	}
}

// skipComment consumes from a '#' through the terminating newline (or end
// of input).
func (s *scanner) skipComment() {
	for !s.eof() && s.ch != '\n' {
		s.next()
	}
	if s.ch == '\n' {
		s.next()
	}
}

// skipBlankLines consumes any run of blank lines and comment lines. Used
// between statements, never inside one.
func (s *scanner) skipBlankLines() {
	for {
		s.skipSpaces()
		switch {
		case s.ch == '\n':
			s.next()
		case s.ch == '#':
			s.skipComment()
		default:
			return
		}
	}
}

// hasPrefix reports whether the unconsumed input starts with lit.
func (s *scanner) hasPrefix(lit string) bool {
	return len(s.input)-s.off >= len(lit) && s.input[s.off:s.off+len(lit)] == lit
}

// currentLine returns the remainder of the source line at the cursor, for
// error excerpts.
func (s *scanner) currentLine() string {
	end := s.off
	for end < len(s.input) && s.input[end] != '\n' {
		end++
	}
	return s.input[s.off:end]
}
