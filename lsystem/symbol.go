// Package lsystem defines the L-system document model: symbols, weighted
// production rules, and the assembled LSystem value produced by the dsl
// package and consumed by the derive package.
package lsystem

import "strings"

// Kind discriminates the closed set of symbol variants.
type Kind int

const (
	KindMoveForward Kind = iota // 'F': advance and draw
	KindJumpForward             // 'f': advance without drawing
	KindWord                    // any other single character, opaque to the engine
)

// Symbol is one grammar terminal. It is a comparable value: two symbols are
// the same identity exactly when their kind and character match, so Symbol
// can be used directly as a map key. A Word built from 'F' is distinct from
// MoveForward.
type Symbol struct {
	kind Kind
	ch   rune
}

// Reserved singleton symbols.
var (
	MoveForward = Symbol{kind: KindMoveForward, ch: 'F'}
	JumpForward = Symbol{kind: KindJumpForward, ch: 'f'}
)

// Word returns the opaque symbol for ch.
func Word(ch rune) Symbol {
	return Symbol{kind: KindWord, ch: ch}
}

// FromRune maps a single character to its symbol. Total: 'F' and 'f' yield
// the reserved variants, everything else a Word.
func FromRune(r rune) Symbol {
	switch r {
	case 'F':
		return MoveForward
	case 'f':
		return JumpForward
	default:
		return Word(r)
	}
}

// Kind returns the symbol variant.
func (s Symbol) Kind() Kind { return s.kind }

// Rune returns the source character of the symbol.
func (s Symbol) Rune() rune { return s.ch }

func (s Symbol) String() string { return string(s.ch) }

// Compare orders symbols by (kind, character). The exact order carries no
// meaning; it exists so callers can enumerate symbol-keyed maps
// deterministically.
func Compare(a, b Symbol) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if a.ch != b.ch {
		if a.ch < b.ch {
			return -1
		}
		return 1
	}
	return 0
}

// RuleSequence is an ordered sequence of symbols. Order is the left-to-right
// token order of the source text or of a production's right-hand side.
type RuleSequence []Symbol

func (rs RuleSequence) String() string {
	var b strings.Builder
	for _, s := range rs {
		b.WriteRune(s.ch)
	}
	return b.String()
}

// Clone returns a copy sharing no storage with rs.
func (rs RuleSequence) Clone() RuleSequence {
	if rs == nil {
		return nil
	}
	out := make(RuleSequence, len(rs))
	copy(out, rs)
	return out
}
