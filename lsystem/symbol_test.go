package lsystem

import "testing"

func TestFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Symbol
	}{
		{'F', MoveForward},
		{'f', JumpForward},
		{'+', Word('+')},
		{'-', Word('-')},
		{'[', Word('[')},
		{'X', Word('X')},
	}
	for _, tt := range tests {
		if got := FromRune(tt.r); got != tt.want {
			t.Errorf("FromRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestSymbolIdentity(t *testing.T) {
	if Word('F') == MoveForward {
		t.Error("Word('F') must be a distinct identity from MoveForward")
	}
	if Word('f') == JumpForward {
		t.Error("Word('f') must be a distinct identity from JumpForward")
	}
	if Word('X') != Word('X') {
		t.Error("Word symbols with the same character must compare equal")
	}

	// Identity works as a map key.
	m := map[Symbol]int{
		MoveForward: 1,
		Word('F'):   2,
	}
	if m[MoveForward] != 1 || m[Word('F')] != 2 {
		t.Errorf("map lookup by symbol identity failed: %v", m)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Symbol
		want int
	}{
		{MoveForward, MoveForward, 0},
		{MoveForward, JumpForward, -1},
		{JumpForward, MoveForward, 1},
		{JumpForward, Word('a'), -1},
		{Word('A'), Word('B'), -1},
		{Word('B'), Word('A'), 1},
		{Word('+'), Word('+'), 0},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSymbolString(t *testing.T) {
	if MoveForward.String() != "F" {
		t.Errorf("MoveForward.String() = %q", MoveForward.String())
	}
	if JumpForward.String() != "f" {
		t.Errorf("JumpForward.String() = %q", JumpForward.String())
	}
	if Word('+').String() != "+" {
		t.Errorf("Word('+').String() = %q", Word('+').String())
	}
}

func TestRuleSequenceString(t *testing.T) {
	seq := RuleSequence{MoveForward, Word('['), Word('+'), MoveForward, Word(']'), JumpForward}
	if got := seq.String(); got != "F[+F]f" {
		t.Errorf("String() = %q, want %q", got, "F[+F]f")
	}
}

func TestRuleSequenceClone(t *testing.T) {
	seq := RuleSequence{MoveForward, Word('X')}
	clone := seq.Clone()
	clone[0] = JumpForward
	if seq[0] != MoveForward {
		t.Error("mutating a clone must not affect the original")
	}
	if RuleSequence(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
