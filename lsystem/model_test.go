package lsystem

import (
	"errors"
	"testing"
)

func validSystem() *LSystem {
	productions := make(ProductionMap)
	productions.Add(MoveForward, Production{
		Weight:    1,
		Successor: RuleSequence{MoveForward, MoveForward},
	})
	return &LSystem{
		Generations: 2,
		Angle:       25,
		Scale:       1,
		Axiom:       RuleSequence{MoveForward},
		Productions: productions,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LSystem)
		wantErr error
	}{
		{"valid", func(ls *LSystem) {}, nil},
		{"zero generations", func(ls *LSystem) { ls.Generations = 0 }, nil},
		{"no productions", func(ls *LSystem) { ls.Productions = nil }, nil},
		{"negative generations", func(ls *LSystem) { ls.Generations = -1 }, ErrNegativeGenerations},
		{"empty axiom", func(ls *LSystem) { ls.Axiom = nil }, ErrEmptyAxiom},
		{"zero weight", func(ls *LSystem) {
			ls.Productions.Add(Word('X'), Production{Weight: 0, Successor: RuleSequence{MoveForward}})
		}, ErrNonPositiveWeight},
		{"negative weight", func(ls *LSystem) {
			ls.Productions.Add(Word('X'), Production{Weight: -2, Successor: RuleSequence{MoveForward}})
		}, ErrNonPositiveWeight},
		{"empty successor", func(ls *LSystem) {
			ls.Productions.Add(Word('X'), Production{Weight: 1})
		}, ErrEmptySuccessor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := validSystem()
			tt.mutate(sys)
			err := sys.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProductionMapAccumulates(t *testing.T) {
	m := make(ProductionMap)
	first := Production{Weight: 1, Successor: RuleSequence{MoveForward}}
	second := Production{Weight: 3, Successor: RuleSequence{JumpForward}}
	m.Add(Word('X'), first)
	m.Add(Word('X'), second)

	alts := m[Word('X')]
	if len(alts) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(alts))
	}
	if alts[0].Weight != 1 || alts[1].Weight != 3 {
		t.Errorf("alternatives out of insertion order: %v", alts)
	}
}
