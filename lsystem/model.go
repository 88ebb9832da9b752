package lsystem

import "fmt"

// Production is one weighted rewrite alternative for a predecessor symbol.
type Production struct {
	Weight    float64
	Successor RuleSequence
}

// ProductionMap maps a predecessor symbol to its rewrite alternatives in
// source order. Multiple source lines naming the same predecessor accumulate;
// list order is the tie-break for equal-weight selection.
type ProductionMap map[Symbol][]Production

// Add appends one alternative to the predecessor's list.
func (m ProductionMap) Add(pred Symbol, p Production) {
	m[pred] = append(m[pred], p)
}

// LSystem is a complete parsed document. It is immutable once assembled:
// derivation only reads it, so one value may be shared across concurrent
// derivation calls.
type LSystem struct {
	Generations int
	Angle       float64 // degrees, forwarded to the geometric interpreter
	Scale       float64
	Axiom       RuleSequence
	Productions ProductionMap
}

// Validate checks the document invariants: a non-negative generation count,
// a non-empty axiom, and strictly positive weights with non-empty successors
// for every alternative. The dsl package calls this during assembly so that
// an LSystem obtained from the parser is always safe to derive.
func (ls *LSystem) Validate() error {
	if ls.Generations < 0 {
		return fmt.Errorf("generations %d: %w", ls.Generations, ErrNegativeGenerations)
	}
	if len(ls.Axiom) == 0 {
		return ErrEmptyAxiom
	}
	for pred, alts := range ls.Productions {
		for i, p := range alts {
			if !(p.Weight > 0) {
				return fmt.Errorf("production %q alternative %d: weight %v: %w", pred, i+1, p.Weight, ErrNonPositiveWeight)
			}
			if len(p.Successor) == 0 {
				return fmt.Errorf("production %q alternative %d: %w", pred, i+1, ErrEmptySuccessor)
			}
		}
	}
	return nil
}
