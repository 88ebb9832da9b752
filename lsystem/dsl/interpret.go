package dsl

import "github.com/lsys-xyz/go-lsys/lsystem"

// Interpret folds a parse tree into a validated lsystem.LSystem. Production
// statements naming the same predecessor accumulate into one alternative
// list in source order; they never overwrite each other.
func Interpret(node *DocumentNode) (*lsystem.LSystem, error) {
	productions := make(lsystem.ProductionMap, len(node.Productions))
	for _, p := range node.Productions {
		productions.Add(p.Predecessor, lsystem.Production{
			Weight:    p.Weight,
			Successor: p.Successor,
		})
	}

	sys := &lsystem.LSystem{
		Generations: node.Generations,
		Angle:       node.Angle,
		Scale:       node.Scale,
		Axiom:       node.Axiom,
		Productions: productions,
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	return sys, nil
}
