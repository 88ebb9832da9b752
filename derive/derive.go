// Package derive expands an L-system axiom across generations, resolving
// weighted stochastic choice per symbol occurrence.
package derive

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lsys-xyz/go-lsys/lsystem"
)

// ErrSequenceTooLong is returned when a derivation exceeds Options.MaxLength
// mid-generation. High fan-out production sets grow exponentially; the limit
// lets callers fail instead of exhausting memory.
var ErrSequenceTooLong = errors.New("derived sequence exceeds length limit")

// Options configures one derivation call.
type Options struct {
	// Rand is the randomness source for weighted selection. A seeded value
	// makes stochastic derivations reproducible. Nil falls back to a
	// time-seeded generator. Concurrent derivations must not share one Rand.
	Rand *rand.Rand

	// MaxLength caps the derived sequence length per generation. Zero means
	// unlimited.
	MaxLength int
}

// Derive expands the document's axiom for its own generation count.
func Derive(sys *lsystem.LSystem, opts *Options) (lsystem.RuleSequence, error) {
	return DeriveN(sys, sys.Generations, opts)
}

// DeriveN expands the axiom for an explicit generation count, overriding the
// document's. Each generation rewrites the whole previous sequence: every
// symbol occurrence is looked up independently, replaced by one weighted
// alternative when productions exist for it, and copied unchanged otherwise.
// The result is freshly allocated and shares no storage with the document.
func DeriveN(sys *lsystem.LSystem, generations int, opts *Options) (lsystem.RuleSequence, error) {
	if generations < 0 {
		return nil, fmt.Errorf("derive: negative generation count %d", generations)
	}
	if opts == nil {
		opts = &Options{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	current := sys.Axiom.Clone()
	for g := 0; g < generations; g++ {
		next := make(lsystem.RuleSequence, 0, len(current))
		for _, sym := range current {
			alts := sys.Productions[sym]
			if len(alts) == 0 {
				next = append(next, sym)
			} else {
				next = append(next, pick(alts, rng).Successor...)
			}
			if opts.MaxLength > 0 && len(next) > opts.MaxLength {
				return nil, fmt.Errorf("derive: generation %d: %w", g+1, ErrSequenceTooLong)
			}
		}
		current = next
	}
	return current, nil
}

// pick selects one alternative with probability weight/total. Weights need
// not be normalized. The walk runs in insertion order, so equal weights
// tie-break by source order. A single alternative consumes no randomness,
// which keeps fully deterministic documents independent of the rng state.
func pick(alts []lsystem.Production, rng *rand.Rand) *lsystem.Production {
	if len(alts) == 1 {
		return &alts[0]
	}
	total := 0.0
	for i := range alts {
		total += alts[i].Weight
	}
	if !(total > 0) {
		// The parser guarantees positive weights; reaching this means the
		// document was built out-of-band and violates the model invariants.
		panic(fmt.Sprintf("lsystem: non-positive weight sum %v in production list", total))
	}
	r := rng.Float64() * total
	for i := range alts {
		r -= alts[i].Weight
		if r < 0 {
			return &alts[i]
		}
	}
	return &alts[len(alts)-1]
}
