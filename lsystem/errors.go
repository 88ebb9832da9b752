package lsystem

import "errors"

// Error types for document validation. All of them mean the document is
// invalid as a whole; none is recoverable by the caller.
var (
	// ErrEmptyAxiom is returned when a document has no axiom symbols.
	ErrEmptyAxiom = errors.New("empty axiom")

	// ErrNegativeGenerations is returned when a document asks for a negative
	// generation count.
	ErrNegativeGenerations = errors.New("negative generations")

	// ErrNonPositiveWeight is returned when a production alternative carries
	// a weight that is not strictly positive.
	ErrNonPositiveWeight = errors.New("non-positive production weight")

	// ErrEmptySuccessor is returned when a production alternative has an
	// empty right-hand side.
	ErrEmptySuccessor = errors.New("empty production successor")
)
