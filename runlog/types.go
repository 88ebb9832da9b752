// Package runlog records derivation runs so stochastic results can be
// replayed: a document fingerprint plus the seed and generation count fully
// determines a derivation.
package runlog

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// Run is one recorded derivation.
type Run struct {
	ID          string    // uuid, assigned by the store when empty
	DocHash     string    // Fingerprint of the source document
	Seed        int64     // rng seed used for the derivation
	Generations int       // generation count actually derived
	OutputLen   int       // length of the derived sequence
	CreatedAt   time.Time // assigned by the store when zero
}

// Store persists derivation runs.
type Store interface {
	// Record saves a run, assigning ID and CreatedAt if unset.
	Record(ctx context.Context, run *Run) error

	// List returns the runs for a document fingerprint, oldest first. An
	// empty docHash returns all runs.
	List(ctx context.Context, docHash string) ([]*Run, error)

	Close() error
}

// Fingerprint returns the stable hex digest identifying a source document.
func Fingerprint(src string) string {
	sum := blake3.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}

func prepare(run *Run) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
}
