package runlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/lsys-xyz/go-lsys/runlog"
)

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func() runlog.Store {
		return runlog.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreTests(t, func() runlog.Store {
		store, err := runlog.NewSQLiteStore(":memory:")
		if err != nil {
			t.Fatalf("failed to create sqlite store: %v", err)
		}
		return store
	})
}

func runStoreTests(t *testing.T, newStore func() runlog.Store) {
	t.Run("RecordAndList", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		hashA := runlog.Fingerprint("axiom: F")
		hashB := runlog.Fingerprint("axiom: f")

		run1 := &runlog.Run{DocHash: hashA, Seed: 42, Generations: 3, OutputLen: 11}
		run2 := &runlog.Run{DocHash: hashB, Seed: 7, Generations: 1, OutputLen: 2}
		if err := store.Record(ctx, run1); err != nil {
			t.Fatalf("record failed: %v", err)
		}
		if err := store.Record(ctx, run2); err != nil {
			t.Fatalf("record failed: %v", err)
		}

		if run1.ID == "" {
			t.Error("expected an assigned run ID")
		}
		if run1.CreatedAt.IsZero() {
			t.Error("expected an assigned creation time")
		}

		runs, err := store.List(ctx, hashA)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(runs) != 1 {
			t.Fatalf("expected 1 run for document A, got %d", len(runs))
		}
		got := runs[0]
		if got.ID != run1.ID || got.Seed != 42 || got.Generations != 3 || got.OutputLen != 11 {
			t.Errorf("run did not round trip: %+v", got)
		}

		all, err := store.List(ctx, "")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 runs total, got %d", len(all))
		}
	})

	t.Run("OldestFirst", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		hash := runlog.Fingerprint("axiom: X")
		later := &runlog.Run{DocHash: hash, Seed: 2, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}
		earlier := &runlog.Run{DocHash: hash, Seed: 1, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
		if err := store.Record(ctx, later); err != nil {
			t.Fatalf("record failed: %v", err)
		}
		if err := store.Record(ctx, earlier); err != nil {
			t.Fatalf("record failed: %v", err)
		}

		runs, err := store.List(ctx, hash)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(runs) != 2 {
			t.Fatalf("expected 2 runs, got %d", len(runs))
		}
		if runs[0].Seed != 1 || runs[1].Seed != 2 {
			t.Errorf("runs not ordered oldest first: %v, %v", runs[0].CreatedAt, runs[1].CreatedAt)
		}
	})

	t.Run("EmptyList", func(t *testing.T) {
		store := newStore()
		defer store.Close()

		runs, err := store.List(context.Background(), runlog.Fingerprint("no such doc"))
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(runs) != 0 {
			t.Errorf("expected no runs, got %d", len(runs))
		}
	})
}

func TestFingerprint(t *testing.T) {
	a := runlog.Fingerprint("generations: 1\nangle: 0\nscale: 1\naxiom: F\n")
	b := runlog.Fingerprint("generations: 1\nangle: 0\nscale: 1\naxiom: F\n")
	c := runlog.Fingerprint("generations: 2\nangle: 0\nscale: 1\naxiom: F\n")

	if a != b {
		t.Error("fingerprint must be stable for identical input")
	}
	if a == c {
		t.Error("different documents must have different fingerprints")
	}
	if len(a) != 64 {
		t.Errorf("expected a 256-bit hex digest, got %d chars", len(a))
	}
}
