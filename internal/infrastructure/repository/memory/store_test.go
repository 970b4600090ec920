package memory

import (
	"context"
	"testing"

	"github.com/refstats/referee-stats/internal/domain/venue"
)

func TestStore_RollbackRestoresSnapshot(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	tx, err := s.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := tx.Stores().Venues.Upsert(ctx, venue.Venue{ID: 1, Name: "Hestra IP"}); err != nil {
		t.Fatalf("upsert venue: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	if got := s.Counts()["venues"]; got != 0 {
		t.Fatalf("rollback must discard writes: got=%d venues", got)
	}
}

func TestStore_CommitKeepsWrites(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	tx, err := s.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := tx.Stores().Venues.Upsert(ctx, venue.Venue{ID: 1, Name: "Hestra IP"}); err != nil {
		t.Fatalf("upsert venue: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	// Rollback after commit must be a no-op.
	if err := tx.Rollback(); err != nil {
		t.Fatalf("rollback after commit: %v", err)
	}

	if got := s.Counts()["venues"]; got != 1 {
		t.Fatalf("commit must keep writes: got=%d venues", got)
	}
}
