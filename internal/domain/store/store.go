// Package store defines the transactional boundary an import runs
// inside. A whole file is imported through a single unit of work so a
// storage failure leaves the database exactly as it was.
package store

import (
	"context"

	"github.com/refstats/referee-stats/internal/domain/competition"
	"github.com/refstats/referee-stats/internal/domain/event"
	"github.com/refstats/referee-stats/internal/domain/match"
	"github.com/refstats/referee-stats/internal/domain/participant"
	"github.com/refstats/referee-stats/internal/domain/person"
	"github.com/refstats/referee-stats/internal/domain/referee"
	"github.com/refstats/referee-stats/internal/domain/result"
	"github.com/refstats/referee-stats/internal/domain/team"
	"github.com/refstats/referee-stats/internal/domain/venue"
)

// Stores bundles the repositories bound to one transaction.
type Stores struct {
	Venues       venue.Repository
	Competitions competition.Repository
	Teams        team.Repository
	Persons      person.Repository
	Referees     referee.Repository
	Matches      match.Repository
	Results      result.Repository
	Events       event.Repository
	Participants participant.Repository
}

// Tx is one open transaction. Rollback after Commit is a no-op, so
// callers may defer it unconditionally.
type Tx interface {
	Stores() Stores
	Commit() error
	Rollback() error
}

// UnitOfWork begins transactions.
type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}
