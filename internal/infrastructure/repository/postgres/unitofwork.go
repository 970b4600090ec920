package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/refstats/referee-stats/internal/domain/store"
)

// UnitOfWork hands out one transaction per import run with every
// repository bound to it.
type UnitOfWork struct {
	db *sqlx.DB
}

func NewUnitOfWork(db *sqlx.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Begin(ctx context.Context) (store.Tx, error) {
	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import tx: %w", err)
	}
	return &importTx{tx: tx, stores: newStores(tx)}, nil
}

func newStores(db sqlx.ExtContext) store.Stores {
	return store.Stores{
		Venues:       NewVenueRepository(db),
		Competitions: NewCompetitionRepository(db),
		Teams:        NewTeamRepository(db),
		Persons:      NewPersonRepository(db),
		Referees:     NewRefereeRepository(db),
		Matches:      NewMatchRepository(db),
		Results:      NewResultRepository(db),
		Events:       NewEventRepository(db),
		Participants: NewParticipantRepository(db),
	}
}

type importTx struct {
	tx     *sqlx.Tx
	stores store.Stores
}

func (t *importTx) Stores() store.Stores {
	return t.stores
}

func (t *importTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit import tx: %w", err)
	}
	return nil
}

func (t *importTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback import tx: %w", err)
	}
	return nil
}
