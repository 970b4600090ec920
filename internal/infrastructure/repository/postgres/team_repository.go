package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/refstats/referee-stats/internal/domain/team"
	qb "github.com/refstats/referee-stats/internal/platform/querybuilder"
)

type TeamRepository struct {
	db sqlx.ExtContext
}

func NewTeamRepository(db sqlx.ExtContext) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) EnsureClub(ctx context.Context, c team.Club) error {
	insertModel := clubInsertModel{ID: c.ID, Name: c.Name}
	query, args, err := qb.InsertModel("clubs", insertModel,
		"ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build ensure club query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ensure club: %w", err)
	}
	return nil
}

func (r *TeamRepository) Upsert(ctx context.Context, t team.Team) error {
	insertModel := teamInsertModel{
		ID:      t.ID,
		Name:    t.Name,
		ClubID:  t.ClubID,
		FogisID: t.FogisID,
	}
	query, args, err := qb.InsertModel("teams", insertModel, `ON CONFLICT (id)
DO UPDATE SET
    name = EXCLUDED.name,
    club_id = EXCLUDED.club_id,
    fogis_id = EXCLUDED.fogis_id,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team: %w", err)
	}
	return nil
}
