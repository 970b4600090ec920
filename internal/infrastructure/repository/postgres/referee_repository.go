package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/refstats/referee-stats/internal/domain/referee"
	qb "github.com/refstats/referee-stats/internal/platform/querybuilder"
)

type RefereeRepository struct {
	db sqlx.ExtContext
}

func NewRefereeRepository(db sqlx.ExtContext) *RefereeRepository {
	return &RefereeRepository{db: db}
}

func (r *RefereeRepository) EnsureRole(ctx context.Context, role referee.Role) error {
	insertModel := refereeRoleInsertModel{
		ID:        role.ID,
		Name:      role.Name,
		ShortName: role.ShortName,
	}
	query, args, err := qb.InsertModel("referee_roles", insertModel,
		"ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build ensure referee role query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ensure referee role: %w", err)
	}
	return nil
}

func (r *RefereeRepository) Upsert(ctx context.Context, ref referee.Referee) error {
	insertModel := refereeInsertModel{
		ID:            ref.ID,
		PersonID:      ref.PersonID,
		RefereeNumber: ref.RefereeNumber,
	}
	query, args, err := qb.InsertModel("referees", insertModel, `ON CONFLICT (id)
DO UPDATE SET
    person_id = EXCLUDED.person_id,
    referee_number = EXCLUDED.referee_number,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert referee query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert referee: %w", err)
	}
	return nil
}

func (r *RefereeRepository) UpsertAssignment(ctx context.Context, a referee.Assignment) error {
	insertModel := refereeAssignmentInsertModel{
		MatchID:   a.MatchID,
		RefereeID: a.RefereeID,
		RoleID:    a.RoleID,
		Status:    a.StatusName,
		FogisID:   a.FogisID,
	}
	query, args, err := qb.InsertModel("referee_assignments", insertModel, `ON CONFLICT (match_id, referee_id, role_id)
DO UPDATE SET
    status = EXCLUDED.status,
    fogis_id = EXCLUDED.fogis_id`)
	if err != nil {
		return fmt.Errorf("build upsert referee assignment query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert referee assignment: %w", err)
	}
	return nil
}
