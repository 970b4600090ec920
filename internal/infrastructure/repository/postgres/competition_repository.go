package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/refstats/referee-stats/internal/domain/competition"
	qb "github.com/refstats/referee-stats/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db sqlx.ExtContext
}

func NewCompetitionRepository(db sqlx.ExtContext) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) EnsureCategory(ctx context.Context, c competition.Category) error {
	insertModel := categoryInsertModel{ID: c.ID, Name: c.Name}
	query, args, err := qb.InsertModel("competition_categories", insertModel,
		"ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build ensure competition category query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ensure competition category: %w", err)
	}
	return nil
}

func (r *CompetitionRepository) Upsert(ctx context.Context, c competition.Competition) error {
	insertModel := competitionInsertModel{
		ID:            c.ID,
		Name:          c.Name,
		Season:        c.Season,
		CategoryID:    c.CategoryID,
		GenderID:      c.GenderID,
		AgeCategoryID: c.AgeCategoryID,
		FogisID:       c.FogisID,
	}
	query, args, err := qb.InsertModel("competitions", insertModel, `ON CONFLICT (id)
DO UPDATE SET
    name = EXCLUDED.name,
    season = EXCLUDED.season,
    category_id = EXCLUDED.category_id,
    gender_id = EXCLUDED.gender_id,
    age_category_id = EXCLUDED.age_category_id,
    fogis_id = EXCLUDED.fogis_id,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert competition query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert competition: %w", err)
	}
	return nil
}
