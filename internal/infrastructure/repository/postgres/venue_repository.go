package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/refstats/referee-stats/internal/domain/venue"
	qb "github.com/refstats/referee-stats/internal/platform/querybuilder"
)

// VenueRepository runs on any sqlx executor, so the same code serves a
// bare connection and an open transaction.
type VenueRepository struct {
	db sqlx.ExtContext
}

func NewVenueRepository(db sqlx.ExtContext) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Upsert(ctx context.Context, v venue.Venue) error {
	insertModel := venueInsertModel{
		ID:        v.ID,
		Name:      v.Name,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
	}
	query, args, err := qb.InsertModel("venues", insertModel, `ON CONFLICT (id)
DO UPDATE SET
    name = EXCLUDED.name,
    latitude = EXCLUDED.latitude,
    longitude = EXCLUDED.longitude,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert venue query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert venue: %w", err)
	}
	return nil
}
