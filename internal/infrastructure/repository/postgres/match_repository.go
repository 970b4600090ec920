package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/refstats/referee-stats/internal/domain/match"
	qb "github.com/refstats/referee-stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db sqlx.ExtContext
}

func NewMatchRepository(db sqlx.ExtContext) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Upsert(ctx context.Context, m match.Match) (int64, error) {
	insertModel := matchInsertModel{
		MatchNr:        m.MatchNr,
		Date:           m.Date,
		Time:           m.Time,
		VenueID:        m.VenueID,
		CompetitionID:  m.CompetitionID,
		FootballTypeID: m.FootballTypeID,
		Spectators:     m.Spectators,
		Status:         m.Status,
		IsWalkover:     m.IsWalkover,
		FogisID:        m.FogisID,
	}
	query, args, err := qb.InsertModel("matches", insertModel, `ON CONFLICT (fogis_id)
DO UPDATE SET
    match_nr = EXCLUDED.match_nr,
    date = EXCLUDED.date,
    time = EXCLUDED.time,
    venue_id = EXCLUDED.venue_id,
    competition_id = EXCLUDED.competition_id,
    football_type_id = EXCLUDED.football_type_id,
    spectators = EXCLUDED.spectators,
    status = EXCLUDED.status,
    is_walkover = EXCLUDED.is_walkover,
    updated_at = NOW()
RETURNING id`)
	if err != nil {
		return 0, fmt.Errorf("build upsert match query: %w", err)
	}
	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert match: %w", err)
	}
	return id, nil
}

func (r *MatchRepository) FindByFogisID(ctx context.Context, fogisID string) (match.Match, error) {
	query, args, err := qb.Select("*").
		From("matches").
		Where(qb.Eq("fogis_id", fogisID)).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build find match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, fmt.Errorf("find match by fogis id: %w", err)
	}
	return matchToDomain(row), nil
}

func (r *MatchRepository) UpsertTeam(ctx context.Context, mt match.Team) error {
	query, args, err := qb.InsertInto("match_teams").
		Columns("match_id", "team_id", "is_home_team").
		Values(mt.MatchID, mt.TeamID, mt.IsHomeTeam).
		Suffix(`ON CONFLICT (match_id, team_id)
DO UPDATE SET is_home_team = EXCLUDED.is_home_team`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert match team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match team: %w", err)
	}
	return nil
}

func (r *MatchRepository) FindTeamByID(ctx context.Context, id int64) (match.Team, error) {
	query, args, err := qb.Select("*").
		From("match_teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Team{}, fmt.Errorf("build find match team query: %w", err)
	}

	var row matchTeamTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Team{}, match.ErrNotFound
		}
		return match.Team{}, fmt.Errorf("find match team: %w", err)
	}
	return match.Team{
		ID:         row.ID,
		MatchID:    row.MatchID,
		TeamID:     row.TeamID,
		IsHomeTeam: row.IsHomeTeam,
	}, nil
}

func matchToDomain(row matchTableModel) match.Match {
	return match.Match{
		ID:             row.ID,
		MatchNr:        row.MatchNr,
		Date:           row.Date,
		Time:           row.Time,
		VenueID:        row.VenueID,
		CompetitionID:  row.CompetitionID,
		FootballTypeID: row.FootballTypeID,
		Spectators:     row.Spectators,
		Status:         row.Status,
		IsWalkover:     row.IsWalkover,
		FogisID:        row.FogisID,
	}
}
