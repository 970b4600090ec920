package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/refstats/referee-stats/internal/domain/participant"
	qb "github.com/refstats/referee-stats/internal/platform/querybuilder"
)

type ParticipantRepository struct {
	db sqlx.ExtContext
}

func NewParticipantRepository(db sqlx.ExtContext) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) FindByFogisID(ctx context.Context, fogisID string) (participant.Participant, error) {
	query, args, err := qb.Select("*").
		From("match_participants").
		Where(qb.Eq("fogis_id", fogisID)).
		ToSQL()
	if err != nil {
		return participant.Participant{}, fmt.Errorf("build find participant query: %w", err)
	}

	var row participantTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return participant.Participant{}, participant.ErrNotFound
		}
		return participant.Participant{}, fmt.Errorf("find participant by fogis id: %w", err)
	}
	return participantToDomain(row), nil
}

func (r *ParticipantRepository) Upsert(ctx context.Context, p participant.Participant) (int64, error) {
	insertModel := participantInsertModel{
		MatchID:               p.MatchID,
		MatchTeamID:           p.MatchTeamID,
		PlayerID:              p.PlayerID,
		JerseyNumber:          p.JerseyNumber,
		IsCaptain:             p.IsCaptain,
		IsSubstitute:          p.IsSubstitute,
		SubInMinute:           p.SubInMinute,
		SubOutMinute:          p.SubOutMinute,
		IsPlayingLeader:       p.IsPlayingLeader,
		IsResponsible:         p.IsResponsible,
		AccumulatedWarnings:   p.AccumulatedWarnings,
		SuspensionDescription: p.SuspensionDescription,
		FogisID:               p.FogisID,
	}
	query, args, err := qb.InsertModel("match_participants", insertModel, `ON CONFLICT (fogis_id)
DO UPDATE SET
    match_id = EXCLUDED.match_id,
    match_team_id = EXCLUDED.match_team_id,
    player_id = EXCLUDED.player_id,
    jersey_number = EXCLUDED.jersey_number,
    is_captain = EXCLUDED.is_captain,
    is_substitute = EXCLUDED.is_substitute,
    substitution_in_minute = EXCLUDED.substitution_in_minute,
    substitution_out_minute = EXCLUDED.substitution_out_minute,
    is_playing_leader = EXCLUDED.is_playing_leader,
    is_responsible = EXCLUDED.is_responsible,
    accumulated_warnings = EXCLUDED.accumulated_warnings,
    suspension_description = EXCLUDED.suspension_description
RETURNING id`)
	if err != nil {
		return 0, fmt.Errorf("build upsert participant query: %w", err)
	}
	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert participant: %w", err)
	}
	return id, nil
}

func participantToDomain(row participantTableModel) participant.Participant {
	return participant.Participant{
		ID:                    row.ID,
		MatchID:               row.MatchID,
		MatchTeamID:           row.MatchTeamID,
		PlayerID:              row.PlayerID,
		JerseyNumber:          row.JerseyNumber,
		IsCaptain:             row.IsCaptain,
		IsSubstitute:          row.IsSubstitute,
		SubInMinute:           row.SubInMinute,
		SubOutMinute:          row.SubOutMinute,
		IsPlayingLeader:       row.IsPlayingLeader,
		IsResponsible:         row.IsResponsible,
		AccumulatedWarnings:   row.AccumulatedWarnings,
		SuspensionDescription: row.SuspensionDescription,
		FogisID:               row.FogisID,
	}
}
