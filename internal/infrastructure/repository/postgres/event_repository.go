package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/refstats/referee-stats/internal/domain/event"
	qb "github.com/refstats/referee-stats/internal/platform/querybuilder"
)

type EventRepository struct {
	db sqlx.ExtContext
}

func NewEventRepository(db sqlx.ExtContext) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) EnsureType(ctx context.Context, t event.Type) error {
	insertModel := eventTypeInsertModel{
		ID:             t.ID,
		Name:           t.Name,
		IsGoal:         t.IsGoal,
		IsPenalty:      t.IsPenalty,
		IsCard:         t.IsCard,
		IsSubstitution: t.IsSubstitution,
		AffectsScore:   t.AffectsScore,
	}
	// DO NOTHING keeps the flags derived when the type was first seen.
	query, args, err := qb.InsertModel("event_types", insertModel,
		"ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build ensure event type query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ensure event type: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByFogisID(ctx context.Context, fogisID string) (event.Event, error) {
	query, args, err := qb.Select("*").
		From("match_events").
		Where(qb.Eq("fogis_id", fogisID)).
		ToSQL()
	if err != nil {
		return event.Event{}, fmt.Errorf("build find event query: %w", err)
	}

	var row eventTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, event.ErrNotFound
		}
		return event.Event{}, fmt.Errorf("find event by fogis id: %w", err)
	}
	return eventToDomain(row), nil
}

func (r *EventRepository) Create(ctx context.Context, e event.Event) error {
	insertModel := eventInsertModel{
		MatchID:        e.MatchID,
		ParticipantID:  e.ParticipantID,
		TypeID:         e.TypeID,
		MatchTeamID:    e.MatchTeamID,
		Minute:         e.Minute,
		Period:         e.Period,
		Comment:        e.Comment,
		HomeScore:      e.HomeScore,
		AwayScore:      e.AwayScore,
		PositionX:      e.PositionX,
		PositionY:      e.PositionY,
		RelatedEventID: e.RelatedEventID,
		FogisID:        nullString(e.FogisID),
	}
	query, args, err := qb.InsertModel("match_events", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e event.Event) error {
	query, args, err := qb.Update("match_events").
		Set("match_id", e.MatchID).
		Set("participant_id", e.ParticipantID).
		Set("event_type_id", e.TypeID).
		Set("match_team_id", e.MatchTeamID).
		Set("minute", e.Minute).
		Set("period", e.Period).
		Set("comment", e.Comment).
		Set("home_score", e.HomeScore).
		Set("away_score", e.AwayScore).
		Set("position_x", e.PositionX).
		Set("position_y", e.PositionY).
		Set("related_event_id", e.RelatedEventID).
		Set("fogis_id", nullString(e.FogisID)).
		Where(qb.Eq("id", e.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func eventToDomain(row eventTableModel) event.Event {
	return event.Event{
		ID:             row.ID,
		MatchID:        row.MatchID,
		ParticipantID:  row.ParticipantID,
		TypeID:         row.TypeID,
		MatchTeamID:    row.MatchTeamID,
		Minute:         row.Minute,
		Period:         row.Period,
		Comment:        row.Comment,
		HomeScore:      row.HomeScore,
		AwayScore:      row.AwayScore,
		PositionX:      row.PositionX,
		PositionY:      row.PositionY,
		RelatedEventID: row.RelatedEventID,
		FogisID:        stringValue(row.FogisID),
	}
}
