package usecase

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/refstats/referee-stats/internal/domain/event"
	"github.com/refstats/referee-stats/internal/domain/match"
	"github.com/refstats/referee-stats/internal/domain/participant"
	"github.com/refstats/referee-stats/internal/domain/store"
	"github.com/refstats/referee-stats/internal/fogis"
)

func (s *ImportService) importEvents(ctx context.Context, stores store.Stores, records []json.RawMessage) (int, error) {
	s.logger.InfoContext(ctx, "importing match events", "records", len(records))

	count := 0
	for _, raw := range records {
		if err := s.importEvent(ctx, stores, raw); err != nil {
			if isSkip(err) {
				s.logger.WarnContext(ctx, "skipping match event record", "reason", err.Error())
				continue
			}
			return 0, err
		}
		count++
	}
	return count, nil
}

func (s *ImportService) importEvent(ctx context.Context, stores store.Stores, raw json.RawMessage) error {
	var rec fogis.EventRecord
	if err := sonic.Unmarshal(raw, &rec); err != nil {
		return skipf("decode match event record: %v", err)
	}
	if err := fogis.Validate(rec); err != nil {
		return skipf("match event record missing required fields: %v", err)
	}

	m, err := stores.Matches.FindByFogisID(ctx, strconv.FormatInt(rec.MatchID, 10))
	if errors.Is(err, match.ErrNotFound) {
		return skipf("match %d not found for event", rec.MatchID)
	}
	if err != nil {
		return err
	}

	p, err := stores.Participants.FindByFogisID(ctx, strconv.FormatInt(rec.ParticipantID, 10))
	if errors.Is(err, participant.ErrNotFound) {
		return skipf("participant %d not found for event", rec.ParticipantID)
	}
	if err != nil {
		return err
	}

	mt, err := stores.Matches.FindTeamByID(ctx, rec.MatchTeamID)
	if errors.Is(err, match.ErrNotFound) {
		return skipf("match team %d not found for event", rec.MatchTeamID)
	}
	if err != nil {
		return err
	}

	typeName := rec.TypeName
	if typeName == "" {
		typeName = "Unknown"
	}
	// Flags are derived here once; EnsureType never rewrites an
	// existing type.
	if err := stores.Events.EnsureType(ctx, event.NewType(rec.TypeID, typeName, rec.AffectsScore)); err != nil {
		return err
	}

	var fogisID string
	if rec.EventID != 0 {
		fogisID = strconv.FormatInt(rec.EventID, 10)
	}

	e := event.Event{
		MatchID:        m.ID,
		ParticipantID:  p.ID,
		TypeID:         rec.TypeID,
		MatchTeamID:    mt.ID,
		Minute:         rec.Minute,
		Period:         rec.Period,
		Comment:        rec.Comment,
		HomeScore:      rec.HomeScore,
		AwayScore:      rec.AwayScore,
		PositionX:      positionOrDefault(rec.PositionX),
		PositionY:      positionOrDefault(rec.PositionY),
		RelatedEventID: fogis.OptionalID(rec.RelatedEventID),
		FogisID:        fogisID,
	}

	if fogisID != "" {
		existing, err := stores.Events.FindByFogisID(ctx, fogisID)
		switch {
		case err == nil:
			e.ID = existing.ID
			return stores.Events.Update(ctx, e)
		case !errors.Is(err, event.ErrNotFound):
			return err
		}
	}
	return stores.Events.Create(ctx, e)
}

// positionOrDefault keeps the source's -1 convention for an unknown
// pitch position.
func positionOrDefault(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}
