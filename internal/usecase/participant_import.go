package usecase

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/refstats/referee-stats/internal/domain/match"
	"github.com/refstats/referee-stats/internal/domain/participant"
	"github.com/refstats/referee-stats/internal/domain/store"
	"github.com/refstats/referee-stats/internal/fogis"
)

func (s *ImportService) importParticipants(ctx context.Context, stores store.Stores, records []json.RawMessage) (int, error) {
	s.logger.InfoContext(ctx, "importing match participants", "records", len(records))

	count := 0
	for _, raw := range records {
		if err := s.importParticipant(ctx, stores, raw); err != nil {
			if isSkip(err) {
				s.logger.WarnContext(ctx, "skipping match participant record", "reason", err.Error())
				continue
			}
			return 0, err
		}
		count++
	}
	return count, nil
}

func (s *ImportService) importParticipant(ctx context.Context, stores store.Stores, raw json.RawMessage) error {
	var rec fogis.ParticipantRecord
	if err := sonic.Unmarshal(raw, &rec); err != nil {
		return skipf("decode match participant record: %v", err)
	}
	if err := fogis.Validate(rec); err != nil {
		return skipf("match participant record missing required fields: %v", err)
	}

	m, err := stores.Matches.FindByFogisID(ctx, strconv.FormatInt(rec.MatchID, 10))
	if errors.Is(err, match.ErrNotFound) {
		return skipf("match %d not found for participant", rec.MatchID)
	}
	if err != nil {
		return err
	}

	mt, err := stores.Matches.FindTeamByID(ctx, rec.MatchTeamID)
	if errors.Is(err, match.ErrNotFound) {
		return skipf("match team %d not found for participant", rec.MatchTeamID)
	}
	if err != nil {
		return err
	}

	personID, err := s.resolvePerson(ctx, stores, rec.PersonRecord)
	if err != nil {
		return err
	}

	_, err = stores.Participants.Upsert(ctx, participant.Participant{
		MatchID:               m.ID,
		MatchTeamID:           mt.ID,
		PlayerID:              personID,
		JerseyNumber:          rec.JerseyNumber,
		IsCaptain:             rec.IsCaptain,
		IsSubstitute:          rec.IsSubstitute,
		SubInMinute:           fogis.Optional(rec.SubInMinute),
		SubOutMinute:          fogis.Optional(rec.SubOutMinute),
		IsPlayingLeader:       rec.IsPlayingLeader,
		IsResponsible:         rec.IsResponsible,
		AccumulatedWarnings:   rec.AccumulatedWarnings,
		SuspensionDescription: rec.SuspensionDescription,
		FogisID:               strconv.FormatInt(rec.ParticipantID, 10),
	})
	return err
}
