package usecase

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/refstats/referee-stats/internal/domain/match"
	"github.com/refstats/referee-stats/internal/domain/result"
	"github.com/refstats/referee-stats/internal/domain/store"
	"github.com/refstats/referee-stats/internal/fogis"
)

func (s *ImportService) importResults(ctx context.Context, stores store.Stores, records []json.RawMessage) (int, error) {
	s.logger.InfoContext(ctx, "importing match results", "records", len(records))

	count := 0
	for _, raw := range records {
		if err := s.importResult(ctx, stores, raw); err != nil {
			if isSkip(err) {
				s.logger.WarnContext(ctx, "skipping match result record", "reason", err.Error())
				continue
			}
			return 0, err
		}
		count++
	}
	return count, nil
}

func (s *ImportService) importResult(ctx context.Context, stores store.Stores, raw json.RawMessage) error {
	var rec fogis.ResultRecord
	if err := sonic.Unmarshal(raw, &rec); err != nil {
		return skipf("decode match result record: %v", err)
	}
	if err := fogis.Validate(rec); err != nil {
		return skipf("match result record missing required fields: %v", err)
	}

	// Results for matches that were never imported are dropped rather
	// than created as orphans.
	m, err := stores.Matches.FindByFogisID(ctx, strconv.FormatInt(rec.MatchID, 10))
	if errors.Is(err, match.ErrNotFound) {
		return skipf("match %d not found for result", rec.MatchID)
	}
	if err != nil {
		return err
	}

	typeName := rec.TypeName
	if typeName == "" {
		typeName = "Unknown"
	}
	if err := stores.Results.EnsureType(ctx, result.Type{ID: rec.TypeID, Name: typeName}); err != nil {
		return err
	}

	var fogisID string
	if rec.ResultID != 0 {
		fogisID = strconv.FormatInt(rec.ResultID, 10)
	}

	res := result.Result{
		MatchID:   m.ID,
		TypeID:    rec.TypeID,
		HomeGoals: rec.HomeGoals,
		AwayGoals: rec.AwayGoals,
		FogisID:   fogisID,
	}

	existing, err := stores.Results.Find(ctx, fogisID, m.ID, rec.TypeID)
	switch {
	case err == nil:
		res.ID = existing.ID
		return stores.Results.Update(ctx, res)
	case errors.Is(err, result.ErrNotFound):
		return stores.Results.Create(ctx, res)
	default:
		return err
	}
}
