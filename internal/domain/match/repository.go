package match

import (
	"context"
	"errors"
)

// ErrNotFound reports a missing match or match team. Storage
// implementations translate their own no-rows errors into it.
var ErrNotFound = errors.New("match not found")

type Repository interface {
	// Upsert resolves by FogisID and returns the internal id.
	Upsert(ctx context.Context, m Match) (int64, error)
	// FindByFogisID returns ErrNotFound when the match has not been imported.
	FindByFogisID(ctx context.Context, fogisID string) (Match, error)
	// UpsertTeam is keyed on (match, team).
	UpsertTeam(ctx context.Context, mt Team) error
	// FindTeamByID looks a match team up by its row id, which is the value
	// FOGIS supplies on events and participants.
	FindTeamByID(ctx context.Context, id int64) (Team, error)
}
