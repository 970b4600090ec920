package participant

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("participant not found")

type Repository interface {
	FindByFogisID(ctx context.Context, fogisID string) (Participant, error)
	// Upsert resolves by FogisID and returns the internal id.
	Upsert(ctx context.Context, p Participant) (int64, error)
}
