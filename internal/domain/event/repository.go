package event

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("event not found")

type Repository interface {
	// EnsureType creates the event type on first sight. The flags of an
	// existing type are never recomputed.
	EnsureType(ctx context.Context, t Type) error
	FindByFogisID(ctx context.Context, fogisID string) (Event, error)
	Create(ctx context.Context, e Event) error
	Update(ctx context.Context, e Event) error
}
