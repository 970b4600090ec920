package result

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("result not found")

type Repository interface {
	// EnsureType creates the result type on first sight; existing types
	// keep their stored name.
	EnsureType(ctx context.Context, t Type) error
	// Find resolves a result by its FOGIS id first, then by the
	// (match, type) pair. Returns ErrNotFound when neither matches.
	Find(ctx context.Context, fogisID string, matchID, typeID int64) (Result, error)
	Create(ctx context.Context, r Result) error
	Update(ctx context.Context, r Result) error
}
