package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// EnsureClub creates the club when missing; an existing club keeps its name.
	EnsureClub(ctx context.Context, c Club) error
	Upsert(ctx context.Context, t Team) error
}
