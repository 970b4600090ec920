package competition

import "context"

// Repository describes competition persistence needs from use cases.
// Categories are created on first sight and never rewritten from match data.
type Repository interface {
	EnsureCategory(ctx context.Context, c Category) error
	Upsert(ctx context.Context, c Competition) error
}
