package venue

import "context"

// Repository describes venue persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, v Venue) error
}
