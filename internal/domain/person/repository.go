package person

import "context"

// Repository describes person persistence needs from use cases.
type Repository interface {
	// Upsert resolves by FogisID and returns the internal id. An existing
	// person has all details overwritten from the incoming record.
	Upsert(ctx context.Context, p Person) (int64, error)
}
