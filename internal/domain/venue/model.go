package venue

// Venue is a playing ground, keyed by the source system's venue id.
type Venue struct {
	ID        int64
	Name      string
	Latitude  *float64
	Longitude *float64
}
