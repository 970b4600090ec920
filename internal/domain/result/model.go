package result

// Type is a FOGIS result type (Slutresultat, Halvtidsresultat, ...).
type Type struct {
	ID   int64
	Name string
}

// Result is one score line for a match. A match holds at most one
// result per type.
type Result struct {
	ID        int64
	MatchID   int64
	TypeID    int64
	HomeGoals int
	AwayGoals int
	FogisID   string
}
