package match

import "time"

// StatusNormal is the status every import writes; other statuses are
// set administratively outside the pipeline.
const StatusNormal = "normal"

// Match is one fixture. ID is the internal storage id; FogisID carries
// the upstream match id used to resolve re-imports.
type Match struct {
	ID             int64
	MatchNr        string
	Date           time.Time
	Time           string
	VenueID        *int64
	CompetitionID  *int64
	FootballTypeID int
	Spectators     *int
	Status         string
	IsWalkover     bool
	FogisID        string
}

// Team ties a team to a match, once per side.
type Team struct {
	ID         int64
	MatchID    int64
	TeamID     int64
	IsHomeTeam bool
}
