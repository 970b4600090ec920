package referee

// Role is a referee duty role as published by FOGIS (Huvuddomare,
// Assisterande dommare, ...). Keyed by the upstream role id.
type Role struct {
	ID        int64
	Name      string
	ShortName string
}

// Referee links a FOGIS referee id to a person.
type Referee struct {
	ID            int64
	PersonID      int64
	RefereeNumber string
}

// Assignment is a referee appointment for a match. One row per
// (match, referee, role).
type Assignment struct {
	ID         int64
	MatchID    int64
	RefereeID  int64
	RoleID     int64
	StatusName string
	FogisID    string
}
