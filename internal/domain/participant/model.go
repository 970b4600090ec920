package participant

// Participant is a player's involvement in one match for one side.
// SubInMinute and SubOutMinute are nil when FOGIS reports its 0
// placeholder for "no substitution".
type Participant struct {
	ID                    int64
	MatchID               int64
	MatchTeamID           int64
	PlayerID              int64
	JerseyNumber          *int
	IsCaptain             bool
	IsSubstitute          bool
	SubInMinute           *int
	SubOutMinute          *int
	IsPlayingLeader       bool
	IsResponsible         bool
	AccumulatedWarnings   int
	SuspensionDescription string
	FogisID               string
}
