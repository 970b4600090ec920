package event

import "strings"

// Type is a FOGIS match event type. The boolean flags classify the
// type for reporting and are fixed when the type is first seen.
type Type struct {
	ID             int64
	Name           string
	IsGoal         bool
	IsPenalty      bool
	IsCard         bool
	IsSubstitution bool
	AffectsScore   bool
}

// NewType derives the classification flags from the Swedish type name.
// FOGIS reports whether the type changes the score separately, so that
// flag is passed through rather than inferred.
func NewType(id int64, name string, affectsScore bool) Type {
	lower := strings.ToLower(name)
	return Type{
		ID:             id,
		Name:           name,
		IsGoal:         strings.Contains(lower, "mål") || strings.Contains(lower, "goal"),
		IsPenalty:      strings.Contains(lower, "straff") || strings.Contains(lower, "penalty"),
		IsCard:         strings.Contains(lower, "kort") || strings.Contains(lower, "card"),
		IsSubstitution: strings.Contains(lower, "byte") || strings.Contains(lower, "substitution"),
		AffectsScore:   affectsScore,
	}
}

// Event is one in-match occurrence tied to a participant.
type Event struct {
	ID             int64
	MatchID        int64
	ParticipantID  int64
	TypeID         int64
	MatchTeamID    int64
	Minute         *int
	Period         *int
	Comment        string
	HomeScore      int
	AwayScore      int
	PositionX      int
	PositionY      int
	RelatedEventID *int64
	FogisID        string
}
