package fogis

import "testing"

func TestValidate_RequiredFields(t *testing.T) {
	if err := Validate(MatchRecord{}); err == nil {
		t.Fatal("expected error for match record without matchid")
	}
	if err := Validate(MatchRecord{MatchID: 6169913}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Validate(ParticipantRecord{MatchID: 1, MatchTeamID: 1, PlayerID: 1}); err == nil {
		t.Fatal("expected error for participant record without matchdeltagareid")
	}
	if err := Validate(ParticipantRecord{ParticipantID: 1, MatchID: 1, MatchTeamID: 1, PlayerID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOptional_ZeroPlaceholder(t *testing.T) {
	if Optional(0) != nil {
		t.Fatal("0 must map to absent")
	}
	if got := Optional(75); got == nil || *got != 75 {
		t.Fatalf("unexpected value: got=%v", got)
	}
	if OptionalID(0) != nil {
		t.Fatal("0 must map to absent")
	}
	if got := OptionalID(888001); got == nil || *got != 888001 {
		t.Fatalf("unexpected value: got=%v", got)
	}
}
