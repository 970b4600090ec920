package event

import "testing"

func TestNewType_FlagDerivation(t *testing.T) {
	cases := []struct {
		name             string
		affectsScore     bool
		goal, pen        bool
		card, sub        bool
	}{
		{"Spelmål", true, true, false, false, false},
		{"Straffmål", true, true, true, false, false},
		{"Gult kort", false, false, false, true, false},
		{"Byte ut", false, false, false, false, true},
		{"PENALTY GOAL", true, true, true, false, false},
		{"Varning", false, false, false, false, false},
	}

	for _, tc := range cases {
		got := NewType(1, tc.name, tc.affectsScore)
		if got.IsGoal != tc.goal || got.IsPenalty != tc.pen ||
			got.IsCard != tc.card || got.IsSubstitution != tc.sub {
			t.Fatalf("NewType(%q): got=%+v", tc.name, got)
		}
		if got.AffectsScore != tc.affectsScore {
			t.Fatalf("NewType(%q): affects score must pass through", tc.name)
		}
	}
}
