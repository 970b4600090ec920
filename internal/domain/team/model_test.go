package team

import "testing"

func TestClubNameFromTeam(t *testing.T) {
	cases := []struct {
		teamName string
		want     string
	}{
		{"Hestrafors IF", "Hestrafors"},
		{"IF Böljan Falkenberg", "IF"},
		{"Ahlafors", "Ahlafors"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := ClubNameFromTeam(tc.teamName); got != tc.want {
			t.Fatalf("ClubNameFromTeam(%q): got=%q want=%q", tc.teamName, got, tc.want)
		}
	}
}
