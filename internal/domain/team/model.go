package team

import "strings"

// Club owns one or more teams, keyed by the source system's club id.
type Club struct {
	ID   int64
	Name string
}

// Team is a real football team inside a club, keyed by the source system's
// team id.
type Team struct {
	ID      int64
	Name    string
	ClubID  int64
	FogisID string
}

// ClubNameFromTeam derives a club name when the source record carries only a
// team name: the first whitespace-separated token.
func ClubNameFromTeam(teamName string) string {
	name := strings.TrimSpace(teamName)
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		return name[:idx]
	}
	return name
}
