package competition

import "regexp"

// Category groups competitions, keyed by the source system's category id.
type Category struct {
	ID   int64
	Name string
}

// Competition is one tournament or series, keyed by the source system's
// competition id. FogisID carries the separate display number (tavlingnr).
type Competition struct {
	ID            int64
	Name          string
	Season        string
	CategoryID    *int64
	GenderID      *int64
	AgeCategoryID *int64
	FogisID       string
}

var seasonPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// SeasonFromName pulls a 4-digit 20xx year out of a competition display name,
// e.g. "Div 2 Västra Götaland, herr 2025" -> "2025". Returns "" when the name
// carries no such token.
func SeasonFromName(name string) string {
	match := seasonPattern.FindString(name)
	return match
}
