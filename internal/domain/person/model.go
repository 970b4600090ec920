package person

import "strings"

// DefaultCountry is assumed when the source record carries no country.
const DefaultCountry = "Sweden"

// Person is anyone referenced by match data (player, referee). The internal
// id is storage-assigned; FogisID holds the source system's person id.
type Person struct {
	ID             int64
	FirstName      string
	LastName       string
	PersonalNumber string
	Email          string
	Phone          string
	Address        string
	PostalCode     string
	City           string
	Country        string
	FogisID        string
}

// SplitName breaks a display name on the first whitespace boundary into a
// first name and the remainder as last name. A single token becomes the first
// name with an empty last name.
func SplitName(full string) (first, last string) {
	name := strings.TrimSpace(full)
	if name == "" {
		return "", ""
	}
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		return name[:idx], strings.TrimSpace(name[idx+1:])
	}
	return name, ""
}
