package usecase

import (
	"context"
	"strconv"

	"github.com/refstats/referee-stats/internal/domain/competition"
	"github.com/refstats/referee-stats/internal/domain/person"
	"github.com/refstats/referee-stats/internal/domain/store"
	"github.com/refstats/referee-stats/internal/domain/team"
	"github.com/refstats/referee-stats/internal/domain/venue"
	"github.com/refstats/referee-stats/internal/fogis"
)

// resolveVenue upserts the venue carried on a match record and returns
// its id, or nil when the record has no usable venue data.
func (s *ImportService) resolveVenue(ctx context.Context, stores store.Stores, rec fogis.MatchRecord) (*int64, error) {
	if rec.VenueID == 0 || rec.VenueName == "" {
		return nil, nil
	}
	v := venue.Venue{
		ID:        rec.VenueID,
		Name:      rec.VenueName,
		Latitude:  rec.VenueLatitude,
		Longitude: rec.VenueLongitude,
	}
	if err := stores.Venues.Upsert(ctx, v); err != nil {
		return nil, err
	}
	id := rec.VenueID
	return &id, nil
}

// resolveCompetition upserts the competition (and its category) from a
// match record. The season is pulled from the competition name.
func (s *ImportService) resolveCompetition(ctx context.Context, stores store.Stores, rec fogis.MatchRecord) (*int64, error) {
	if rec.CompetitionID == 0 || rec.CompetitionName == "" {
		return nil, nil
	}

	var categoryID *int64
	if rec.CategoryID != 0 && rec.CategoryName != "" {
		cat := competition.Category{ID: rec.CategoryID, Name: rec.CategoryName}
		if err := stores.Competitions.EnsureCategory(ctx, cat); err != nil {
			return nil, err
		}
		id := rec.CategoryID
		categoryID = &id
	}

	comp := competition.Competition{
		ID:            rec.CompetitionID,
		Name:          rec.CompetitionName,
		Season:        competition.SeasonFromName(rec.CompetitionName),
		CategoryID:    categoryID,
		GenderID:      rec.GenderID,
		AgeCategoryID: rec.AgeCategoryID,
		FogisID:       rec.CompetitionNr,
	}
	if err := stores.Competitions.Upsert(ctx, comp); err != nil {
		return nil, err
	}
	id := rec.CompetitionID
	return &id, nil
}

// resolveTeam upserts one side's team, creating its club on first
// sight with the first token of the team name. Missing team data is
// not an error; the match is imported without that side.
func (s *ImportService) resolveTeam(ctx context.Context, stores store.Stores, teamID int64, teamName string, clubID int64) (*int64, error) {
	if teamID == 0 || teamName == "" || clubID == 0 {
		return nil, nil
	}
	club := team.Club{ID: clubID, Name: team.ClubNameFromTeam(teamName)}
	if err := stores.Teams.EnsureClub(ctx, club); err != nil {
		return nil, err
	}
	t := team.Team{
		ID:      teamID,
		Name:    teamName,
		ClubID:  clubID,
		FogisID: strconv.FormatInt(teamID, 10),
	}
	if err := stores.Teams.Upsert(ctx, t); err != nil {
		return nil, err
	}
	return &teamID, nil
}

// resolvePerson upserts the person embedded in a referee assignment or
// participant record and returns the internal person id. A record
// without a person id is a per-record skip.
func (s *ImportService) resolvePerson(ctx context.Context, stores store.Stores, rec fogis.PersonRecord) (int64, error) {
	if rec.PersonID == 0 {
		return 0, skipf("person data missing personid")
	}

	firstName, lastName := rec.FirstName, rec.LastName
	if firstName == "" && lastName == "" {
		full := rec.FullName
		if full == "" {
			full = rec.Name
		}
		firstName, lastName = person.SplitName(full)
	}

	country := rec.Country
	if country == "" {
		country = person.DefaultCountry
	}

	id, err := stores.Persons.Upsert(ctx, person.Person{
		FirstName:      firstName,
		LastName:       lastName,
		PersonalNumber: rec.PersonalNumber,
		Email:          rec.Email,
		Phone:          rec.Phone,
		Address:        rec.Address,
		PostalCode:     rec.PostalCode,
		City:           rec.City,
		Country:        country,
		FogisID:        strconv.FormatInt(rec.PersonID, 10),
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
