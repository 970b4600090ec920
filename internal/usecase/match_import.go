package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	"github.com/refstats/referee-stats/internal/domain/match"
	"github.com/refstats/referee-stats/internal/domain/referee"
	"github.com/refstats/referee-stats/internal/domain/store"
	"github.com/refstats/referee-stats/internal/fogis"
)

const matchDateLayout = "2006-01-02"

func (s *ImportService) importMatches(ctx context.Context, stores store.Stores, records []json.RawMessage) (int, error) {
	s.logger.InfoContext(ctx, "importing matches", "records", len(records))

	count := 0
	for _, raw := range records {
		if err := s.importMatch(ctx, stores, raw); err != nil {
			if isSkip(err) {
				s.logger.WarnContext(ctx, "skipping match record", "reason", err.Error())
				continue
			}
			return 0, err
		}
		count++
	}
	return count, nil
}

func (s *ImportService) importMatch(ctx context.Context, stores store.Stores, raw json.RawMessage) error {
	var rec fogis.MatchRecord
	if err := sonic.Unmarshal(raw, &rec); err != nil {
		return skipf("decode match record: %v", err)
	}
	if err := fogis.Validate(rec); err != nil {
		return skipf("match record missing matchid: %v", err)
	}

	venueID, err := s.resolveVenue(ctx, stores, rec)
	if err != nil {
		return err
	}
	competitionID, err := s.resolveCompetition(ctx, stores, rec)
	if err != nil {
		return err
	}
	homeTeamID, err := s.resolveTeam(ctx, stores, rec.HomeTeamID, rec.HomeTeamName, rec.HomeClubID)
	if err != nil {
		return err
	}
	awayTeamID, err := s.resolveTeam(ctx, stores, rec.AwayTeamID, rec.AwayTeamName, rec.AwayClubID)
	if err != nil {
		return err
	}

	date, ok := s.parseMatchDate(rec.Date)
	if !ok {
		s.logger.WarnContext(ctx, "unparseable match date, using current date",
			"date", rec.Date, "matchid", rec.MatchID)
	}

	footballTypeID := rec.FootballTypeID
	if footballTypeID == 0 {
		footballTypeID = 1
	}

	matchID, err := stores.Matches.Upsert(ctx, match.Match{
		MatchNr:        rec.MatchNr,
		Date:           date,
		Time:           rec.Time,
		VenueID:        venueID,
		CompetitionID:  competitionID,
		FootballTypeID: footballTypeID,
		Spectators:     rec.Spectators,
		Status:         match.StatusNormal,
		IsWalkover:     rec.IsWalkover,
		FogisID:        strconv.FormatInt(rec.MatchID, 10),
	})
	if err != nil {
		return err
	}

	if homeTeamID != nil {
		err := stores.Matches.UpsertTeam(ctx, match.Team{
			MatchID:    matchID,
			TeamID:     *homeTeamID,
			IsHomeTeam: true,
		})
		if err != nil {
			return err
		}
	}
	if awayTeamID != nil {
		err := stores.Matches.UpsertTeam(ctx, match.Team{
			MatchID:    matchID,
			TeamID:     *awayTeamID,
			IsHomeTeam: false,
		})
		if err != nil {
			return err
		}
	}

	return s.importRefereeAssignments(ctx, stores, matchID, rec.Referees)
}

func (s *ImportService) importRefereeAssignments(ctx context.Context, stores store.Stores, matchID int64, entries []fogis.RefereeRecord) error {
	for _, entry := range entries {
		if err := s.importRefereeAssignment(ctx, stores, matchID, entry); err != nil {
			if isSkip(err) {
				s.logger.WarnContext(ctx, "skipping referee assignment",
					"matchID", matchID, "reason", err.Error())
				continue
			}
			return err
		}
	}
	return nil
}

func (s *ImportService) importRefereeAssignment(ctx context.Context, stores store.Stores, matchID int64, rec fogis.RefereeRecord) error {
	if rec.RefereeID == 0 || rec.PersonID == 0 || rec.RoleID == 0 {
		return skipf("referee assignment missing referee, person, or role id")
	}

	personID, err := s.resolvePerson(ctx, stores, rec.PersonRecord)
	if err != nil {
		return err
	}

	err = stores.Referees.Upsert(ctx, referee.Referee{
		ID:            rec.RefereeID,
		PersonID:      personID,
		RefereeNumber: rec.RefereeNumber,
	})
	if err != nil {
		return err
	}

	roleName := rec.RoleName
	if roleName == "" {
		roleName = "Unknown"
	}
	err = stores.Referees.EnsureRole(ctx, referee.Role{
		ID:        rec.RoleID,
		Name:      roleName,
		ShortName: rec.RoleShortName,
	})
	if err != nil {
		return err
	}

	var assignmentFogisID string
	if rec.AssignmentID != 0 {
		assignmentFogisID = strconv.FormatInt(rec.AssignmentID, 10)
	}
	return stores.Referees.UpsertAssignment(ctx, referee.Assignment{
		MatchID:    matchID,
		RefereeID:  rec.RefereeID,
		RoleID:     rec.RoleID,
		StatusName: rec.StatusName,
		FogisID:    assignmentFogisID,
	})
}

// parseMatchDate accepts YYYY-MM-DD and falls back to the current date
// when the value does not parse.
func (s *ImportService) parseMatchDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(matchDateLayout, value)
	if err != nil {
		return s.now(), false
	}
	return parsed, true
}
