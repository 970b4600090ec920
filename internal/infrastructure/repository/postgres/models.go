package postgres

import "time"

type venueInsertModel struct {
	ID        int64    `db:"id"`
	Name      string   `db:"name"`
	Latitude  *float64 `db:"latitude"`
	Longitude *float64 `db:"longitude"`
}

type categoryInsertModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type competitionInsertModel struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	Season        string `db:"season"`
	CategoryID    *int64 `db:"category_id"`
	GenderID      *int64 `db:"gender_id"`
	AgeCategoryID *int64 `db:"age_category_id"`
	FogisID       string `db:"fogis_id"`
}

type clubInsertModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type teamInsertModel struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	ClubID  int64  `db:"club_id"`
	FogisID string `db:"fogis_id"`
}

type personInsertModel struct {
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	PersonalNumber string `db:"personal_number"`
	Email          string `db:"email"`
	Phone          string `db:"phone"`
	Address        string `db:"address"`
	PostalCode     string `db:"postal_code"`
	City           string `db:"city"`
	Country        string `db:"country"`
	FogisID        string `db:"fogis_id"`
}

type refereeInsertModel struct {
	ID            int64  `db:"id"`
	PersonID      int64  `db:"person_id"`
	RefereeNumber string `db:"referee_number"`
}

type refereeRoleInsertModel struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	ShortName string `db:"short_name"`
}

type refereeAssignmentInsertModel struct {
	MatchID   int64  `db:"match_id"`
	RefereeID int64  `db:"referee_id"`
	RoleID    int64  `db:"role_id"`
	Status    string `db:"status"`
	FogisID   string `db:"fogis_id"`
}

type matchInsertModel struct {
	MatchNr        string    `db:"match_nr"`
	Date           time.Time `db:"date"`
	Time           string    `db:"time"`
	VenueID        *int64    `db:"venue_id"`
	CompetitionID  *int64    `db:"competition_id"`
	FootballTypeID int       `db:"football_type_id"`
	Spectators     *int      `db:"spectators"`
	Status         string    `db:"status"`
	IsWalkover     bool      `db:"is_walkover"`
	FogisID        string    `db:"fogis_id"`
}

type matchTableModel struct {
	ID             int64     `db:"id"`
	MatchNr        string    `db:"match_nr"`
	Date           time.Time `db:"date"`
	Time           string    `db:"time"`
	VenueID        *int64    `db:"venue_id"`
	CompetitionID  *int64    `db:"competition_id"`
	FootballTypeID int       `db:"football_type_id"`
	Spectators     *int      `db:"spectators"`
	Status         string    `db:"status"`
	IsWalkover     bool      `db:"is_walkover"`
	FogisID        string    `db:"fogis_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type matchTeamTableModel struct {
	ID         int64 `db:"id"`
	MatchID    int64 `db:"match_id"`
	TeamID     int64 `db:"team_id"`
	IsHomeTeam bool  `db:"is_home_team"`
}

type resultTypeInsertModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type resultTableModel struct {
	ID        int64   `db:"id"`
	MatchID   int64   `db:"match_id"`
	TypeID    int64   `db:"result_type_id"`
	HomeGoals int     `db:"home_goals"`
	AwayGoals int     `db:"away_goals"`
	FogisID   *string `db:"fogis_id"`
}

type eventTypeInsertModel struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	IsGoal         bool   `db:"is_goal"`
	IsPenalty      bool   `db:"is_penalty"`
	IsCard         bool   `db:"is_card"`
	IsSubstitution bool   `db:"is_substitution"`
	AffectsScore   bool   `db:"affects_score"`
}

type eventInsertModel struct {
	MatchID        int64   `db:"match_id"`
	ParticipantID  int64   `db:"participant_id"`
	TypeID         int64   `db:"event_type_id"`
	MatchTeamID    int64   `db:"match_team_id"`
	Minute         *int    `db:"minute"`
	Period         *int    `db:"period"`
	Comment        string  `db:"comment"`
	HomeScore      int     `db:"home_score"`
	AwayScore      int     `db:"away_score"`
	PositionX      int     `db:"position_x"`
	PositionY      int     `db:"position_y"`
	RelatedEventID *int64  `db:"related_event_id"`
	FogisID        *string `db:"fogis_id"`
}

type eventTableModel struct {
	ID             int64   `db:"id"`
	MatchID        int64   `db:"match_id"`
	ParticipantID  int64   `db:"participant_id"`
	TypeID         int64   `db:"event_type_id"`
	MatchTeamID    int64   `db:"match_team_id"`
	Minute         *int    `db:"minute"`
	Period         *int    `db:"period"`
	Comment        string  `db:"comment"`
	HomeScore      int     `db:"home_score"`
	AwayScore      int     `db:"away_score"`
	PositionX      int     `db:"position_x"`
	PositionY      int     `db:"position_y"`
	RelatedEventID *int64  `db:"related_event_id"`
	FogisID        *string `db:"fogis_id"`
}

type participantInsertModel struct {
	MatchID               int64  `db:"match_id"`
	MatchTeamID           int64  `db:"match_team_id"`
	PlayerID              int64  `db:"player_id"`
	JerseyNumber          *int   `db:"jersey_number"`
	IsCaptain             bool   `db:"is_captain"`
	IsSubstitute          bool   `db:"is_substitute"`
	SubInMinute           *int   `db:"substitution_in_minute"`
	SubOutMinute          *int   `db:"substitution_out_minute"`
	IsPlayingLeader       bool   `db:"is_playing_leader"`
	IsResponsible         bool   `db:"is_responsible"`
	AccumulatedWarnings   int    `db:"accumulated_warnings"`
	SuspensionDescription string `db:"suspension_description"`
	FogisID               string `db:"fogis_id"`
}

type participantTableModel struct {
	ID                    int64  `db:"id"`
	MatchID               int64  `db:"match_id"`
	MatchTeamID           int64  `db:"match_team_id"`
	PlayerID              int64  `db:"player_id"`
	JerseyNumber          *int   `db:"jersey_number"`
	IsCaptain             bool   `db:"is_captain"`
	IsSubstitute          bool   `db:"is_substitute"`
	SubInMinute           *int   `db:"substitution_in_minute"`
	SubOutMinute          *int   `db:"substitution_out_minute"`
	IsPlayingLeader       bool   `db:"is_playing_leader"`
	IsResponsible         bool   `db:"is_responsible"`
	AccumulatedWarnings   int    `db:"accumulated_warnings"`
	SuspensionDescription string `db:"suspension_description"`
	FogisID               string `db:"fogis_id"`
}
