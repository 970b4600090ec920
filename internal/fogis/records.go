// Package fogis decodes record payloads exported from the Swedish FA's
// FOGIS system. Field names follow the upstream JSON exactly.
package fogis

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a decoded record's mandatory fields. A failure means
// the record should be skipped, not that the import should stop.
func Validate(rec any) error {
	return validate.Struct(rec)
}

// Optional maps the FOGIS zero placeholder to absent.
func Optional(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

// OptionalID maps a zero id to absent.
func OptionalID(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}

// PersonRecord carries the person fields FOGIS embeds in referee
// assignments and match participants.
type PersonRecord struct {
	PersonID       int64  `json:"personid"`
	FullName       string `json:"personnamn"`
	Name           string `json:"namn"`
	FirstName      string `json:"fornamn"`
	LastName       string `json:"efternamn"`
	PersonalNumber string `json:"personnr"`
	Email          string `json:"epostadress"`
	Phone          string `json:"mobiltelefon"`
	Address        string `json:"adress"`
	PostalCode     string `json:"postnr"`
	City           string `json:"postort"`
	Country        string `json:"land"`
}

// RefereeRecord is one entry of a match's domaruppdraglista.
type RefereeRecord struct {
	PersonRecord

	RefereeID     int64  `json:"domareid"`
	RoleID        int64  `json:"domarrollid"`
	RoleName      string `json:"domarrollnamn"`
	RoleShortName string `json:"domarrollkortnamn"`
	AssignmentID  int64  `json:"domaruppdragid"`
	StatusName    string `json:"domaruppdragstatusnamn"`
	RefereeNumber string `json:"domarnr"`
}

// MatchRecord is one fixture as exported by FOGIS.
type MatchRecord struct {
	MatchID int64  `json:"matchid" validate:"required"`
	MatchNr string `json:"matchnr"`
	Date    string `json:"speldatum"`
	Time    string `json:"avsparkstid"`

	VenueID        int64    `json:"anlaggningid"`
	VenueName      string   `json:"anlaggningnamn"`
	VenueLatitude  *float64 `json:"anlaggningLatitud"`
	VenueLongitude *float64 `json:"anlaggningLongitud"`

	CompetitionID   int64  `json:"tavlingid"`
	CompetitionName string `json:"tavlingnamn"`
	CompetitionNr   string `json:"tavlingnr"`
	CategoryID      int64  `json:"tavlingskategoriid"`
	CategoryName    string `json:"tavlingskategorinamn"`
	GenderID        *int64 `json:"tavlingKonId"`
	AgeCategoryID   *int64 `json:"tavlingAlderskategori"`

	HomeTeamID   int64  `json:"lag1lagid"`
	HomeTeamName string `json:"lag1namn"`
	HomeClubID   int64  `json:"lag1foreningid"`
	AwayTeamID   int64  `json:"lag2lagid"`
	AwayTeamName string `json:"lag2namn"`
	AwayClubID   int64  `json:"lag2foreningid"`

	FootballTypeID int             `json:"fotbollstypid"`
	Spectators     *int            `json:"antalaskadare"`
	IsWalkover     bool            `json:"wo"`
	Referees       []RefereeRecord `json:"domaruppdraglista"`
}

// ResultRecord is one score line for a match.
type ResultRecord struct {
	ResultID  int64  `json:"matchresultatid"`
	MatchID   int64  `json:"matchid" validate:"required"`
	TypeID    int64  `json:"matchresultattypid" validate:"required"`
	TypeName  string `json:"matchresultattypnamn"`
	HomeGoals int    `json:"matchlag1mal"`
	AwayGoals int    `json:"matchlag2mal"`
}

// EventRecord is one in-match occurrence.
type EventRecord struct {
	EventID        int64  `json:"matchhandelseid"`
	MatchID        int64  `json:"matchid" validate:"required"`
	TypeID         int64  `json:"matchhandelsetypid" validate:"required"`
	TypeName       string `json:"matchhandelsetypnamn"`
	AffectsScore   bool   `json:"matchhandelsetypmedforstallningsandring"`
	ParticipantID  int64  `json:"matchdeltagareid" validate:"required"`
	MatchTeamID    int64  `json:"matchlagid" validate:"required"`
	Minute         *int   `json:"matchminut"`
	Period         *int   `json:"period"`
	Comment        string `json:"kommentar"`
	HomeScore      int    `json:"hemmamal"`
	AwayScore      int    `json:"bortamal"`
	PositionX      *int   `json:"planpositionx"`
	PositionY      *int   `json:"planpositiony"`
	RelatedEventID int64  `json:"relateradTillMatchhandelseID"`
}

// ParticipantRecord is one player's squad entry for a match side.
// SubInMinute and SubOutMinute use 0 for "no substitution".
type ParticipantRecord struct {
	PersonRecord

	ParticipantID         int64  `json:"matchdeltagareid" validate:"required"`
	MatchID               int64  `json:"matchid" validate:"required"`
	MatchTeamID           int64  `json:"matchlagid" validate:"required"`
	PlayerID              int64  `json:"spelareid" validate:"required"`
	JerseyNumber          *int   `json:"trojnummer"`
	IsCaptain             bool   `json:"lagkapten"`
	IsSubstitute          bool   `json:"ersattare"`
	SubInMinute           int    `json:"byte1"`
	SubOutMinute          int    `json:"byte2"`
	IsPlayingLeader       bool   `json:"arSpelandeLedare"`
	IsResponsible         bool   `json:"ansvarig"`
	AccumulatedWarnings   int    `json:"spelareAntalAckumuleradeVarningar"`
	SuspensionDescription string `json:"spelareAvstangningBeskrivning"`
}
