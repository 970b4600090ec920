package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/refstats/referee-stats/internal/infrastructure/repository/memory"
)

const matchTypeName = "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchJSON"

const matchPayload = `[{
	"__type": "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchJSON",
	"matchid": 6169913,
	"matchnr": "000026015",
	"speldatum": "2025-06-14",
	"avsparkstid": "15:00",
	"anlaggningid": 12345,
	"anlaggningnamn": "Hestra IP",
	"tavlingid": 123456,
	"tavlingnamn": "Div 2 Västra Götaland, herr 2025",
	"tavlingnr": "26",
	"tavlingskategoriid": 7,
	"tavlingskategorinamn": "Division 2, herrar",
	"lag1lagid": 78111,
	"lag1namn": "Hestrafors IF",
	"lag1foreningid": 9590,
	"lag2lagid": 78222,
	"lag2namn": "IF Böljan Falkenberg",
	"lag2foreningid": 9323,
	"antalaskadare": 120,
	"domaruppdraglista": [{
		"domaruppdragid": 7700,
		"domareid": 6600,
		"domarrollid": 1,
		"domarrollnamn": "Huvuddomare",
		"domaruppdragstatusnamn": "Tilldelat",
		"domarnr": "61318",
		"personid": 1082017,
		"personnamn": "Bartek Svaberg"
	}]
}]`

func writeTempFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestImportFromJSON_MatchImportIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	svc := NewImportService(store, nil)
	ctx := context.Background()
	path := writeTempFile(t, "matches.json", matchPayload)

	count, err := svc.ImportFromJSON(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	counts := store.Counts()
	require.Equal(t, 1, counts["matches"])
	require.Equal(t, 2, counts["matchTeams"])
	require.Equal(t, 2, counts["teams"])
	require.Equal(t, 2, counts["clubs"])
	require.Equal(t, 1, counts["venues"])
	require.Equal(t, 1, counts["competitions"])
	require.Equal(t, 1, counts["categories"])
	require.Equal(t, 1, counts["persons"])
	require.Equal(t, 1, counts["referees"])
	require.Equal(t, 1, counts["roles"])
	require.Equal(t, 1, counts["assignments"])

	// A second pass over the same file must update in place, never
	// duplicate.
	count, err = svc.ImportFromJSON(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, counts, store.Counts())

	m, ok := store.MatchByFogisID("6169913")
	require.True(t, ok)
	require.Equal(t, "000026015", m.MatchNr)
	require.Equal(t, "normal", m.Status)
	require.NotNil(t, m.Spectators)
	require.Equal(t, 120, *m.Spectators)
	require.Equal(t, 1, m.FootballTypeID)

	comp, ok := store.CompetitionByID(123456)
	require.True(t, ok)
	require.Equal(t, "2025", comp.Season)

	homeClub, ok := store.ClubByID(9590)
	require.True(t, ok)
	require.Equal(t, "Hestrafors", homeClub.Name)
	awayClub, ok := store.ClubByID(9323)
	require.True(t, ok)
	require.Equal(t, "IF", awayClub.Name)

	p, ok := store.PersonByFogisID("1082017")
	require.True(t, ok)
	require.Equal(t, "Bartek", p.FirstName)
	require.Equal(t, "Svaberg", p.LastName)
	require.Equal(t, "Sweden", p.Country)

	mts := store.MatchTeamsFor(m.ID)
	require.Len(t, mts, 2)
	require.True(t, mts[0].IsHomeTeam)
	require.EqualValues(t, 78111, mts[0].TeamID)
	require.False(t, mts[1].IsHomeTeam)
	require.EqualValues(t, 78222, mts[1].TeamID)

	a, ok := store.AssignmentFor(m.ID, 6600, 1)
	require.True(t, ok)
	require.Equal(t, "Tilldelat", a.StatusName)
	require.Equal(t, "7700", a.FogisID)
}

func TestImportFromJSON_RecordMissingMatchIDIsSkipped(t *testing.T) {
	store := memory.NewStore()
	svc := NewImportService(store, nil)
	path := writeTempFile(t, "matches.json", `[
		{"__type": "`+matchTypeName+`", "matchnr": "000026016"},
		{"__type": "`+matchTypeName+`", "matchid": 6169914, "speldatum": "2025-06-15"}
	]`)

	count, err := svc.ImportFromJSON(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, 1, store.Counts()["matches"])
}

func TestImportFromJSON_UnknownTypeIsIgnored(t *testing.T) {
	store := memory.NewStore()
	svc := NewImportService(store, nil)
	path := writeTempFile(t, "payload.json", `[
		{"__type": "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.TavlingJSON", "tavlingid": 1}
	]`)

	count, err := svc.ImportFromJSON(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 0, count)
	require.Equal(t, 0, store.Counts()["matches"])
}

func TestImportFromJSON_MatchDateFallsBackToNow(t *testing.T) {
	store := memory.NewStore()
	svc := NewImportService(store, nil)
	fixed := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	path := writeTempFile(t, "matches.json", `[
		{"__type": "`+matchTypeName+`", "matchid": 6169915, "speldatum": "not a date"}
	]`)

	count, err := svc.ImportFromJSON(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	m, ok := store.MatchByFogisID("6169915")
	require.True(t, ok)
	require.True(t, m.Date.Equal(fixed))
}

func TestImportFromJSON_ResultForUnknownMatchIsSkipped(t *testing.T) {
	store := memory.NewStore()
	svc := NewImportService(store, nil)
	path := writeTempFile(t, "results.json", `[{
		"__type": "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchresultatJSON",
		"matchresultatid": 9001,
		"matchid": 999999,
		"matchresultattypid": 1,
		"matchresultattypnamn": "Slutresultat",
		"matchlag1mal": 3,
		"matchlag2mal": 1
	}]`)

	count, err := svc.ImportFromJSON(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 0, count)
	require.Empty(t, store.Results())
}

func TestImportFromJSON_ResultCreateThenUpdate(t *testing.T) {
	store := memory.NewStore()
	svc := NewImportService(store, nil)
	ctx := context.Background()

	_, err := svc.ImportFromJSON(ctx, writeTempFile(t, "matches.json", matchPayload))
	require.NoError(t, err)

	resultPayload := func(home, away int) string {
		return writeTempFile(t, "results.json", `[{
			"__type": "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchresultatJSON",
			"matchresultatid": 9001,
			"matchid": 6169913,
			"matchresultattypid": 1,
			"matchresultattypnamn": "Slutresultat",
			"matchlag1mal": `+itoa(home)+`,
			"matchlag2mal": `+itoa(away)+`
		}]`)
	}

	count, err := svc.ImportFromJSON(ctx, resultPayload(3, 1))
	require.NoError(t, err)
	require.Equal(t, 1, count)

	count, err = svc.ImportFromJSON(ctx, resultPayload(2, 1))
	require.NoError(t, err)
	require.Equal(t, 1, count)

	results := store.Results()
	require.Len(t, results, 1)
	require.Equal(t, 2, results[0].HomeGoals)
	require.Equal(t, 1, results[0].AwayGoals)
	require.Equal(t, "9001", results[0].FogisID)
}

func TestImportFromJSON_ParticipantsAndEvents(t *testing.T) {
	store := memory.NewStore()
	svc := NewImportService(store, nil)
	ctx := context.Background()

	_, err := svc.ImportFromJSON(ctx, writeTempFile(t, "matches.json", matchPayload))
	require.NoError(t, err)

	m, ok := store.MatchByFogisID("6169913")
	require.True(t, ok)
	homeTeamRowID := store.MatchTeamsFor(m.ID)[0].ID

	count, err := svc.ImportFromJSON(ctx, writeTempFile(t, "participants.json", `[{
		"__type": "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchdeltagareJSON",
		"matchdeltagareid": 555001,
		"matchid": 6169913,
		"matchlagid": `+itoa64(homeTeamRowID)+`,
		"spelareid": 310001,
		"personid": 77001,
		"fornamn": "Erik",
		"efternamn": "Andersson",
		"trojnummer": 9,
		"byte1": 0,
		"byte2": 75
	}]`))
	require.NoError(t, err)
	require.Equal(t, 1, count)

	p, ok := store.ParticipantByFogisID("555001")
	require.True(t, ok)
	require.Nil(t, p.SubInMinute, "byte1 placeholder 0 must map to absent")
	require.NotNil(t, p.SubOutMinute)
	require.Equal(t, 75, *p.SubOutMinute)
	require.NotNil(t, p.JerseyNumber)
	require.Equal(t, 9, *p.JerseyNumber)

	count, err = svc.ImportFromJSON(ctx, writeTempFile(t, "events.json", `[{
		"__type": "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchhandelseJSON",
		"matchhandelseid": 888001,
		"matchid": 6169913,
		"matchhandelsetypid": 6,
		"matchhandelsetypnamn": "Spelmål",
		"matchhandelsetypmedforstallningsandring": true,
		"matchdeltagareid": 555001,
		"matchlagid": `+itoa64(homeTeamRowID)+`,
		"matchminut": 23,
		"period": 1,
		"hemmamal": 1,
		"bortamal": 0,
		"relateradTillMatchhandelseID": 0
	}]`))
	require.NoError(t, err)
	require.Equal(t, 1, count)

	events := store.Events()
	require.Len(t, events, 1)
	require.Equal(t, p.ID, events[0].ParticipantID)
	require.Equal(t, -1, events[0].PositionX)
	require.Equal(t, -1, events[0].PositionY)
	require.Nil(t, events[0].RelatedEventID, "placeholder 0 must map to absent")

	typ, ok := store.EventTypeByID(6)
	require.True(t, ok)
	require.True(t, typ.IsGoal)
	require.False(t, typ.IsCard)
	require.True(t, typ.AffectsScore)

	// A later sighting of the same type id with a different name must
	// not rewrite the stored type.
	count, err = svc.ImportFromJSON(ctx, writeTempFile(t, "events2.json", `[{
		"__type": "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchhandelseJSON",
		"matchhandelseid": 888002,
		"matchid": 6169913,
		"matchhandelsetypid": 6,
		"matchhandelsetypnamn": "Rött kort",
		"matchdeltagareid": 555001,
		"matchlagid": `+itoa64(homeTeamRowID)+`
	}]`))
	require.NoError(t, err)
	require.Equal(t, 1, count)

	typ, ok = store.EventTypeByID(6)
	require.True(t, ok)
	require.Equal(t, "Spelmål", typ.Name)
	require.False(t, typ.IsCard)
}

func TestImportFromJSON_EventForUnknownParticipantIsSkipped(t *testing.T) {
	store := memory.NewStore()
	svc := NewImportService(store, nil)
	ctx := context.Background()

	_, err := svc.ImportFromJSON(ctx, writeTempFile(t, "matches.json", matchPayload))
	require.NoError(t, err)

	count, err := svc.ImportFromJSON(ctx, writeTempFile(t, "events.json", `[{
		"__type": "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchhandelseJSON",
		"matchhandelseid": 888003,
		"matchid": 6169913,
		"matchhandelsetypid": 6,
		"matchdeltagareid": 424242,
		"matchlagid": 424242
	}]`))
	require.NoError(t, err)
	require.Equal(t, 0, count)
	require.Empty(t, store.Events())
}

func TestImportFromJSON_StorageErrorRollsBackWholeFile(t *testing.T) {
	store := memory.NewStore()
	svc := NewImportService(store, nil)
	ctx := context.Background()

	_, err := svc.ImportFromJSON(ctx, writeTempFile(t, "matches.json", matchPayload))
	require.NoError(t, err)
	before := store.Counts()

	store.ForcedErr = os.ErrDeadlineExceeded
	_, err = svc.ImportFromJSON(ctx, writeTempFile(t, "matches2.json", `[
		{"__type": "`+matchTypeName+`", "matchid": 6169916, "speldatum": "2025-06-20",
		 "anlaggningid": 99, "anlaggningnamn": "Ruder Boevs IP"}
	]`))
	require.Error(t, err)

	store.ForcedErr = nil
	require.Equal(t, before, store.Counts())
}

func TestImportFromCSV_CountsRowsWithoutWriting(t *testing.T) {
	store := memory.NewStore()
	svc := NewImportService(store, nil)

	path := writeTempFile(t, "matches.csv",
		"__type,matchid,speldatum\n"+
			matchTypeName+",6169913,2025-06-14\n"+
			matchTypeName+",6169914,2025-06-15\n")

	count, err := svc.ImportFromCSV(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, 0, store.Counts()["matches"])
}

func itoa(v int) string { return itoa64(int64(v)) }

func itoa64(v int64) string {
	return strconv.FormatInt(v, 10)
}
