package fogis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadJSON_MissingFile(t *testing.T) {
	if _, err := ReadJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadCSV_CoercesCellsAndKeepsTypeColumn(t *testing.T) {
	path := writeFile(t, "matches.csv",
		"__type,matchid,speldatum,wo,anlaggningLatitud\n"+
			"Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchJSON,6169913,2025-06-14,true,57.7\n")

	data, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	batch := Classify(data)
	if batch.Kind != KindMatch {
		t.Fatalf("unexpected kind: got=%s want=%s", batch.Kind, KindMatch)
	}
	if len(batch.Records) != 1 {
		t.Fatalf("unexpected record count: got=%d want=1", len(batch.Records))
	}

	var rec MatchRecord
	if err := sonic.Unmarshal(batch.Records[0], &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.MatchID != 6169913 {
		t.Fatalf("unexpected matchid: got=%d want=6169913", rec.MatchID)
	}
	if rec.Date != "2025-06-14" {
		t.Fatalf("unexpected date: got=%s", rec.Date)
	}
	if !rec.IsWalkover {
		t.Fatal("expected wo=true to be coerced to a bool")
	}
	if rec.VenueLatitude == nil || *rec.VenueLatitude != 57.7 {
		t.Fatalf("unexpected latitude: got=%v", rec.VenueLatitude)
	}
}

func TestReadCSV_EmptyCellsAreOmitted(t *testing.T) {
	path := writeFile(t, "matches.csv",
		"__type,matchid,anlaggningnamn\n"+
			"Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchJSON,6169913,\n")

	data, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	var records []map[string]any
	if err := sonic.Unmarshal(data, &records); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("unexpected row count: got=%d want=1", len(records))
	}
	if _, ok := records[0]["anlaggningnamn"]; ok {
		t.Fatal("empty cell must be omitted, not emitted as empty string")
	}
}

func TestReadCSV_MissingHeader(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	if _, err := ReadCSV(path); err == nil {
		t.Fatal("expected error for missing header row")
	}
}
