package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	sql, args, err := Select("id", "name").
		From("venues").
		Where(Eq("id", int64(12345))).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT id, name FROM venues WHERE id = $1"
	if sql != want {
		t.Fatalf("unexpected sql:\n got=%s\nwant=%s", sql, want)
	}
	if !reflect.DeepEqual(args, []any{int64(12345)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatal("expected error without table")
	}
}

func TestInsertBuilder_WithSuffix(t *testing.T) {
	sql, args, err := InsertInto("clubs").
		Columns("id", "name").
		Values(int64(9590), "Hestrafors").
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO clubs (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING"
	if sql != want {
		t.Fatalf("unexpected sql:\n got=%s\nwant=%s", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected arg count: got=%d want=2", len(args))
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	if _, _, err := InsertInto("clubs").Columns("id", "name").Values(1).ToSQL(); err == nil {
		t.Fatal("expected error for mismatched values")
	}
}

func TestUpdateBuilder(t *testing.T) {
	sql, args, err := Update("match_results").
		Set("home_goals", 2).
		Set("away_goals", 1).
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE match_results SET home_goals = $1, away_goals = $2 WHERE id = $3"
	if sql != want {
		t.Fatalf("unexpected sql:\n got=%s\nwant=%s", sql, want)
	}
	if !reflect.DeepEqual(args, []any{2, 1, int64(7)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModel(t *testing.T) {
	model := struct {
		ID      int64  `db:"id"`
		Name    string `db:"name"`
		Skipped string `db:"-"`
		NoTag   string
	}{ID: 12345, Name: "Hestra IP", Skipped: "x", NoTag: "y"}

	sql, args, err := InsertModel("venues", model, "ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}

	want := "INSERT INTO venues (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"
	if sql != want {
		t.Fatalf("unexpected sql:\n got=%s\nwant=%s", sql, want)
	}
	if !reflect.DeepEqual(args, []any{int64(12345), "Hestra IP"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("venues", 42, ""); err == nil {
		t.Fatal("expected error for non-struct model")
	}
}
