package fogis

import "testing"

func TestClassify_KindFromMarker(t *testing.T) {
	cases := []struct {
		name     string
		typeName string
		want     RecordKind
	}{
		{"match", "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchJSON", KindMatch},
		{"result", "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchresultatJSON", KindMatchResult},
		{"event", "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchhandelseJSON", KindMatchEvent},
		{"participant", "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchdeltagareJSON", KindMatchParticipant},
		{"other", "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.TavlingJSON", KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := `[{"__type": "` + tc.typeName + `", "matchid": 1}]`
			got := Classify([]byte(payload))
			if got.Kind != tc.want {
				t.Fatalf("unexpected kind: got=%s want=%s", got.Kind, tc.want)
			}
			if got.TypeName != tc.typeName {
				t.Fatalf("unexpected type name: got=%s want=%s", got.TypeName, tc.typeName)
			}
			if len(got.Records) != 1 {
				t.Fatalf("unexpected record count: got=%d want=1", len(got.Records))
			}
		})
	}
}

func TestClassify_SingleObjectBecomesOneRecord(t *testing.T) {
	payload := `{"__type": "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchJSON", "matchid": 6169913}`
	got := Classify([]byte(payload))
	if got.Kind != KindMatch {
		t.Fatalf("unexpected kind: got=%s want=%s", got.Kind, KindMatch)
	}
	if len(got.Records) != 1 {
		t.Fatalf("unexpected record count: got=%d want=1", len(got.Records))
	}
}

func TestClassify_NeverFails(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"empty list", "[]"},
		{"not json", "matchid=1"},
		{"list of scalars", "[1, 2, 3]"},
		{"no marker", `[{"matchid": 1}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify([]byte(tc.payload))
			if got.Kind != KindUnknown {
				t.Fatalf("unexpected kind: got=%s want=%s", got.Kind, KindUnknown)
			}
		})
	}
}
