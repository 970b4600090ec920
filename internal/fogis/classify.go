package fogis

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/bytedance/sonic"
)

// RecordKind identifies which importer handles a batch.
type RecordKind int

const (
	KindUnknown RecordKind = iota
	KindMatch
	KindMatchResult
	KindMatchEvent
	KindMatchParticipant
)

func (k RecordKind) String() string {
	switch k {
	case KindMatch:
		return "match"
	case KindMatchResult:
		return "match_result"
	case KindMatchEvent:
		return "match_event"
	case KindMatchParticipant:
		return "match_participant"
	default:
		return "unknown"
	}
}

// Batch is a classified payload: the raw records plus the kind derived
// from the __type marker of the first record.
type Batch struct {
	Kind     RecordKind
	TypeName string
	Records  []json.RawMessage
}

type typeMarker struct {
	Type string `json:"__type"`
}

// Classify decodes a FOGIS payload, which is either a single object or
// a list of objects, and determines the record kind from the __type
// marker of the first record. Classification never fails: payloads that
// do not decode, are empty, or carry no recognized marker come back as
// KindUnknown and the caller decides whether that is worth a warning.
func Classify(data []byte) Batch {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Batch{}
	}

	var records []json.RawMessage
	if data[0] == '[' {
		if err := sonic.Unmarshal(data, &records); err != nil {
			return Batch{}
		}
	} else {
		var single map[string]json.RawMessage
		if err := sonic.Unmarshal(data, &single); err != nil {
			return Batch{}
		}
		records = []json.RawMessage{json.RawMessage(data)}
	}
	if len(records) == 0 {
		return Batch{}
	}

	var marker typeMarker
	if err := sonic.Unmarshal(records[0], &marker); err != nil {
		return Batch{Records: records}
	}
	return Batch{
		Kind:     kindFromTypeName(marker.Type),
		TypeName: marker.Type,
		Records:  records,
	}
}

// kindFromTypeName maps the upstream marker, e.g.
// "Svenskfotboll.Fogis.Web.FogisMobilDomarKlient.MatchJSON", to a kind.
// The compound names are matched before the bare MatchJSON.
func kindFromTypeName(name string) RecordKind {
	switch {
	case strings.Contains(name, "MatchresultatJSON"):
		return KindMatchResult
	case strings.Contains(name, "MatchhandelseJSON"):
		return KindMatchEvent
	case strings.Contains(name, "MatchdeltagareJSON"):
		return KindMatchParticipant
	case strings.Contains(name, "MatchJSON"):
		return KindMatch
	default:
		return KindUnknown
	}
}
