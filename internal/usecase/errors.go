package usecase

import "github.com/cockroachdb/errors"

// errSkip marks anticipated per-record problems: missing required
// fields, unresolved mandatory references, undecodable records. A
// marked error downgrades to a warning and the batch continues; any
// unmarked error is systemic and fails the whole file.
var errSkip = errors.New("record skipped")

func skipf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), errSkip)
}

func isSkip(err error) bool {
	return errors.Is(err, errSkip)
}
