// Package usecase holds the import pipeline: classify a FOGIS export,
// run the matching record importer inside one transaction, and commit
// only when no systemic failure occurred. Per-record problems are
// warnings, never failures.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/refstats/referee-stats/internal/domain/store"
	"github.com/refstats/referee-stats/internal/fogis"
	"github.com/refstats/referee-stats/internal/platform/logging"
)

type ImportService struct {
	uow    store.UnitOfWork
	logger *logging.Logger
	now    func() time.Time
}

func NewImportService(uow store.UnitOfWork, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ImportService{
		uow:    uow,
		logger: logger,
		now:    time.Now,
	}
}

// ImportFromJSON imports one FOGIS JSON export and returns the number
// of records that were created or updated. Skipped records are logged
// and excluded from the count. A systemic failure rolls the whole file
// back and is returned.
func (s *ImportService) ImportFromJSON(ctx context.Context, path string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "ImportService.ImportFromJSON")
	defer span.End()

	data, err := fogis.ReadJSON(path)
	if err != nil {
		return 0, err
	}

	count, err := s.importPayload(ctx, data)
	if err != nil {
		s.logger.ErrorContext(ctx, "import failed", "path", path, "error", err)
		return 0, err
	}
	s.logger.InfoContext(ctx, "import finished", "path", path, "records", count)
	return count, nil
}

// ImportFromCSV reads a CSV export and returns its data row count.
// CSV input is a pass-through: no relational writes happen.
func (s *ImportService) ImportFromCSV(ctx context.Context, path string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "ImportService.ImportFromCSV")
	defer span.End()

	data, err := fogis.ReadCSV(path)
	if err != nil {
		return 0, err
	}
	batch := fogis.Classify(data)
	s.logger.InfoContext(ctx, "csv read", "path", path, "rows", len(batch.Records))
	return len(batch.Records), nil
}

func (s *ImportService) importPayload(ctx context.Context, data []byte) (int, error) {
	batch := fogis.Classify(data)
	if len(batch.Records) == 0 {
		s.logger.WarnContext(ctx, "nothing to import", "type", batch.TypeName)
		return 0, nil
	}
	if batch.Kind == fogis.KindUnknown {
		s.logger.WarnContext(ctx, "unrecognized record type, skipping payload",
			"type", batch.TypeName, "records", len(batch.Records))
		return 0, nil
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stores := tx.Stores()
	var count int
	switch batch.Kind {
	case fogis.KindMatch:
		count, err = s.importMatches(ctx, stores, batch.Records)
	case fogis.KindMatchResult:
		count, err = s.importResults(ctx, stores, batch.Records)
	case fogis.KindMatchEvent:
		count, err = s.importEvents(ctx, stores, batch.Records)
	case fogis.KindMatchParticipant:
		count, err = s.importParticipants(ctx, stores, batch.Records)
	}
	if err != nil {
		return 0, fmt.Errorf("import %s batch: %w", batch.Kind, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}
