// Package app wires configuration into a ready import pipeline.
package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/refstats/referee-stats/internal/config"
	"github.com/refstats/referee-stats/internal/infrastructure/repository/postgres"
	"github.com/refstats/referee-stats/internal/platform/logging"
	"github.com/refstats/referee-stats/internal/usecase"

	_ "github.com/lib/pq"
)

// App holds the wired services and the resources they own.
type App struct {
	DB       *sqlx.DB
	Importer *usecase.ImportService
}

// New opens an instrumented database handle and builds the import
// service on top of it.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	opts := []otelsql.Option{
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	uow := postgres.NewUnitOfWork(db)
	importer := usecase.NewImportService(uow, logger)

	return &App{DB: db, Importer: importer}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
