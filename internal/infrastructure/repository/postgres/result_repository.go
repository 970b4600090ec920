package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/refstats/referee-stats/internal/domain/result"
	qb "github.com/refstats/referee-stats/internal/platform/querybuilder"
)

type ResultRepository struct {
	db sqlx.ExtContext
}

func NewResultRepository(db sqlx.ExtContext) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) EnsureType(ctx context.Context, t result.Type) error {
	insertModel := resultTypeInsertModel{ID: t.ID, Name: t.Name}
	query, args, err := qb.InsertModel("result_types", insertModel,
		"ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build ensure result type query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ensure result type: %w", err)
	}
	return nil
}

func (r *ResultRepository) Find(ctx context.Context, fogisID string, matchID, typeID int64) (result.Result, error) {
	if fogisID != "" {
		row, err := r.findOne(ctx, []qb.Condition{qb.Eq("fogis_id", fogisID)})
		if err == nil {
			return resultToDomain(row), nil
		}
		if !errors.Is(err, result.ErrNotFound) {
			return result.Result{}, err
		}
	}

	row, err := r.findOne(ctx, []qb.Condition{
		qb.Eq("match_id", matchID),
		qb.Eq("result_type_id", typeID),
	})
	if err != nil {
		return result.Result{}, err
	}
	return resultToDomain(row), nil
}

func (r *ResultRepository) findOne(ctx context.Context, conds []qb.Condition) (resultTableModel, error) {
	query, args, err := qb.Select("*").
		From("match_results").
		Where(conds...).
		ToSQL()
	if err != nil {
		return resultTableModel{}, fmt.Errorf("build find result query: %w", err)
	}

	var row resultTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return resultTableModel{}, result.ErrNotFound
		}
		return resultTableModel{}, fmt.Errorf("find result: %w", err)
	}
	return row, nil
}

func (r *ResultRepository) Create(ctx context.Context, res result.Result) error {
	query, args, err := qb.InsertInto("match_results").
		Columns("match_id", "result_type_id", "home_goals", "away_goals", "fogis_id").
		Values(res.MatchID, res.TypeID, res.HomeGoals, res.AwayGoals, nullString(res.FogisID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build create result query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create result: %w", err)
	}
	return nil
}

func (r *ResultRepository) Update(ctx context.Context, res result.Result) error {
	query, args, err := qb.Update("match_results").
		Set("match_id", res.MatchID).
		Set("result_type_id", res.TypeID).
		Set("home_goals", res.HomeGoals).
		Set("away_goals", res.AwayGoals).
		Set("fogis_id", nullString(res.FogisID)).
		Where(qb.Eq("id", res.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update result query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update result: %w", err)
	}
	return nil
}

func resultToDomain(row resultTableModel) result.Result {
	return result.Result{
		ID:        row.ID,
		MatchID:   row.MatchID,
		TypeID:    row.TypeID,
		HomeGoals: row.HomeGoals,
		AwayGoals: row.AwayGoals,
		FogisID:   stringValue(row.FogisID),
	}
}
