package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/refstats/referee-stats/internal/domain/person"
	qb "github.com/refstats/referee-stats/internal/platform/querybuilder"
)

type PersonRepository struct {
	db sqlx.ExtContext
}

func NewPersonRepository(db sqlx.ExtContext) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Upsert(ctx context.Context, p person.Person) (int64, error) {
	insertModel := personInsertModel{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		PersonalNumber: p.PersonalNumber,
		Email:          p.Email,
		Phone:          p.Phone,
		Address:        p.Address,
		PostalCode:     p.PostalCode,
		City:           p.City,
		Country:        p.Country,
		FogisID:        p.FogisID,
	}
	query, args, err := qb.InsertModel("persons", insertModel, `ON CONFLICT (fogis_id)
DO UPDATE SET
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    personal_number = EXCLUDED.personal_number,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    address = EXCLUDED.address,
    postal_code = EXCLUDED.postal_code,
    city = EXCLUDED.city,
    country = EXCLUDED.country,
    updated_at = NOW()
RETURNING id`)
	if err != nil {
		return 0, fmt.Errorf("build upsert person query: %w", err)
	}
	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert person: %w", err)
	}
	return id, nil
}
