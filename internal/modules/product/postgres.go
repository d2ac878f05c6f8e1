package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT prd_id, code, name, price
		FROM products WHERE code=$1`, code).
		Scan(&p.PRDID, &p.Code, &p.Name, &p.Price)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Class() == "08" {
			return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, pqErr.Code.Name())
		}
		return nil, err
	}
	return p, nil
}
