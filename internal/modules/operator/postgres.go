package operator

import (
	"context"
	"database/sql"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL operator repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Save(ctx context.Context, op *Operator) error {
	query := `
		INSERT INTO operators (emp_cd, name, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (emp_cd) DO UPDATE SET name = $2, password_hash = $3
	`
	_, err := r.db.ExecContext(ctx, query, op.Code, op.Name, op.PasswordHash)
	return err
}

func (r *postgresRepository) GetByCode(ctx context.Context, code string) (*Operator, error) {
	op := &Operator{}
	query := `
		SELECT emp_cd, name, password_hash, created_at
		FROM operators
		WHERE emp_cd = $1
	`
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&op.Code,
		&op.Name,
		&op.PasswordHash,
		&op.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return op, nil
}
