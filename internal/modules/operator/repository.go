package operator

import "context"

// Repository defines data access for operator credentials.
type Repository interface {
	// Save inserts the operator or, when the code is already
	// provisioned, replaces its name and password hash.
	Save(ctx context.Context, op *Operator) error
	GetByCode(ctx context.Context, code string) (*Operator, error)
}
