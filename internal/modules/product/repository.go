package product

import "context"

// Repository defines data access for the product master.
type Repository interface {
	GetByCode(ctx context.Context, code string) (*Product, error)
}
