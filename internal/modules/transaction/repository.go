package transaction

import "context"

// Repository defines data access for transactions and their details.
type Repository interface {
	// Create inserts the header and assigns t.TRDID.
	Create(ctx context.Context, t *Transaction) error
	// GetByID loads the header with its details in append order.
	GetByID(ctx context.Context, trdID int64) (*Transaction, error)
	// AddDetails appends the lines and increments the stored total by
	// their price sum, all inside a single unit of work. On any failure
	// nothing from the batch is persisted.
	AddDetails(ctx context.Context, trdID int64, lines []Line) ([]*Detail, error)
}
