package product

import "errors"

// Product is an entry in the product master. Products are loaded
// administratively and are read-only through the API.
type Product struct {
	PRDID int64  `json:"prd_id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

var (
	// ErrNotFound is returned when no product matches the given code.
	ErrNotFound = errors.New("product not found")
	// ErrStoreUnavailable covers store connectivity failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)
