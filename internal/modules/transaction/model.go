package transaction

import (
	"errors"
	"time"
)

// Transaction is one sale event recorded at the register. Its total is
// accumulated server-side: every accepted detail append increments
// TotalAmt inside the same unit of work as the detail insert.
type Transaction struct {
	TRDID               int64     `json:"trd_id"`
	TransactionDateTime time.Time `json:"transaction_datetime"`
	EmpCD               string    `json:"emp_cd"`
	StoreCD             string    `json:"store_cd"`
	POSNo               string    `json:"pos_no"`
	TotalAmt            int64     `json:"total_amt"`
	Details             []*Detail `json:"details,omitempty"`
}

// Detail is one line item within a transaction. The product code and name
// are denormalized snapshots taken at sale time, and the price is the one
// actually charged, which may differ from the current master price.
type Detail struct {
	DTLID    int64  `json:"dtl_id"`
	TRDID    int64  `json:"trd_id"`
	PRDID    int64  `json:"prd_id"`
	PRDCode  string `json:"prd_code"`
	PRDName  string `json:"prd_name"`
	PRDPrice int64  `json:"prd_price"`
}

// Line describes one detail to append before the product is resolved.
type Line struct {
	PRDCode  string
	PRDName  string
	PRDPrice int64
}

// CreateTransactionRequest is the payload for opening a transaction.
// The timestamp is assigned server-side, never taken from the caller.
type CreateTransactionRequest struct {
	EmpCD    string `json:"emp_cd"`
	StoreCD  string `json:"store_cd"`
	POSNo    string `json:"pos_no"`
	TotalAmt int64  `json:"total_amt"`
}

// AddDetailRequest is the payload for one appended line item.
type AddDetailRequest struct {
	PRDCode  string `json:"prd_code"`
	PRDName  string `json:"prd_name"`
	PRDPrice int64  `json:"prd_price"`
}

var (
	// ErrNotFound means the referenced transaction does not exist.
	ErrNotFound = errors.New("transaction not found")
	// ErrProductNotFound means a line's product code has no master entry.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidData covers malformed fields and integrity violations.
	ErrInvalidData = errors.New("invalid data")
	// ErrStoreUnavailable covers store connectivity failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)
