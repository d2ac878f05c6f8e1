package operator

import (
	"errors"
	"time"
)

// Operator is a register operator allowed to sign in to the POS frontend.
// Operators are provisioned administratively (see cmd/migrate).
type Operator struct {
	Code         string    `json:"emp_cd"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ErrNotFound is returned when no operator matches the given code.
var ErrNotFound = errors.New("operator not found")
