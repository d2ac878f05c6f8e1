package auth

import (
	"context"
	"errors"
)

// Service defines the interface for operator authentication.
type Service interface {
	Login(ctx context.Context, empCD, password string) (string, error)
}

// ErrInvalidCredentials is returned for an unknown operator code or a
// wrong password alike, so callers cannot probe which codes exist.
var ErrInvalidCredentials = errors.New("invalid credentials")
