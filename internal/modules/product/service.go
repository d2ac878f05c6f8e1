package product

import (
	"context"
	"unicode/utf8"
)

// Service defines product master business logic.
type Service interface {
	GetProductByCode(ctx context.Context, code string) (*Product, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetProductByCode(ctx context.Context, code string) (*Product, error) {
	// Codes are opaque identifiers up to 13 chars; anything longer can
	// never match the master, so it is simply not found.
	if code == "" || utf8.RuneCountInString(code) > 13 {
		return nil, ErrNotFound
	}
	return s.repo.GetByCode(ctx, code)
}
