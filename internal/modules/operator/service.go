package operator

import (
	"context"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Service defines operator provisioning logic.
type Service interface {
	Provision(ctx context.Context, code, name, password string) (*Operator, error)
}

type service struct {
	repo Repository
}

// NewService creates a new operator service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Provision(ctx context.Context, code, name, password string) (*Operator, error) {
	switch {
	case code == "":
		return nil, fmt.Errorf("emp_cd is required")
	case utf8.RuneCountInString(code) > 10:
		return nil, fmt.Errorf("emp_cd must be at most 10 characters")
	case name == "":
		return nil, fmt.Errorf("name is required")
	case utf8.RuneCountInString(name) > 50:
		return nil, fmt.Errorf("name must be at most 50 characters")
	case password == "":
		return nil, fmt.Errorf("password is required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	op := &Operator{
		Code:         code,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.Save(ctx, op); err != nil {
		return nil, err
	}

	return op, nil
}
