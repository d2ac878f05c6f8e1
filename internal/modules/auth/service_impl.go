package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/mhorie/pos-backend/internal/modules/operator"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	operatorRepo operator.Repository
	jwtKey       []byte
}

// NewService creates a new auth service signing tokens with jwtKey.
func NewService(operatorRepo operator.Repository, jwtKey []byte) Service {
	return &service{operatorRepo: operatorRepo, jwtKey: jwtKey}
}

func (s *service) Login(ctx context.Context, empCD, password string) (string, error) {
	op, err := s.operatorRepo.GetByCode(ctx, empCD)
	if err != nil {
		if errors.Is(err, operator.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := &jwt.StandardClaims{
		Id:        uuid.New().String(),
		Subject:   op.Code,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
