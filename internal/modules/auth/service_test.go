package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/mhorie/pos-backend/internal/modules/operator"
	"golang.org/x/crypto/bcrypt"
)

type fakeOperatorRepo struct {
	byCode map[string]*operator.Operator
}

func (f *fakeOperatorRepo) Save(ctx context.Context, op *operator.Operator) error {
	f.byCode[op.Code] = op
	return nil
}

func (f *fakeOperatorRepo) GetByCode(ctx context.Context, code string) (*operator.Operator, error) {
	op, ok := f.byCode[code]
	if !ok {
		return nil, operator.ErrNotFound
	}
	return op, nil
}

func seededRepo(t *testing.T) *fakeOperatorRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &fakeOperatorRepo{byCode: map[string]*operator.Operator{
		"E001": {Code: "E001", Name: "堀江", PasswordHash: string(hash)},
	}}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	key := []byte("test-secret")
	svc := NewService(seededRepo(t), key)

	tokenString, err := svc.Login(context.Background(), "E001", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Subject != "E001" {
		t.Errorf("expected subject E001, got %q", claims.Subject)
	}
	if claims.Id == "" {
		t.Error("expected a jti claim")
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("expected a future expiry")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(seededRepo(t), []byte("test-secret"))

	if _, err := svc.Login(context.Background(), "E001", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownOperator(t *testing.T) {
	svc := NewService(seededRepo(t), []byte("test-secret"))

	if _, err := svc.Login(context.Background(), "E999", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
