package operator

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	byCode map[string]*Operator
	saves  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byCode: make(map[string]*Operator)}
}

func (f *fakeRepo) Save(ctx context.Context, op *Operator) error {
	f.saves++
	f.byCode[op.Code] = op
	return nil
}

func (f *fakeRepo) GetByCode(ctx context.Context, code string) (*Operator, error) {
	op, ok := f.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	return op, nil
}

func TestProvision_StoresVerifiableHash(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	op, err := svc.Provision(context.Background(), "E001", "堀江", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.saves != 1 {
		t.Fatalf("expected one save, got %d", repo.saves)
	}
	if op.PasswordHash == "hunter2" {
		t.Fatal("password must not be stored in the clear")
	}
	stored, err := repo.GetByCode(context.Background(), "E001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestProvision_ReplacesExistingOperator(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if _, err := svc.Provision(context.Background(), "E001", "堀江", "hunter2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Provision(context.Background(), "E001", "堀江", "rotated"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.GetByCode(context.Background(), "E001")
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rotated")); err != nil {
		t.Errorf("re-provisioning must replace the hash: %v", err)
	}
}

func TestProvision_Validation(t *testing.T) {
	cases := []struct {
		name                 string
		code, opName, passwd string
	}{
		{"missing code", "", "堀江", "hunter2"},
		{"code too long", "E0123456789", "堀江", "hunter2"},
		{"missing name", "E001", "", "hunter2"},
		{"missing password", "E001", "堀江", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo)

			if _, err := svc.Provision(context.Background(), tc.code, tc.opName, tc.passwd); err == nil {
				t.Error("expected an error")
			}
			if repo.saves != 0 {
				t.Error("invalid input must not reach the store")
			}
		})
	}
}
