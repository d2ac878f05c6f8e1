package product

import (
	"context"
	"errors"
	"testing"
)

type fakeRepo struct {
	byCode map[string]*Product
	calls  int
}

func (f *fakeRepo) GetByCode(ctx context.Context, code string) (*Product, error) {
	f.calls++
	p, ok := f.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func TestGetProductByCode(t *testing.T) {
	repo := &fakeRepo{byCode: map[string]*Product{
		"4987035535409": {PRDID: 101, Code: "4987035535409", Name: "ポカリスエット", Price: 170},
	}}
	svc := NewService(repo)

	p, err := svc.GetProductByCode(context.Background(), "4987035535409")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Code != "4987035535409" || p.Price != 170 {
		t.Errorf("unexpected product: %+v", p)
	}

	if _, err := svc.GetProductByCode(context.Background(), "4900000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetProductByCode_OverlongCodeSkipsStore(t *testing.T) {
	repo := &fakeRepo{byCode: map[string]*Product{}}
	svc := NewService(repo)

	// 14 chars can never match a 13-char code column.
	if _, err := svc.GetProductByCode(context.Background(), "49870355354091"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if repo.calls != 0 {
		t.Error("overlong code must not reach the store")
	}
}
