package transaction

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"
)

// Service defines sale transaction business logic.
type Service interface {
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error)
	GetTransaction(ctx context.Context, trdID int64) (*Transaction, error)
	AddDetails(ctx context.Context, trdID int64, reqs []AddDetailRequest) ([]*Detail, error)
}

// Receipts are stamped in store-local time. A fixed zone avoids a tzdata
// lookup on every request.
var jst = time.FixedZone("JST", 9*60*60)

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error) {
	if err := validateHeader(req); err != nil {
		return nil, err
	}

	t := &Transaction{
		TransactionDateTime: time.Now().In(jst),
		EmpCD:               req.EmpCD,
		StoreCD:             req.StoreCD,
		POSNo:               req.POSNo,
		TotalAmt:            req.TotalAmt,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetTransaction(ctx context.Context, trdID int64) (*Transaction, error) {
	return s.repo.GetByID(ctx, trdID)
}

func (s *service) AddDetails(ctx context.Context, trdID int64, reqs []AddDetailRequest) ([]*Detail, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: at least one detail is required", ErrInvalidData)
	}

	lines := make([]Line, 0, len(reqs))
	for i, req := range reqs {
		if err := validateDetail(i, req); err != nil {
			return nil, err
		}
		lines = append(lines, Line{
			PRDCode:  req.PRDCode,
			PRDName:  req.PRDName,
			PRDPrice: req.PRDPrice,
		})
	}

	// The whole batch goes down in one repository call so it commits or
	// rolls back as a unit.
	return s.repo.AddDetails(ctx, trdID, lines)
}

// Length limits mirror the varchar(N) columns, which postgres counts in
// characters, so validation counts runes, not bytes.
func validateHeader(req CreateTransactionRequest) error {
	switch {
	case req.EmpCD == "":
		return fmt.Errorf("%w: emp_cd is required", ErrInvalidData)
	case utf8.RuneCountInString(req.EmpCD) > 10:
		return fmt.Errorf("%w: emp_cd must be at most 10 characters", ErrInvalidData)
	case req.StoreCD == "":
		return fmt.Errorf("%w: store_cd is required", ErrInvalidData)
	case utf8.RuneCountInString(req.StoreCD) > 5:
		return fmt.Errorf("%w: store_cd must be at most 5 characters", ErrInvalidData)
	case req.POSNo == "":
		return fmt.Errorf("%w: pos_no is required", ErrInvalidData)
	case utf8.RuneCountInString(req.POSNo) > 3:
		return fmt.Errorf("%w: pos_no must be at most 3 characters", ErrInvalidData)
	case req.TotalAmt < 0:
		return fmt.Errorf("%w: total_amt cannot be negative", ErrInvalidData)
	}
	return nil
}

func validateDetail(i int, req AddDetailRequest) error {
	switch {
	case req.PRDCode == "":
		return fmt.Errorf("%w: detail %d: prd_code is required", ErrInvalidData, i)
	case utf8.RuneCountInString(req.PRDCode) > 13:
		return fmt.Errorf("%w: detail %d: prd_code must be at most 13 characters", ErrInvalidData, i)
	case req.PRDName == "":
		return fmt.Errorf("%w: detail %d: prd_name is required", ErrInvalidData, i)
	case utf8.RuneCountInString(req.PRDName) > 50:
		return fmt.Errorf("%w: detail %d: prd_name must be at most 50 characters", ErrInvalidData, i)
	case req.PRDPrice < 0:
		return fmt.Errorf("%w: detail %d: prd_price cannot be negative", ErrInvalidData, i)
	}
	return nil
}
