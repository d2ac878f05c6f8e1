package transaction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, t *Transaction) error {
	// Insert and key retrieval are a single statement, so a failure
	// leaves no partial row behind.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO transactions (transaction_datetime, emp_cd, store_cd, pos_no, total_amt)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING trd_id`,
		t.TransactionDateTime, t.EmpCD, t.StoreCD, t.POSNo, t.TotalAmt).
		Scan(&t.TRDID)
	if err != nil {
		return classify(err)
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, trdID int64) (*Transaction, error) {
	t := &Transaction{}
	err := r.db.QueryRowContext(ctx, `
		SELECT trd_id, transaction_datetime, emp_cd, store_cd, pos_no, total_amt
		FROM transactions WHERE trd_id=$1`, trdID).
		Scan(&t.TRDID, &t.TransactionDateTime, &t.EmpCD, &t.StoreCD, &t.POSNo, &t.TotalAmt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify(err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT dtl_id, trd_id, prd_id, prd_code, prd_name, prd_price
		FROM transaction_details WHERE trd_id=$1 ORDER BY dtl_id ASC`, trdID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()
	for rows.Next() {
		d := &Detail{}
		if err := rows.Scan(&d.DTLID, &d.TRDID, &d.PRDID, &d.PRDCode, &d.PRDName, &d.PRDPrice); err != nil {
			return nil, classify(err)
		}
		t.Details = append(t.Details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return t, nil
}

// AddDetails appends the whole batch inside one transaction. The header
// row is locked first so concurrent appends to the same sale serialize,
// and the total moves by a single atomic increment.
func (r *postgresRepo) AddDetails(ctx context.Context, trdID int64, lines []Line) ([]*Detail, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, classify(err)
	}
	defer tx.Rollback()

	var locked int64
	err = tx.QueryRowContext(ctx,
		`SELECT trd_id FROM transactions WHERE trd_id=$1 FOR UPDATE`, trdID).
		Scan(&locked)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify(err)
	}

	details := make([]*Detail, 0, len(lines))
	var batchTotal int64
	for _, line := range lines {
		var prdID int64
		err = tx.QueryRowContext(ctx,
			`SELECT prd_id FROM products WHERE code=$1`, line.PRDCode).
			Scan(&prdID)
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: code %s", ErrProductNotFound, line.PRDCode)
		}
		if err != nil {
			return nil, classify(err)
		}

		d := &Detail{
			TRDID:    trdID,
			PRDID:    prdID,
			PRDCode:  line.PRDCode,
			PRDName:  line.PRDName,
			PRDPrice: line.PRDPrice,
		}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO transaction_details (trd_id, prd_id, prd_code, prd_name, prd_price)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING dtl_id`,
			d.TRDID, d.PRDID, d.PRDCode, d.PRDName, d.PRDPrice).
			Scan(&d.DTLID)
		if err != nil {
			return nil, classify(err)
		}
		details = append(details, d)
		batchTotal += line.PRDPrice
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE transactions SET total_amt = total_amt + $1 WHERE trd_id=$2`,
		batchTotal, trdID)
	if err != nil {
		return nil, classify(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, classify(err)
	}
	return details, nil
}

// classify maps driver errors onto the module's error taxonomy so the
// handler never has to look at raw postgres state.
func classify(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code.Class() {
		case "22", "23": // data exception, integrity constraint violation
			return fmt.Errorf("%w: %s", ErrInvalidData, pqErr.Code.Name())
		case "08": // connection exception
			return fmt.Errorf("%w: %s", ErrStoreUnavailable, pqErr.Code.Name())
		}
	}
	return err
}
