// repository/transaction/repo.go
package transactionrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookexchange/model"
	"bookexchange/util/database"
)

type Repo interface {
	RequestExists(ctx context.Context, requestID string) (bool, error)
	Insert(ctx context.Context, t *model.Transaction) error
	List(ctx context.Context) ([]model.Transaction, error)
	Get(ctx context.Context, id string) (*model.Transaction, error)
	GetByRequestID(ctx context.Context, requestID string) (*model.Transaction, error)
	Update(ctx context.Context, t *model.Transaction) error
	Delete(ctx context.Context, id string) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db: db} }

const txnCols = `id, request_id, owner_id, book_id, status, created_at, book_returned_at`

func (r *repo) RequestExists(ctx context.Context, requestID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`
	var exists bool
	if err := r.db.Pool.QueryRow(ctx, q, requestID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check request exists: %w", err)
	}
	return exists, nil
}

func (r *repo) Insert(ctx context.Context, t *model.Transaction) error {
	const q = `
		INSERT INTO transactions (id, request_id, owner_id, book_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`
	err := r.db.Pool.QueryRow(ctx, q, t.ID, t.RequestID, t.OwnerID, t.BookID, t.Status).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *repo) List(ctx context.Context) ([]model.Transaction, error) {
	const q = `SELECT ` + txnCols + ` FROM transactions ORDER BY created_at, id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(
			&t.ID, &t.RequestID, &t.OwnerID, &t.BookID,
			&t.Status, &t.CreatedAt, &t.BookReturnedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *repo) Get(ctx context.Context, id string) (*model.Transaction, error) {
	const q = `SELECT ` + txnCols + ` FROM transactions WHERE id = $1`
	return scanTxnRow(r.db.Pool.QueryRow(ctx, q, id))
}

func (r *repo) GetByRequestID(ctx context.Context, requestID string) (*model.Transaction, error) {
	const q = `
		SELECT ` + txnCols + `
		FROM transactions
		WHERE request_id = $1
		ORDER BY created_at, id
		LIMIT 1`
	return scanTxnRow(r.db.Pool.QueryRow(ctx, q, requestID))
}

func (r *repo) Update(ctx context.Context, t *model.Transaction) error {
	const q = `
		UPDATE transactions
		SET status = $2, book_returned_at = $3
		WHERE id = $1`
	res, err := r.db.Pool.Exec(ctx, q, t.ID, t.Status, t.BookReturnedAt)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM transactions WHERE id = $1`
	res, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanTxnRow(row pgx.Row) (*model.Transaction, error) {
	var t model.Transaction
	err := row.Scan(
		&t.ID, &t.RequestID, &t.OwnerID, &t.BookID,
		&t.Status, &t.CreatedAt, &t.BookReturnedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
