// repository/request/repo.go
package requestrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookexchange/model"
	"bookexchange/util/database"
)

type Repo interface {
	Insert(ctx context.Context, r *model.Request) error
	List(ctx context.Context) ([]model.Request, error)
	ListByParticipant(ctx context.Context, userID string) ([]model.Request, error)
	Get(ctx context.Context, id string) (*model.Request, error)
	Delete(ctx context.Context, id string) error

	// Transactional accept flow
	GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*model.Request, error)
	SetStatus(ctx context.Context, tx pgx.Tx, id string, status model.RequestStatus) error
	InsertTransaction(ctx context.Context, tx pgx.Tx, t *model.Transaction) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db: db} }

const requestCols = `id, requester_id, counterparty_id, book_id, status, delivery_method, duration, negotiated_terms, requested_at`

func (r *repo) Insert(ctx context.Context, req *model.Request) error {
	const q = `
		INSERT INTO requests (id, requester_id, counterparty_id, book_id, status, delivery_method, duration, negotiated_terms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING requested_at`
	err := r.db.Pool.QueryRow(ctx, q,
		req.ID, req.RequesterID, req.CounterpartyID, req.BookID,
		req.Status, req.DeliveryMethod, req.Duration, req.NegotiatedTerms,
	).Scan(&req.RequestedAt)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

func (r *repo) List(ctx context.Context) ([]model.Request, error) {
	const q = `SELECT ` + requestCols + ` FROM requests ORDER BY requested_at, id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *repo) ListByParticipant(ctx context.Context, userID string) ([]model.Request, error) {
	const q = `
		SELECT ` + requestCols + `
		FROM requests
		WHERE requester_id = $1 OR counterparty_id = $1
		ORDER BY requested_at, id`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests for user: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *repo) Get(ctx context.Context, id string) (*model.Request, error) {
	const q = `SELECT ` + requestCols + ` FROM requests WHERE id = $1`
	return scanRequestRow(r.db.Pool.QueryRow(ctx, q, id))
}

func (r *repo) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*model.Request, error) {
	const q = `SELECT ` + requestCols + ` FROM requests WHERE id = $1 FOR UPDATE`
	return scanRequestRow(tx.QueryRow(ctx, q, id))
}

func (r *repo) SetStatus(ctx context.Context, tx pgx.Tx, id string, status model.RequestStatus) error {
	const q = `UPDATE requests SET status = $2 WHERE id = $1`
	if _, err := tx.Exec(ctx, q, id, status); err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	return nil
}

func (r *repo) InsertTransaction(ctx context.Context, tx pgx.Tx, t *model.Transaction) error {
	const q = `
		INSERT INTO transactions (id, request_id, owner_id, book_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`
	err := tx.QueryRow(ctx, q, t.ID, t.RequestID, t.OwnerID, t.BookID, t.Status).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM requests WHERE id = $1`
	res, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanRequestRow(row pgx.Row) (*model.Request, error) {
	var req model.Request
	err := row.Scan(
		&req.ID, &req.RequesterID, &req.CounterpartyID, &req.BookID,
		&req.Status, &req.DeliveryMethod, &req.Duration, &req.NegotiatedTerms,
		&req.RequestedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func scanRequests(rows pgx.Rows) ([]model.Request, error) {
	var out []model.Request
	for rows.Next() {
		var req model.Request
		if err := rows.Scan(
			&req.ID, &req.RequesterID, &req.CounterpartyID, &req.BookID,
			&req.Status, &req.DeliveryMethod, &req.Duration, &req.NegotiatedTerms,
			&req.RequestedAt,
		); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
