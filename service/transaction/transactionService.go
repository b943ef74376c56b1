package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookexchange/model"
)

type ErrCode string

const (
	ErrBadInput  ErrCode = "BAD_INPUT"
	ErrBadStatus ErrCode = "INVALID_STATUS"
	ErrNotFound  ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type CreateInput struct {
	RequestID string
	OwnerID   string
	BookID    string
	Status    string // optional, defaults to Pending
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Status         *string
	BookReturnedAt *time.Time
}

type Repo interface {
	RequestExists(ctx context.Context, requestID string) (bool, error)
	Insert(ctx context.Context, t *model.Transaction) error
	List(ctx context.Context) ([]model.Transaction, error)
	Get(ctx context.Context, id string) (*model.Transaction, error)
	GetByRequestID(ctx context.Context, requestID string) (*model.Transaction, error)
	Update(ctx context.Context, t *model.Transaction) error
	Delete(ctx context.Context, id string) error
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
	Get(ctx context.Context, id string) (*model.Transaction, error)
	GetByRequestID(ctx context.Context, requestID string) (*model.Transaction, error)
	Update(ctx context.Context, id string, in UpdateInput) (*model.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, in CreateInput) (*model.Transaction, error) {
	if in.RequestID == "" || in.OwnerID == "" || in.BookID == "" {
		return nil, makeErr(ErrBadInput)
	}
	status := model.TxnPending
	if in.Status != "" {
		status = model.TransactionStatus(in.Status)
		if !status.Valid() {
			return nil, makeErr(ErrBadStatus)
		}
	}

	exists, err := s.r.RequestExists(ctx, in.RequestID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, makeErr(ErrNotFound)
	}

	t := &model.Transaction{
		ID:        uuid.NewString(),
		RequestID: in.RequestID,
		OwnerID:   in.OwnerID,
		BookID:    in.BookID,
		Status:    status,
	}
	if err := s.r.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) List(ctx context.Context) ([]model.Transaction, error) {
	return s.r.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*model.Transaction, error) {
	t, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (s *service) GetByRequestID(ctx context.Context, requestID string) (*model.Transaction, error) {
	t, err := s.r.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// Update applies a partial update. Status values are checked against the enum,
// but no ordering between them is enforced: delivery progress is caller-driven.
func (s *service) Update(ctx context.Context, id string, in UpdateInput) (*model.Transaction, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		status := model.TransactionStatus(*in.Status)
		if !status.Valid() {
			return nil, makeErr(ErrBadStatus)
		}
		t.Status = status
	}
	if in.BookReturnedAt != nil {
		t.BookReturnedAt = in.BookReturnedAt
	}

	if err := s.r.Update(ctx, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	return nil
}
