package request

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookexchange/model"
)

// errors used by controllers

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

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

type CreateInput struct {
	RequesterID     string
	CounterpartyID  string
	BookID          string
	DeliveryMethod  string
	Duration        int
	NegotiatedTerms string
}

type Repo interface {
	Insert(ctx context.Context, r *model.Request) error
	List(ctx context.Context) ([]model.Request, error)
	ListByParticipant(ctx context.Context, userID string) ([]model.Request, error)
	Get(ctx context.Context, id string) (*model.Request, error)
	Delete(ctx context.Context, id string) error

	GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*model.Request, error)
	SetStatus(ctx context.Context, tx pgx.Tx, id string, status model.RequestStatus) error
	InsertTransaction(ctx context.Context, tx pgx.Tx, t *model.Transaction) error
}

// TxStarter is the slice of pgxpool.Pool the accept flow needs.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Service interface {
	// Create: validate and persist a new exchange request (status Pending).
	Create(ctx context.Context, in CreateInput) (*model.Request, error)

	// List / ListForUser / Get: read side.
	List(ctx context.Context) ([]model.Request, error)
	ListForUser(ctx context.Context, userID string) ([]model.Request, error)
	Get(ctx context.Context, id string) (*model.Request, error)

	// UpdateStatus: transition the request; Accepted opens a transaction.
	UpdateStatus(ctx context.Context, id string, status model.RequestStatus) (*model.Request, error)

	Delete(ctx context.Context, id string) error
}

// ----- Service implementation -----

type service struct {
	db TxStarter
	r  Repo
}

func New(db TxStarter, r Repo) Service { return &service{db: db, r: r} }

func (s *service) Create(ctx context.Context, in CreateInput) (*model.Request, error) {
	if in.RequesterID == "" || in.BookID == "" || in.DeliveryMethod == "" || in.Duration <= 0 {
		return nil, makeErr(ErrBadInput)
	}
	method := model.DeliveryMethod(in.DeliveryMethod)
	if !method.Valid() {
		return nil, makeErr(ErrBadInput)
	}

	req := &model.Request{
		ID:              uuid.NewString(),
		RequesterID:     in.RequesterID,
		CounterpartyID:  in.CounterpartyID,
		BookID:          in.BookID,
		Status:          model.RequestPending,
		DeliveryMethod:  method,
		Duration:        in.Duration,
		NegotiatedTerms: in.NegotiatedTerms,
	}
	if err := s.r.Insert(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) List(ctx context.Context) ([]model.Request, error) {
	return s.r.List(ctx)
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]model.Request, error) {
	return s.r.ListByParticipant(ctx, userID)
}

func (s *service) Get(ctx context.Context, id string) (*model.Request, error) {
	req, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return req, nil
}

// UpdateStatus applies a caller-driven transition. Accepting a request opens
// exactly one transaction for it: the request row is locked for the duration,
// and a request that is already Accepted does not spawn a second transaction.
func (s *service) UpdateStatus(ctx context.Context, id string, status model.RequestStatus) (req *model.Request, err error) {
	switch status {
	case model.RequestPending, model.RequestAccepted, model.RequestRejected:
	default:
		return nil, makeErr(ErrBadStatus)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	req, err = s.r.GetForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}

	if err = s.r.SetStatus(ctx, tx, id, status); err != nil {
		return nil, err
	}

	if status == model.RequestAccepted && req.Status != model.RequestAccepted {
		t := &model.Transaction{
			ID:        uuid.NewString(),
			RequestID: req.ID,
			OwnerID:   req.CounterpartyID,
			BookID:    req.BookID,
			Status:    model.TxnPending,
		}
		if err = s.r.InsertTransaction(ctx, tx, t); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	req.Status = status
	return req, nil
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
