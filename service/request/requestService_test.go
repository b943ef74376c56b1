// service/request/request_service_test.go
package request

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"bookexchange/model"
)

type repoMock struct {
	insertFn            func(ctx context.Context, r *model.Request) error
	listFn              func(ctx context.Context) ([]model.Request, error)
	listByParticipantFn func(ctx context.Context, userID string) ([]model.Request, error)
	getFn               func(ctx context.Context, id string) (*model.Request, error)
	deleteFn            func(ctx context.Context, id string) error
	getForUpdateFn      func(ctx context.Context, tx pgx.Tx, id string) (*model.Request, error)
	setStatusFn         func(ctx context.Context, tx pgx.Tx, id string, status model.RequestStatus) error
	insertTxnFn         func(ctx context.Context, tx pgx.Tx, t *model.Transaction) error
}

var _ Repo = (*repoMock)(nil)

func (m *repoMock) Insert(ctx context.Context, r *model.Request) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, r)
}
func (m *repoMock) List(ctx context.Context) ([]model.Request, error) { return m.listFn(ctx) }
func (m *repoMock) ListByParticipant(ctx context.Context, userID string) ([]model.Request, error) {
	return m.listByParticipantFn(ctx, userID)
}
func (m *repoMock) Get(ctx context.Context, id string) (*model.Request, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) Delete(ctx context.Context, id string) error { return m.deleteFn(ctx, id) }
func (m *repoMock) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*model.Request, error) {
	return m.getForUpdateFn(ctx, tx, id)
}
func (m *repoMock) SetStatus(ctx context.Context, tx pgx.Tx, id string, status model.RequestStatus) error {
	if m.setStatusFn == nil {
		return nil
	}
	return m.setStatusFn(ctx, tx, id, status)
}
func (m *repoMock) InsertTransaction(ctx context.Context, tx pgx.Tx, t *model.Transaction) error {
	if m.insertTxnFn == nil {
		return nil
	}
	return m.insertTxnFn(ctx, tx, t)
}

// fakeTx satisfies pgx.Tx through embedding; only Commit/Rollback are real.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(ctx context.Context) error   { f.committed = true; return nil }
func (f *fakeTx) Rollback(ctx context.Context) error { f.rolledBack = true; return nil }

type fakeDB struct{ tx *fakeTx }

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return f.tx, nil }

func validInput() CreateInput {
	return CreateInput{
		RequesterID:    "u1",
		CounterpartyID: "u2",
		BookID:         "b1",
		DeliveryMethod: "In-person",
		Duration:       7,
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := New(&fakeDB{}, &repoMock{})
	ctx := context.Background()

	for name, mutate := range map[string]func(*CreateInput){
		"missing requester": func(in *CreateInput) { in.RequesterID = "" },
		"missing book":      func(in *CreateInput) { in.BookID = "" },
		"missing delivery":  func(in *CreateInput) { in.DeliveryMethod = "" },
		"zero duration":     func(in *CreateInput) { in.Duration = 0 },
		"unknown delivery":  func(in *CreateInput) { in.DeliveryMethod = "Teleport" },
	} {
		in := validInput()
		mutate(&in)
		_, err := svc.Create(ctx, in)
		require.Error(t, err, name)
		require.Equal(t, ErrBadInput, Code(err), name)
	}
}

func TestCreate_Success(t *testing.T) {
	var stored *model.Request
	m := &repoMock{
		insertFn: func(ctx context.Context, r *model.Request) error {
			stored = r
			return nil
		},
	}
	svc := New(&fakeDB{}, m)

	out, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEmpty(t, out.ID)
	require.Equal(t, model.RequestPending, out.Status)
	require.Equal(t, "u1", out.RequesterID)
	require.Equal(t, "u2", out.CounterpartyID)
	require.Equal(t, model.DeliveryInPerson, out.DeliveryMethod)
	require.Same(t, stored, out)
}

func TestCreate_OptionalCounterparty(t *testing.T) {
	svc := New(&fakeDB{}, &repoMock{})
	in := validInput()
	in.CounterpartyID = ""

	out, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Empty(t, out.CounterpartyID)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	began := false
	db := &fakeDB{tx: &fakeTx{}}
	m := &repoMock{
		getForUpdateFn: func(ctx context.Context, tx pgx.Tx, id string) (*model.Request, error) {
			began = true
			return nil, pgx.ErrNoRows
		},
	}
	svc := New(db, m)

	_, err := svc.UpdateStatus(context.Background(), "r1", "Bogus")
	require.Error(t, err)
	require.Equal(t, ErrBadStatus, Code(err))
	require.False(t, began, "invalid status must be rejected before touching the store")

	// Modified is a stored state but not an allowed transition input.
	_, err = svc.UpdateStatus(context.Background(), "r1", model.RequestModified)
	require.Equal(t, ErrBadStatus, Code(err))
}

func TestUpdateStatus_NotFound(t *testing.T) {
	tx := &fakeTx{}
	m := &repoMock{
		getForUpdateFn: func(ctx context.Context, txx pgx.Tx, id string) (*model.Request, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := New(&fakeDB{tx: tx}, m)

	_, err := svc.UpdateStatus(context.Background(), "missing", model.RequestAccepted)
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
	require.True(t, tx.rolledBack)
	require.False(t, tx.committed)
}

func TestUpdateStatus_AcceptSpawnsTransaction(t *testing.T) {
	tx := &fakeTx{}
	var created []*model.Transaction
	m := &repoMock{
		getForUpdateFn: func(ctx context.Context, txx pgx.Tx, id string) (*model.Request, error) {
			return &model.Request{
				ID:             id,
				RequesterID:    "u1",
				CounterpartyID: "u2",
				BookID:         "b1",
				Status:         model.RequestPending,
			}, nil
		},
		insertTxnFn: func(ctx context.Context, txx pgx.Tx, tr *model.Transaction) error {
			created = append(created, tr)
			return nil
		},
	}
	svc := New(&fakeDB{tx: tx}, m)

	out, err := svc.UpdateStatus(context.Background(), "r1", model.RequestAccepted)
	require.NoError(t, err)
	require.Equal(t, model.RequestAccepted, out.Status)
	require.True(t, tx.committed)

	require.Len(t, created, 1)
	txn := created[0]
	require.NotEmpty(t, txn.ID)
	require.Equal(t, "r1", txn.RequestID)
	require.Equal(t, "u2", txn.OwnerID)
	require.Equal(t, "b1", txn.BookID)
	require.Equal(t, model.TxnPending, txn.Status)
}

func TestUpdateStatus_AcceptIsIdempotent(t *testing.T) {
	tx := &fakeTx{}
	inserts := 0
	m := &repoMock{
		getForUpdateFn: func(ctx context.Context, txx pgx.Tx, id string) (*model.Request, error) {
			return &model.Request{ID: id, CounterpartyID: "u2", BookID: "b1", Status: model.RequestAccepted}, nil
		},
		insertTxnFn: func(ctx context.Context, txx pgx.Tx, tr *model.Transaction) error {
			inserts++
			return nil
		},
	}
	svc := New(&fakeDB{tx: tx}, m)

	out, err := svc.UpdateStatus(context.Background(), "r1", model.RequestAccepted)
	require.NoError(t, err)
	require.Equal(t, model.RequestAccepted, out.Status)
	require.Zero(t, inserts, "re-accepting must not open a second transaction")
	require.True(t, tx.committed)
}

func TestUpdateStatus_RejectDoesNotSpawn(t *testing.T) {
	tx := &fakeTx{}
	inserts := 0
	m := &repoMock{
		getForUpdateFn: func(ctx context.Context, txx pgx.Tx, id string) (*model.Request, error) {
			return &model.Request{ID: id, CounterpartyID: "u2", BookID: "b1", Status: model.RequestPending}, nil
		},
		insertTxnFn: func(ctx context.Context, txx pgx.Tx, tr *model.Transaction) error {
			inserts++
			return nil
		},
	}
	svc := New(&fakeDB{tx: tx}, m)

	out, err := svc.UpdateStatus(context.Background(), "r1", model.RequestRejected)
	require.NoError(t, err)
	require.Equal(t, model.RequestRejected, out.Status)
	require.Zero(t, inserts)
}

func TestListForUser_PassesUserThrough(t *testing.T) {
	m := &repoMock{
		listByParticipantFn: func(ctx context.Context, userID string) ([]model.Request, error) {
			require.Equal(t, "u2", userID)
			return []model.Request{{ID: "r1", RequesterID: "u1", CounterpartyID: "u2"}}, nil
		},
	}
	svc := New(&fakeDB{}, m)

	rows, err := svc.ListForUser(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.True(t, rows[0].IsParticipant("u2"))
}

func TestGet_NotFound(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id string) (*model.Request, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := New(&fakeDB{}, m)

	_, err := svc.Get(context.Background(), "nope")
	require.Equal(t, ErrNotFound, Code(err))
}

func TestDelete_NotFound(t *testing.T) {
	m := &repoMock{
		deleteFn: func(ctx context.Context, id string) error { return pgx.ErrNoRows },
	}
	svc := New(&fakeDB{}, m)

	err := svc.Delete(context.Background(), "nope")
	require.Equal(t, ErrNotFound, Code(err))
}
