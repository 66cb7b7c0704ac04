package ledger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bayside-hms/bayside-hms/internal/finance/accounts"
	"github.com/bayside-hms/bayside-hms/internal/shared"
)

type memoryAccounts struct {
	items []accounts.Account
}

func (m *memoryAccounts) Get(ctx context.Context, id int64) (*accounts.Account, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: account %d", shared.ErrNotFound, id)
}

func (m *memoryAccounts) First(ctx context.Context) (*accounts.Account, error) {
	if len(m.items) == 0 {
		return nil, fmt.Errorf("%w: no accounts configured", shared.ErrNotFound)
	}
	return &m.items[0], nil
}

func (m *memoryAccounts) List(ctx context.Context) ([]accounts.Account, error) {
	return m.items, nil
}

func (m *memoryAccounts) Create(ctx context.Context, acc accounts.Account) (int64, error) {
	acc.ID = int64(len(m.items) + 1)
	m.items = append(m.items, acc)
	return acc.ID, nil
}

func (m *memoryAccounts) balance(id int64) float64 {
	for i := range m.items {
		if m.items[i].ID == id {
			return m.items[i].Balance
		}
	}
	return 0
}

func (m *memoryAccounts) adjust(id int64, delta float64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Balance += delta
			return nil
		}
	}
	return fmt.Errorf("%w: account %d", shared.ErrNotFound, id)
}

type memoryLedgerRepo struct {
	accounts *memoryAccounts
	txs      []Transaction
	nextID   int64
}

func (r *memoryLedgerRepo) Post(ctx context.Context, t Transaction, delta float64) (int64, error) {
	id, err := r.Insert(ctx, t)
	if err != nil {
		return 0, err
	}
	if delta != 0 {
		if err := r.accounts.adjust(t.AccountID, delta); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (r *memoryLedgerRepo) Insert(ctx context.Context, t Transaction) (int64, error) {
	if t.Reference == ReferenceBooking && t.ReferenceID != nil {
		for _, existing := range r.txs {
			if existing.Reference == ReferenceBooking && existing.ReferenceID != nil && *existing.ReferenceID == *t.ReferenceID {
				return 0, fmt.Errorf("%w: booking already posted", shared.ErrConflict)
			}
		}
	}
	r.nextID++
	t.ID = r.nextID
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	r.txs = append(r.txs, t)
	return t.ID, nil
}

func (r *memoryLedgerRepo) AdjustBalance(ctx context.Context, accountID int64, delta float64) error {
	return r.accounts.adjust(accountID, delta)
}

func (r *memoryLedgerRepo) Get(ctx context.Context, id int64) (*Transaction, error) {
	for i := range r.txs {
		if r.txs[i].ID == id {
			return &r.txs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: transaction %d", shared.ErrNotFound, id)
}

func (r *memoryLedgerRepo) List(ctx context.Context, req ListTransactionsRequest) ([]Transaction, int, error) {
	return r.txs, len(r.txs), nil
}

type memoryIdempotency struct {
	seen map[string]bool
}

func (m *memoryIdempotency) CheckAndInsert(ctx context.Context, key, module string) error {
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	composite := module + ":" + key
	if m.seen[composite] {
		return shared.ErrIdempotencyConflict
	}
	m.seen[composite] = true
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLedger(accs *memoryAccounts, opts Options) (*Ledger, *memoryLedgerRepo) {
	repo := &memoryLedgerRepo{accounts: accs}
	return NewLedger(testLogger(), repo, accs, opts), repo
}

func singleAccount() *memoryAccounts {
	return &memoryAccounts{items: []accounts.Account{
		{ID: 1, Name: "Main Till", Institution: "Salaam Bank", Type: accounts.TypeChecking},
	}}
}

func TestPostBalanceBookkeeping(t *testing.T) {
	accs := singleAccount()
	svc, repo := newTestLedger(accs, Options{})
	ctx := context.Background()

	_, err := svc.Post(ctx, PostingInput{Type: TypeIncome, Amount: 100, Description: "room revenue", AccountID: 1, Reference: ReferenceManual})
	require.NoError(t, err)
	_, err = svc.Post(ctx, PostingInput{Type: TypeExpense, Amount: 40, Description: "laundry supplier", AccountID: 1, Reference: ReferenceManual})
	require.NoError(t, err)

	require.InDelta(t, 60, accs.balance(1), 0.001)
	require.Len(t, repo.txs, 2)

	// Same movements in the opposite order land on the same balance.
	accs2 := singleAccount()
	svc2, _ := newTestLedger(accs2, Options{})
	_, err = svc2.Post(ctx, PostingInput{Type: TypeExpense, Amount: 40, Description: "laundry supplier", AccountID: 1, Reference: ReferenceManual})
	require.NoError(t, err)
	_, err = svc2.Post(ctx, PostingInput{Type: TypeIncome, Amount: 100, Description: "room revenue", AccountID: 1, Reference: ReferenceManual})
	require.NoError(t, err)
	require.InDelta(t, 60, accs2.balance(1), 0.001)
}

func TestPostUnknownTypeRecordsWithoutBalanceMove(t *testing.T) {
	accs := singleAccount()
	svc, repo := newTestLedger(accs, Options{})

	tx, err := svc.Post(context.Background(), PostingInput{Type: "Transfer", Amount: 500, Description: "between tills", AccountID: 1, Reference: ReferenceManual})
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.Len(t, repo.txs, 1)
	require.InDelta(t, 0, accs.balance(1), 0.001)
}

func TestLegacyAndAtomicPostingAgree(t *testing.T) {
	ctx := context.Background()
	post := func(svc *Ledger) {
		_, err := svc.Post(ctx, PostingInput{Type: TypeIncome, Amount: 250, Description: "checkout", AccountID: 1, Reference: ReferenceManual})
		require.NoError(t, err)
		_, err = svc.Post(ctx, PostingInput{Type: TypeExpense, Amount: 75, Description: "minibar restock", AccountID: 1, Reference: ReferenceManual})
		require.NoError(t, err)
	}

	atomicAccs := singleAccount()
	atomicSvc, atomicRepo := newTestLedger(atomicAccs, Options{})
	post(atomicSvc)

	legacyAccs := singleAccount()
	legacySvc, legacyRepo := newTestLedger(legacyAccs, Options{LegacyPosting: true})
	post(legacySvc)

	require.InDelta(t, atomicAccs.balance(1), legacyAccs.balance(1), 0.001)
	require.Equal(t, len(atomicRepo.txs), len(legacyRepo.txs))
}

func TestDefaultAccountResolution(t *testing.T) {
	accs := &memoryAccounts{items: []accounts.Account{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Second"},
	}}
	ctx := context.Background()

	svc, repo := newTestLedger(accs, Options{})
	_, err := svc.Post(ctx, PostingInput{Type: TypeIncome, Amount: 10, Description: "walk-in", Reference: ReferenceManual})
	require.NoError(t, err)
	require.Equal(t, int64(1), repo.txs[0].AccountID)

	pinned, pinnedRepo := newTestLedger(accs, Options{PrimaryAccountID: 2})
	_, err = pinned.Post(ctx, PostingInput{Type: TypeIncome, Amount: 10, Description: "walk-in", Reference: ReferenceManual})
	require.NoError(t, err)
	require.Equal(t, int64(2), pinnedRepo.txs[0].AccountID)
}

func TestPostWithoutAnyAccountIsSkipped(t *testing.T) {
	accs := &memoryAccounts{}
	svc, repo := newTestLedger(accs, Options{})

	tx, err := svc.Post(context.Background(), PostingInput{Type: TypeIncome, Amount: 90, Description: "checkout", Reference: ReferenceBooking})
	require.NoError(t, err)
	require.Nil(t, tx)
	require.Empty(t, repo.txs)
}

func TestCreateManualUnknownAccount(t *testing.T) {
	svc, _ := newTestLedger(singleAccount(), Options{})

	_, err := svc.CreateManual(context.Background(), CreateTransactionRequest{
		Type: "Income", Amount: 10, Description: "x", Account: 99, Reference: "Manual",
	}, "")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCreateManualIdempotency(t *testing.T) {
	accs := singleAccount()
	svc, repo := newTestLedger(accs, Options{Idempotency: &memoryIdempotency{}})
	ctx := context.Background()
	req := CreateTransactionRequest{Type: "Income", Amount: 25, Description: "deposit", Account: 1, Reference: "Manual"}
	key := "0d0bd0e6-52ed-4a3b-a0b2-dcd3b4b3d2ab"

	_, err := svc.CreateManual(ctx, req, key)
	require.NoError(t, err)

	_, err = svc.CreateManual(ctx, req, key)
	require.ErrorIs(t, err, shared.ErrConflict)
	require.Len(t, repo.txs, 1)
	require.InDelta(t, 25, accs.balance(1), 0.001)
}
