package receipts

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bayside-hms/bayside-hms/internal/bookings"
	"github.com/bayside-hms/bayside-hms/internal/customers"
	"github.com/bayside-hms/bayside-hms/internal/finance/accounts"
	"github.com/bayside-hms/bayside-hms/internal/shared"
)

type memoryReceipts struct {
	items   []Receipt
	counter int64
	nextID  int64
}

func (m *memoryReceipts) Get(ctx context.Context, id int64) (*Receipt, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: receipt %d", shared.ErrNotFound, id)
}

func (m *memoryReceipts) List(ctx context.Context, req ListReceiptsRequest) ([]Receipt, int, error) {
	return m.items, len(m.items), nil
}

func (m *memoryReceipts) Create(ctx context.Context, rc Receipt) (int64, error) {
	for _, existing := range m.items {
		if existing.ReceiptNumber == rc.ReceiptNumber {
			return 0, fmt.Errorf("%w: receipt number already in use", shared.ErrDuplicate)
		}
	}
	m.nextID++
	rc.ID = m.nextID
	m.items = append(m.items, rc)
	return rc.ID, nil
}

func (m *memoryReceipts) NextNumber(ctx context.Context) (int64, error) {
	m.counter++
	return m.counter, nil
}

type memoryCustomers struct{ ids map[int64]bool }

func (m *memoryCustomers) Get(ctx context.Context, id int64) (*customers.Customer, error) {
	if m.ids[id] {
		return &customers.Customer{ID: id}, nil
	}
	return nil, fmt.Errorf("%w: customer %d", shared.ErrNotFound, id)
}

func (m *memoryCustomers) List(ctx context.Context, req customers.ListCustomersRequest) ([]customers.Customer, int, error) {
	return nil, 0, nil
}

func (m *memoryCustomers) Create(ctx context.Context, c customers.Customer) (int64, error) {
	return 0, nil
}

func (m *memoryCustomers) Delete(ctx context.Context, id int64) error { return nil }

type memoryAccounts struct{ ids map[int64]bool }

func (m *memoryAccounts) Get(ctx context.Context, id int64) (*accounts.Account, error) {
	if m.ids[id] {
		return &accounts.Account{ID: id}, nil
	}
	return nil, fmt.Errorf("%w: account %d", shared.ErrNotFound, id)
}

func (m *memoryAccounts) First(ctx context.Context) (*accounts.Account, error) { return nil, nil }

func (m *memoryAccounts) List(ctx context.Context) ([]accounts.Account, error) { return nil, nil }

func (m *memoryAccounts) Create(ctx context.Context, acc accounts.Account) (int64, error) {
	return 0, nil
}

type memoryBookings struct{ ids map[int64]bool }

func (m *memoryBookings) Get(ctx context.Context, id int64) (*bookings.Booking, error) {
	if m.ids[id] {
		return &bookings.Booking{ID: id}, nil
	}
	return nil, fmt.Errorf("%w: booking %d", shared.ErrNotFound, id)
}

func (m *memoryBookings) List(ctx context.Context, req bookings.ListBookingsRequest) ([]bookings.Booking, int, error) {
	return nil, 0, nil
}

func (m *memoryBookings) Create(ctx context.Context, b bookings.Booking) (int64, error) {
	return 0, nil
}

func (m *memoryBookings) UpdateStatus(ctx context.Context, id int64, status bookings.BookingStatus) (bookings.BookingStatus, error) {
	return "", nil
}

func newTestService() (*Service, *memoryReceipts) {
	repo := &memoryReceipts{}
	svc := NewService(repo,
		&memoryCustomers{ids: map[int64]bool{1: true}},
		&memoryAccounts{ids: map[int64]bool{1: true}},
		&memoryBookings{ids: map[int64]bool{1: true}})
	return svc, repo
}

func TestCreateNumbersReceiptsSequentially(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		rc, err := svc.Create(ctx, CreateReceiptRequest{
			Customer: 1, Account: 1, PaymentMethod: MethodCash, Amount: 50,
		})
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("RCP-%06d", i), rc.ReceiptNumber)
		require.Equal(t, StatusPending, rc.Status)
	}
}

func TestCreateKeepsExplicitNumber(t *testing.T) {
	svc, repo := newTestService()

	rc, err := svc.Create(context.Background(), CreateReceiptRequest{
		ReceiptNumber: "RCP-999999",
		Customer:      1, Account: 1, PaymentMethod: MethodBank, Amount: 120,
	})
	require.NoError(t, err)
	require.Equal(t, "RCP-999999", rc.ReceiptNumber)
	// The counter is untouched when a number is supplied.
	require.Equal(t, int64(0), repo.counter)
}

func TestCreateValidatesReferences(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateReceiptRequest{Customer: 9, Account: 1, PaymentMethod: MethodCash, Amount: 10})
	require.ErrorIs(t, err, shared.ErrNotFound)

	_, err = svc.Create(ctx, CreateReceiptRequest{Customer: 1, Account: 9, PaymentMethod: MethodCash, Amount: 10})
	require.ErrorIs(t, err, shared.ErrNotFound)

	unknownBooking := int64(9)
	_, err = svc.Create(ctx, CreateReceiptRequest{Customer: 1, Account: 1, Booking: &unknownBooking, PaymentMethod: MethodCash, Amount: 10})
	require.ErrorIs(t, err, shared.ErrNotFound)
}
