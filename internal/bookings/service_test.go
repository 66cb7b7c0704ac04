package bookings

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bayside-hms/bayside-hms/internal/customers"
	"github.com/bayside-hms/bayside-hms/internal/finance/ledger"
	"github.com/bayside-hms/bayside-hms/internal/rooms"
	"github.com/bayside-hms/bayside-hms/internal/shared"
)

type memoryBookings struct {
	items  []Booking
	nextID int64
}

func (m *memoryBookings) Get(ctx context.Context, id int64) (*Booking, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			b := m.items[i]
			b.Customer = &BookingCustomer{ID: b.CustomerID}
			b.Room = &BookingRoom{ID: b.RoomID, RoomNumber: fmt.Sprintf("%d", 100+b.RoomID)}
			return &b, nil
		}
	}
	return nil, fmt.Errorf("%w: booking %d", shared.ErrNotFound, id)
}

func (m *memoryBookings) List(ctx context.Context, req ListBookingsRequest) ([]Booking, int, error) {
	return m.items, len(m.items), nil
}

func (m *memoryBookings) Create(ctx context.Context, b Booking) (int64, error) {
	for _, existing := range m.items {
		if existing.RoomID != b.RoomID || existing.Status == StatusCancelled {
			continue
		}
		if Overlaps(existing.CheckInDate, existing.CheckOutDate, b.CheckInDate, b.CheckOutDate) {
			return 0, fmt.Errorf("%w: room is already booked for the selected dates", shared.ErrConflict)
		}
	}
	m.nextID++
	b.ID = m.nextID
	m.items = append(m.items, b)
	return b.ID, nil
}

func (m *memoryBookings) UpdateStatus(ctx context.Context, id int64, status BookingStatus) (BookingStatus, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			old := m.items[i].Status
			m.items[i].Status = status
			return old, nil
		}
	}
	return "", fmt.Errorf("%w: booking %d", shared.ErrNotFound, id)
}

type memoryCustomers struct {
	ids map[int64]bool
}

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

func (m *memoryCustomers) Delete(ctx context.Context, id int64) error {
	return nil
}

type memoryRooms struct {
	ids map[int64]bool
}

func (m *memoryRooms) Get(ctx context.Context, id int64) (*rooms.Room, error) {
	if m.ids[id] {
		return &rooms.Room{ID: id}, nil
	}
	return nil, fmt.Errorf("%w: room %d", shared.ErrNotFound, id)
}

func (m *memoryRooms) List(ctx context.Context, req rooms.ListRoomsRequest) ([]rooms.Room, int, error) {
	return nil, 0, nil
}

func (m *memoryRooms) ListAll(ctx context.Context) ([]rooms.Room, error) { return nil, nil }

func (m *memoryRooms) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]rooms.Room, error) {
	return nil, nil
}

func (m *memoryRooms) Create(ctx context.Context, room rooms.Room) (int64, error) { return 0, nil }

type memoryPoster struct {
	posts []ledger.PostingInput
}

func (m *memoryPoster) Post(ctx context.Context, in ledger.PostingInput) (*ledger.Transaction, error) {
	m.posts = append(m.posts, in)
	return &ledger.Transaction{ID: int64(len(m.posts))}, nil
}

func newTestService() (*Service, *memoryBookings, *memoryPoster) {
	repo := &memoryBookings{}
	poster := &memoryPoster{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(logger, repo,
		&memoryCustomers{ids: map[int64]bool{1: true}},
		&memoryRooms{ids: map[int64]bool{1: true}},
		poster)
	return svc, repo, poster
}

func TestCreateRejectsOverlappingBooking(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateBookingRequest{
		Customer: 1, Room: 1,
		CheckInDate: day("2024-06-10"), CheckOutDate: day("2024-06-15"),
		TotalAmount: 500,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateBookingRequest{
		Customer: 1, Room: 1,
		CheckInDate: day("2024-06-14"), CheckOutDate: day("2024-06-16"),
		TotalAmount: 200,
	})
	require.ErrorIs(t, err, shared.ErrConflict)

	// A stay starting the day the first one ends is fine.
	_, err = svc.Create(ctx, CreateBookingRequest{
		Customer: 1, Room: 1,
		CheckInDate: day("2024-06-15"), CheckOutDate: day("2024-06-18"),
		TotalAmount: 300,
	})
	require.NoError(t, err)
}

func TestCreateValidatesReferencesAndDates(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateBookingRequest{
		Customer: 2, Room: 1,
		CheckInDate: day("2024-06-10"), CheckOutDate: day("2024-06-12"),
	})
	require.ErrorIs(t, err, shared.ErrNotFound)

	_, err = svc.Create(ctx, CreateBookingRequest{
		Customer: 1, Room: 9,
		CheckInDate: day("2024-06-10"), CheckOutDate: day("2024-06-12"),
	})
	require.ErrorIs(t, err, shared.ErrNotFound)

	_, err = svc.Create(ctx, CreateBookingRequest{
		Customer: 1, Room: 1,
		CheckInDate: day("2024-06-12"), CheckOutDate: day("2024-06-10"),
	})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestCheckoutPostsIncomeExactlyOnce(t *testing.T) {
	svc, _, poster := newTestService()
	ctx := context.Background()

	booking, err := svc.Create(ctx, CreateBookingRequest{
		Customer: 1, Room: 1,
		CheckInDate: day("2024-06-10"), CheckOutDate: day("2024-06-15"),
		TotalAmount: 750,
	})
	require.NoError(t, err)
	require.Empty(t, poster.posts)

	_, err = svc.UpdateStatus(ctx, UpdateBookingStatusRequest{ID: booking.ID, Status: "checked-in"})
	require.NoError(t, err)
	require.Empty(t, poster.posts)

	updated, err := svc.UpdateStatus(ctx, UpdateBookingStatusRequest{ID: booking.ID, Status: "checked-out"})
	require.NoError(t, err)
	require.Equal(t, StatusCheckedOut, updated.Status)
	require.Len(t, poster.posts, 1)
	require.Equal(t, ledger.TypeIncome, poster.posts[0].Type)
	require.InDelta(t, 750, poster.posts[0].Amount, 0.001)
	require.Equal(t, ledger.ReferenceBooking, poster.posts[0].Reference)
	require.NotNil(t, poster.posts[0].ReferenceID)
	require.Equal(t, booking.ID, *poster.posts[0].ReferenceID)

	// Repeating the same transition does not post again.
	_, err = svc.UpdateStatus(ctx, UpdateBookingStatusRequest{ID: booking.ID, Status: "checked-out"})
	require.NoError(t, err)
	require.Len(t, poster.posts, 1)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.UpdateStatus(context.Background(), UpdateBookingStatusRequest{ID: 42, Status: "cancelled"})
	require.ErrorIs(t, err, shared.ErrNotFound)
}
