package bookings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bayside-hms/bayside-hms/internal/customers"
	"github.com/bayside-hms/bayside-hms/internal/finance/ledger"
	"github.com/bayside-hms/bayside-hms/internal/rooms"
	"github.com/bayside-hms/bayside-hms/internal/shared"
)

type poster interface {
	Post(ctx context.Context, in ledger.PostingInput) (*ledger.Transaction, error)
}

// Service owns booking operations, including the checkout income posting.
type Service struct {
	logger    *slog.Logger
	repo      Repository
	customers customers.Repository
	rooms     rooms.Repository
	ledger    poster
}

// NewService constructs the booking service.
func NewService(logger *slog.Logger, repo Repository, customersRepo customers.Repository, roomsRepo rooms.Repository, ledgerSvc poster) *Service {
	return &Service{
		logger:    logger,
		repo:      repo,
		customers: customersRepo,
		rooms:     roomsRepo,
		ledger:    ledgerSvc,
	}
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	if !req.CheckInDate.Before(req.CheckOutDate) {
		return nil, fmt.Errorf("%w: check-out date must be after check-in date", shared.ErrValidation)
	}
	if _, err := s.customers.Get(ctx, req.Customer); err != nil {
		return nil, err
	}
	if _, err := s.rooms.Get(ctx, req.Room); err != nil {
		return nil, err
	}

	status := BookingStatus(req.Status)
	if status == "" {
		status = StatusConfirmed
	}
	id, err := s.repo.Create(ctx, Booking{
		CustomerID:      req.Customer,
		RoomID:          req.Room,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		TotalAmount:     req.TotalAmount,
		Status:          status,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListBookingsRequest) ([]Booking, int, error) {
	return s.repo.List(ctx, req)
}

// UpdateStatus sets the booking status. Any status value is accepted; staff
// correct mistakes by setting the status back. Moving into checked-out posts
// the stay's income exactly once: the repository swaps the status under a row
// lock and reports the previous value, so only the transition that actually
// flipped it posts.
func (s *Service) UpdateStatus(ctx context.Context, req UpdateBookingStatusRequest) (*Booking, error) {
	status := BookingStatus(req.Status)
	old, err := s.repo.UpdateStatus(ctx, req.ID, status)
	if err != nil {
		return nil, err
	}

	if old != StatusCheckedOut && status == StatusCheckedOut {
		booking, err := s.repo.Get(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		refID := booking.ID
		_, err = s.ledger.Post(ctx, ledger.PostingInput{
			Type:        ledger.TypeIncome,
			Amount:      booking.TotalAmount,
			Description: fmt.Sprintf("Booking payment - Room %s", booking.Room.RoomNumber),
			Reference:   ledger.ReferenceBooking,
			ReferenceID: &refID,
		})
		if err != nil {
			return nil, fmt.Errorf("post checkout income for booking %d: %w", booking.ID, err)
		}
		return booking, nil
	}

	return s.repo.Get(ctx, req.ID)
}
