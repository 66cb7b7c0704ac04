package receipts

import (
	"context"
	"fmt"
	"time"

	"github.com/bayside-hms/bayside-hms/internal/bookings"
	"github.com/bayside-hms/bayside-hms/internal/customers"
	"github.com/bayside-hms/bayside-hms/internal/finance/accounts"
)

// Service owns receipt operations.
type Service struct {
	repo      Repository
	customers customers.Repository
	accounts  accounts.Repository
	bookings  bookings.Repository
}

// NewService constructs the receipt service.
func NewService(repo Repository, customersRepo customers.Repository, accountsRepo accounts.Repository, bookingsRepo bookings.Repository) *Service {
	return &Service{
		repo:      repo,
		customers: customersRepo,
		accounts:  accountsRepo,
		bookings:  bookingsRepo,
	}
}

// Create issues a receipt. When the caller supplies no number, one is drawn
// from the shared counter, so concurrent creations cannot collide.
func (s *Service) Create(ctx context.Context, req CreateReceiptRequest) (*Receipt, error) {
	if _, err := s.customers.Get(ctx, req.Customer); err != nil {
		return nil, err
	}
	if _, err := s.accounts.Get(ctx, req.Account); err != nil {
		return nil, err
	}
	if req.Booking != nil {
		if _, err := s.bookings.Get(ctx, *req.Booking); err != nil {
			return nil, err
		}
	}

	number := req.ReceiptNumber
	if number == "" {
		seq, err := s.repo.NextNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("allocate receipt number: %w", err)
		}
		number = fmt.Sprintf("RCP-%06d", seq)
	}

	status := ReceiptStatus(req.Status)
	if status == "" {
		status = StatusPending
	}
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	id, err := s.repo.Create(ctx, Receipt{
		ReceiptNumber: number,
		CustomerID:    req.Customer,
		BookingID:     req.Booking,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		Date:          date,
		Description:   req.Description,
		AccountID:     req.Account,
		Status:        status,
	})
	if err != nil {
		return nil, fmt.Errorf("create receipt: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListReceiptsRequest) ([]Receipt, int, error) {
	return s.repo.List(ctx, req)
}
