package serviceorders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bayside-hms/bayside-hms/internal/bookings"
	"github.com/bayside-hms/bayside-hms/internal/customers"
	"github.com/bayside-hms/bayside-hms/internal/finance/ledger"
	"github.com/bayside-hms/bayside-hms/internal/services"
)

type poster interface {
	Post(ctx context.Context, in ledger.PostingInput) (*ledger.Transaction, error)
}

// Service owns service-order operations, including the expense posting for
// orders delivered immediately.
type Service struct {
	logger    *slog.Logger
	repo      Repository
	catalog   services.Repository
	customers customers.Repository
	bookings  bookings.Repository
	ledger    poster
}

// NewService constructs the service-order service.
func NewService(logger *slog.Logger, repo Repository, catalogRepo services.Repository, customersRepo customers.Repository, bookingsRepo bookings.Repository, ledgerSvc poster) *Service {
	return &Service{
		logger:    logger,
		repo:      repo,
		catalog:   catalogRepo,
		customers: customersRepo,
		bookings:  bookingsRepo,
		ledger:    ledgerSvc,
	}
}

// Create records a service order. The unit price snapshots the catalog price
// unless the caller overrides it; the total is fixed here and never
// recomputed afterwards. An order created already Completed posts its expense
// once; later status changes never post.
func (s *Service) Create(ctx context.Context, req CreateServiceOrderRequest) (*ServiceOrder, error) {
	svc, err := s.catalog.Get(ctx, req.Service)
	if err != nil {
		return nil, err
	}
	if _, err := s.customers.Get(ctx, req.Customer); err != nil {
		return nil, err
	}
	if req.Booking != nil {
		if _, err := s.bookings.Get(ctx, *req.Booking); err != nil {
			return nil, err
		}
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	unitPrice := svc.Price
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}
	status := OrderStatus(req.Status)
	if status == "" {
		status = StatusCompleted
	}
	dateProvided := time.Now()
	if req.DateProvided != nil {
		dateProvided = *req.DateProvided
	}

	order := ServiceOrder{
		ServiceID:    req.Service,
		BookingID:    req.Booking,
		CustomerID:   req.Customer,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TotalAmount:  float64(quantity) * unitPrice,
		DateProvided: dateProvided,
		Status:       status,
		Notes:        req.Notes,
	}
	id, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create service order: %w", err)
	}

	if status == StatusCompleted {
		refID := id
		_, err = s.ledger.Post(ctx, ledger.PostingInput{
			Type:        ledger.TypeExpense,
			Amount:      order.TotalAmount,
			Description: fmt.Sprintf("Service cost - %s", svc.Name),
			Reference:   ledger.ReferenceService,
			ReferenceID: &refID,
		})
		if err != nil {
			return nil, fmt.Errorf("post expense for service order %d: %w", id, err)
		}
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]ServiceOrder, error) {
	return s.repo.List(ctx)
}
