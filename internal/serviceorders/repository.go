package serviceorders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// Repository persists service orders.
type Repository interface {
	Get(ctx context.Context, id int64) (*ServiceOrder, error)
	List(ctx context.Context) ([]ServiceOrder, error)
	Create(ctx context.Context, order ServiceOrder) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const orderColumns = `o.id, o.service_id, o.booking_id, o.customer_id, o.quantity, o.unit_price, o.total_amount, o.date_provided, o.status, o.notes, o.created_at, o.updated_at,
	s.id, s.name, s.price,
	c.id, c.name, c.phone, c.email,
	b.id, b.check_in_date, b.check_out_date`

const orderJoins = `FROM service_orders o
	JOIN services s ON s.id = o.service_id
	JOIN customers c ON c.id = o.customer_id
	LEFT JOIN bookings b ON b.id = o.booking_id`

func scanOrder(row pgx.Row) (ServiceOrder, error) {
	var o ServiceOrder
	var svc OrderService
	var cust OrderCustomer
	var bookingID *int64
	var bIn, bOut *time.Time
	err := row.Scan(
		&o.ID, &o.ServiceID, &o.BookingID, &o.CustomerID, &o.Quantity, &o.UnitPrice, &o.TotalAmount, &o.DateProvided, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		&svc.ID, &svc.Name, &svc.Price,
		&cust.ID, &cust.Name, &cust.Phone, &cust.Email,
		&bookingID, &bIn, &bOut,
	)
	if err != nil {
		return o, err
	}
	o.Service = &svc
	o.Customer = &cust
	if bookingID != nil && bIn != nil && bOut != nil {
		o.Booking = &OrderBooking{ID: *bookingID, CheckInDate: *bIn, CheckOutDate: *bOut}
	}
	return o, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*ServiceOrder, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE o.id = $1`, orderColumns, orderJoins)
	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: service order %d", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return &o, nil
}

func (r *repository) List(ctx context.Context) ([]ServiceOrder, error) {
	query := fmt.Sprintf(`SELECT %s %s ORDER BY o.date_provided DESC`, orderColumns, orderJoins)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ServiceOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

func (r *repository) Create(ctx context.Context, order ServiceOrder) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO service_orders (service_id, booking_id, customer_id, quantity, unit_price, total_amount, date_provided, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, order.ServiceID, order.BookingID, order.CustomerID, order.Quantity, order.UnitPrice, order.TotalAmount, order.DateProvided, order.Status, order.Notes).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
