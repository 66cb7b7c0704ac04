package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayside-hms/bayside-hms/internal/platform/db"
	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// Repository persists bookings.
type Repository interface {
	Get(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, req ListBookingsRequest) ([]Booking, int, error)
	// Create inserts the booking after verifying, under a lock on the room
	// row, that no non-cancelled booking overlaps the requested interval.
	Create(ctx context.Context, b Booking) (int64, error)
	// UpdateStatus sets the booking status and returns the status it replaced.
	UpdateStatus(ctx context.Context, id int64, status BookingStatus) (BookingStatus, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const bookingColumns = `b.id, b.customer_id, b.room_id, b.check_in_date, b.check_out_date, b.total_amount, b.status, b.special_requests, b.created_at, b.updated_at,
	c.id, c.name, c.email, c.phone,
	r.id, r.room_number, r.type, r.price`

const bookingJoins = `FROM bookings b
	JOIN customers c ON c.id = b.customer_id
	JOIN rooms r ON r.id = b.room_id`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	var cust BookingCustomer
	var room BookingRoom
	err := row.Scan(
		&b.ID, &b.CustomerID, &b.RoomID, &b.CheckInDate, &b.CheckOutDate, &b.TotalAmount, &b.Status, &b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt,
		&cust.ID, &cust.Name, &cust.Email, &cust.Phone,
		&room.ID, &room.RoomNumber, &room.Type, &room.Price,
	)
	if err != nil {
		return b, err
	}
	b.Customer = &cust
	b.Room = &room
	return b, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Booking, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE b.id = $1`, bookingColumns, bookingJoins)
	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: booking %d", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) List(ctx context.Context, req ListBookingsRequest) ([]Booking, int, error) {
	var conditions []string
	var args []interface{}
	if req.Status != "" {
		args = append(args, req.Status)
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM bookings b %s`, where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (req.Page - 1) * req.Limit
	args = append(args, req.Limit, offset)
	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d`,
		bookingColumns, bookingJoins, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, b Booking) (int64, error) {
	var id int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		// Lock the room row so two concurrent creations for the same room
		// serialize; the second sees the first's insert.
		var roomID int64
		if err := tx.QueryRow(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, b.RoomID).Scan(&roomID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: room %d", shared.ErrNotFound, b.RoomID)
			}
			return err
		}

		rows, err := tx.Query(ctx, `
			SELECT check_in_date, check_out_date FROM bookings
			WHERE room_id = $1 AND status <> 'cancelled'
		`, b.RoomID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var in, out time.Time
			if err := rows.Scan(&in, &out); err != nil {
				return err
			}
			if Overlaps(in, out, b.CheckInDate, b.CheckOutDate) {
				return fmt.Errorf("%w: room is already booked for the selected dates", shared.ErrConflict)
			}
		}
		if err := rows.Err(); err != nil {
			return err
		}

		return tx.QueryRow(ctx, `
			INSERT INTO bookings (customer_id, room_id, check_in_date, check_out_date, total_amount, status, special_requests)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, b.CustomerID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.TotalAmount, b.Status, b.SpecialRequests).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status BookingStatus) (BookingStatus, error) {
	var old BookingStatus
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, id).Scan(&old); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: booking %d", shared.ErrNotFound, id)
			}
			return err
		}
		_, err := tx.Exec(ctx, `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
		return err
	})
	if err != nil {
		return "", err
	}
	return old, nil
}
