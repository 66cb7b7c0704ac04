package rooms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// Repository persists rooms.
type Repository interface {
	Get(ctx context.Context, id int64) (*Room, error)
	List(ctx context.Context, req ListRoomsRequest) ([]Room, int, error)
	ListAll(ctx context.Context) ([]Room, error)
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]Room, error)
	Create(ctx context.Context, room Room) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const roomColumns = `id, room_number, type, capacity, price, amenities, status, description, created_at, updated_at`

func scanRoom(row pgx.Row) (Room, error) {
	var rm Room
	err := row.Scan(&rm.ID, &rm.RoomNumber, &rm.Type, &rm.Capacity, &rm.Price, &rm.Amenities, &rm.Status, &rm.Description, &rm.CreatedAt, &rm.UpdatedAt)
	return rm, err
}

func (r *repository) Get(ctx context.Context, id int64) (*Room, error) {
	rm, err := scanRoom(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM rooms WHERE id = $1`, roomColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: room %d", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return &rm, nil
}

func (r *repository) List(ctx context.Context, req ListRoomsRequest) ([]Room, int, error) {
	where := ""
	var args []interface{}
	if req.Status != "" {
		where = "WHERE status = $1"
		args = append(args, req.Status)
	}

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM rooms %s", where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (req.Page - 1) * req.Limit
	query := fmt.Sprintf(`SELECT %s FROM rooms %s ORDER BY room_number LIMIT $%d OFFSET $%d`, roomColumns, where, len(args)+1, len(args)+2)
	args = append(args, req.Limit, offset)

	rooms, err := r.queryRooms(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Room, error) {
	return r.queryRooms(ctx, fmt.Sprintf(`SELECT %s FROM rooms ORDER BY room_number`, roomColumns))
}

// ListAvailable returns rooms whose status is "available" (case-insensitive)
// and which have no non-cancelled booking overlapping [checkIn, checkOut).
// Overlap uses half-open interval semantics: a stay ending on checkIn does
// not conflict.
func (r *repository) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]Room, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM rooms
		WHERE status ILIKE 'available'
		  AND id NOT IN (
			SELECT room_id FROM bookings
			WHERE check_in_date < $2
			  AND check_out_date > $1
			  AND status <> 'cancelled'
		  )
		ORDER BY room_number
	`, roomColumns)
	return r.queryRooms(ctx, query, checkIn, checkOut)
}

func (r *repository) Create(ctx context.Context, room Room) (int64, error) {
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO rooms (room_number, type, capacity, price, amenities, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, room.RoomNumber, room.Type, room.Capacity, room.Price, room.Amenities, room.Status, room.Description).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("%w: room number already in use", shared.ErrDuplicate)
		}
		return 0, err
	}
	return id, nil
}

func (r *repository) queryRooms(ctx context.Context, query string, args ...interface{}) ([]Room, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}
