package receipts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// Repository persists receipts and the receipt number sequence.
type Repository interface {
	Get(ctx context.Context, id int64) (*Receipt, error)
	List(ctx context.Context, req ListReceiptsRequest) ([]Receipt, int, error)
	Create(ctx context.Context, rc Receipt) (int64, error)
	// NextNumber atomically advances the receipt counter and returns the new
	// value. Concurrent callers each get a distinct value.
	NextNumber(ctx context.Context) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const receiptColumns = `rc.id, rc.receipt_number, rc.customer_id, rc.booking_id, rc.payment_method, rc.amount, rc.date, rc.description, rc.account_id, rc.status, rc.created_at, rc.updated_at,
	c.id, c.name, c.phone,
	a.id, a.name`

const receiptJoins = `FROM receipts rc
	JOIN customers c ON c.id = rc.customer_id
	JOIN accounts a ON a.id = rc.account_id`

func scanReceipt(row pgx.Row) (Receipt, error) {
	var rc Receipt
	var cust ReceiptCustomer
	var acc ReceiptAccount
	err := row.Scan(
		&rc.ID, &rc.ReceiptNumber, &rc.CustomerID, &rc.BookingID, &rc.PaymentMethod, &rc.Amount, &rc.Date, &rc.Description, &rc.AccountID, &rc.Status, &rc.CreatedAt, &rc.UpdatedAt,
		&cust.ID, &cust.Name, &cust.Phone,
		&acc.ID, &acc.Name,
	)
	if err != nil {
		return rc, err
	}
	rc.Customer = &cust
	rc.Account = &acc
	return rc, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Receipt, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE rc.id = $1`, receiptColumns, receiptJoins)
	rc, err := scanReceipt(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: receipt %d", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return &rc, nil
}

func (r *repository) List(ctx context.Context, req ListReceiptsRequest) ([]Receipt, int, error) {
	var conditions []string
	var args []interface{}
	if req.CustomerID != 0 {
		args = append(args, req.CustomerID)
		conditions = append(conditions, fmt.Sprintf("rc.customer_id = $%d", len(args)))
	}
	if req.Status != "" {
		args = append(args, req.Status)
		conditions = append(conditions, fmt.Sprintf("rc.status = $%d", len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM receipts rc %s`, where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (req.Page - 1) * req.Limit
	args = append(args, req.Limit, offset)
	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY rc.date DESC LIMIT $%d OFFSET $%d`,
		receiptColumns, receiptJoins, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []Receipt
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rc)
	}
	return items, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, rc Receipt) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO receipts (receipt_number, customer_id, booking_id, payment_method, amount, date, description, account_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, rc.ReceiptNumber, rc.CustomerID, rc.BookingID, rc.PaymentMethod, rc.Amount, rc.Date, rc.Description, rc.AccountID, rc.Status).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("%w: receipt number already in use", shared.ErrDuplicate)
		}
		return 0, err
	}
	return id, nil
}

func (r *repository) NextNumber(ctx context.Context) (int64, error) {
	var value int64
	err := r.pool.QueryRow(ctx, `UPDATE counters SET value = value + 1 WHERE name = 'receipts' RETURNING value`).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errors.New("receipt counter row missing")
		}
		return 0, err
	}
	return value, nil
}
