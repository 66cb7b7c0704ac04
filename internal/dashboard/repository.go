package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the aggregates behind the summary.
type Repository interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountRooms(ctx context.Context) (int64, error)
	CountAvailableRooms(ctx context.Context) (int64, error)
	CountActiveBookings(ctx context.Context) (int64, error)
	SumTransactions(ctx context.Context, txType string) (float64, error)
	SumBalances(ctx context.Context) (float64, error)
	MonthlyRevenue(ctx context.Context) (float64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) countRow(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}

func (r *repository) sumRow(ctx context.Context, query string, args ...interface{}) (float64, error) {
	var v float64
	err := r.pool.QueryRow(ctx, query, args...).Scan(&v)
	return v, err
}

func (r *repository) CountCustomers(ctx context.Context) (int64, error) {
	return r.countRow(ctx, `SELECT COUNT(*) FROM customers`)
}

func (r *repository) CountRooms(ctx context.Context) (int64, error) {
	return r.countRow(ctx, `SELECT COUNT(*) FROM rooms`)
}

func (r *repository) CountAvailableRooms(ctx context.Context) (int64, error) {
	return r.countRow(ctx, `SELECT COUNT(*) FROM rooms WHERE status ILIKE 'available'`)
}

func (r *repository) CountActiveBookings(ctx context.Context) (int64, error) {
	return r.countRow(ctx, `SELECT COUNT(*) FROM bookings WHERE status IN ('confirmed', 'checked-in')`)
}

func (r *repository) SumTransactions(ctx context.Context, txType string) (float64, error) {
	return r.sumRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = $1`, txType)
}

func (r *repository) SumBalances(ctx context.Context) (float64, error) {
	return r.sumRow(ctx, `SELECT COALESCE(SUM(balance), 0) FROM accounts`)
}

func (r *repository) MonthlyRevenue(ctx context.Context) (float64, error) {
	return r.sumRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE type = 'Income' AND date >= date_trunc('month', NOW())
	`)
}
