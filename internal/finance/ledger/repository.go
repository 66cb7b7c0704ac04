package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayside-hms/bayside-hms/internal/platform/db"
	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// Repository persists transactions and applies balance movements.
type Repository interface {
	// Post records the transaction and moves the account balance by delta in
	// a single database transaction.
	Post(ctx context.Context, t Transaction, delta float64) (int64, error)
	// Insert records the transaction without touching any balance.
	Insert(ctx context.Context, t Transaction) (int64, error)
	// AdjustBalance moves the account balance by delta.
	AdjustBalance(ctx context.Context, accountID int64, delta float64) error
	Get(ctx context.Context, id int64) (*Transaction, error)
	List(ctx context.Context, req ListTransactionsRequest) ([]Transaction, int, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const insertTransaction = `
	INSERT INTO transactions (date, type, amount, description, account_id, reference, reference_id, category)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id
`

func (r *repository) Post(ctx context.Context, t Transaction, delta float64) (int64, error) {
	var id int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertTransaction,
			postingDate(t), t.Type, t.Amount, t.Description, t.AccountID, t.Reference, t.ReferenceID, t.Category,
		).Scan(&id); err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		tag, err := tx.Exec(ctx, `UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2`, delta, t.AccountID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: account %d", shared.ErrNotFound, t.AccountID)
		}
		return nil
	})
	if err != nil {
		return 0, convertPostError(err)
	}
	return id, nil
}

func (r *repository) Insert(ctx context.Context, t Transaction) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, insertTransaction,
		postingDate(t), t.Type, t.Amount, t.Description, t.AccountID, t.Reference, t.ReferenceID, t.Category,
	).Scan(&id)
	if err != nil {
		return 0, convertPostError(err)
	}
	return id, nil
}

func (r *repository) AdjustBalance(ctx context.Context, accountID int64, delta float64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2`, delta, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %d", shared.ErrNotFound, accountID)
	}
	return nil
}

func postingDate(t Transaction) time.Time {
	if t.Date.IsZero() {
		return time.Now()
	}
	return t.Date
}

// convertPostError maps the partial unique index on booking postings to a
// conflict so a raced duplicate checkout surfaces instead of double-counting.
func convertPostError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: booking already posted", shared.ErrConflict)
	}
	return err
}

const transactionColumns = `t.id, t.date, t.type, t.amount, t.description, t.account_id, t.reference, t.reference_id, t.category, t.created_at, t.updated_at, a.id, a.name, a.institution`

func scanTransaction(row pgx.Row) (Transaction, error) {
	var t Transaction
	var acc TxAccount
	err := row.Scan(&t.ID, &t.Date, &t.Type, &t.Amount, &t.Description, &t.AccountID, &t.Reference, &t.ReferenceID, &t.Category, &t.CreatedAt, &t.UpdatedAt, &acc.ID, &acc.Name, &acc.Institution)
	if err != nil {
		return t, err
	}
	t.Account = &acc
	return t, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions t JOIN accounts a ON a.id = t.account_id WHERE t.id = $1`, transactionColumns)
	t, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %d", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) List(ctx context.Context, req ListTransactionsRequest) ([]Transaction, int, error) {
	var conditions []string
	var args []interface{}

	if req.AccountID != 0 {
		args = append(args, req.AccountID)
		conditions = append(conditions, fmt.Sprintf("t.account_id = $%d", len(args)))
	}
	if req.Type != "" {
		args = append(args, req.Type)
		conditions = append(conditions, fmt.Sprintf("t.type = $%d", len(args)))
	}
	if req.StartDate != nil {
		args = append(args, *req.StartDate)
		conditions = append(conditions, fmt.Sprintf("t.date >= $%d", len(args)))
	}
	if req.EndDate != nil {
		args = append(args, *req.EndDate)
		conditions = append(conditions, fmt.Sprintf("t.date <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM transactions t %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (req.Page - 1) * req.Limit
	args = append(args, req.Limit, offset)
	query := fmt.Sprintf(`
		SELECT %s FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		%s
		ORDER BY t.date DESC
		LIMIT $%d OFFSET $%d
	`, transactionColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, rows.Err()
}
