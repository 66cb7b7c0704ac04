package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// Repository persists accounts.
type Repository interface {
	Get(ctx context.Context, id int64) (*Account, error)
	First(ctx context.Context) (*Account, error)
	List(ctx context.Context) ([]Account, error)
	Create(ctx context.Context, acc Account) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const accountColumns = `id, name, institution, balance, type, account_number, description, created_at, updated_at`

func scanAccount(row pgx.Row) (Account, error) {
	var acc Account
	err := row.Scan(&acc.ID, &acc.Name, &acc.Institution, &acc.Balance, &acc.Type, &acc.AccountNumber, &acc.Description, &acc.CreatedAt, &acc.UpdatedAt)
	return acc, err
}

func (r *repository) Get(ctx context.Context, id int64) (*Account, error) {
	acc, err := scanAccount(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return &acc, nil
}

// First returns the earliest-created account, used as the posting default when
// no primary account is configured.
func (r *repository) First(ctx context.Context) (*Account, error) {
	acc, err := scanAccount(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM accounts ORDER BY id LIMIT 1`, accountColumns)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no accounts configured", shared.ErrNotFound)
		}
		return nil, err
	}
	return &acc, nil
}

func (r *repository) List(ctx context.Context) ([]Account, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM accounts ORDER BY created_at DESC`, accountColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, acc)
	}
	return items, rows.Err()
}

func (r *repository) Create(ctx context.Context, acc Account) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (name, institution, balance, type, account_number, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, acc.Name, acc.Institution, acc.Balance, acc.Type, acc.AccountNumber, acc.Description).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("%w: account number already in use", shared.ErrDuplicate)
		}
		return 0, err
	}
	return id, nil
}
