package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// Repository persists the service catalog.
type Repository interface {
	Get(ctx context.Context, id int64) (*Service, error)
	ListActive(ctx context.Context) ([]Service, error)
	Create(ctx context.Context, svc Service) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const serviceColumns = `id, name, description, price, category, is_active, created_at, updated_at`

func scanService(row pgx.Row) (Service, error) {
	var svc Service
	err := row.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Price, &svc.Category, &svc.IsActive, &svc.CreatedAt, &svc.UpdatedAt)
	return svc, err
}

func (r *repository) Get(ctx context.Context, id int64) (*Service, error) {
	svc, err := scanService(r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM services WHERE id = $1`, serviceColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: service %d", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return &svc, nil
}

// ListActive returns only services still offered, newest first.
func (r *repository) ListActive(ctx context.Context) ([]Service, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM services WHERE is_active ORDER BY created_at DESC`, serviceColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, svc)
	}
	return items, rows.Err()
}

func (r *repository) Create(ctx context.Context, svc Service) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO services (name, description, price, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, svc.Name, svc.Description, svc.Price, svc.Category).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
