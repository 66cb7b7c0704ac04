package services

import (
	"context"
	"fmt"
)

// Catalog owns service-catalog operations. Named Catalog because the entity
// itself is called Service.
type Catalog struct {
	repo Repository
}

// NewCatalog constructs the catalog service.
func NewCatalog(repo Repository) *Catalog {
	return &Catalog{repo: repo}
}

func (c *Catalog) Create(ctx context.Context, req CreateServiceRequest) (*Service, error) {
	category := req.Category
	if category == "" {
		category = "General"
	}
	id, err := c.repo.Create(ctx, Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    category,
	})
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return c.repo.Get(ctx, id)
}

func (c *Catalog) Get(ctx context.Context, id int64) (*Service, error) {
	return c.repo.Get(ctx, id)
}

func (c *Catalog) ListActive(ctx context.Context) ([]Service, error) {
	return c.repo.ListActive(ctx)
}
