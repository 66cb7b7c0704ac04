package accounts

import (
	"context"
	"fmt"
)

// Service owns account operations.
type Service struct {
	repo Repository
}

// NewService constructs the account service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	id, err := s.repo.Create(ctx, Account{
		Name:          req.Name,
		Institution:   req.Institution,
		Balance:       req.Balance,
		Type:          AccountType(req.Type),
		AccountNumber: req.AccountNumber,
		Description:   req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*Account, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Account, error) {
	return s.repo.List(ctx)
}
