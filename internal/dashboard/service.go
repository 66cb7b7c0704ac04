package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const cacheKey = "bayside:dashboard:summary"

// Service assembles the dashboard summary. The Redis cache is best-effort:
// any cache failure falls through to the database.
type Service struct {
	logger *slog.Logger
	repo   Repository
	cache  *redis.Client
	ttl    time.Duration
}

// NewService constructs the dashboard service. cache may be nil to disable
// caching entirely.
func NewService(logger *slog.Logger, repo Repository, cache *redis.Client, ttl time.Duration) *Service {
	return &Service{
		logger: logger,
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
	}
}

// Summary returns the aggregate snapshot, reading through the cache.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	summary, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, summary)
	return summary, nil
}

func (s *Service) load(ctx context.Context) (*Summary, error) {
	var summary Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary.Customers, err = s.repo.CountCustomers(ctx)
		return
	})
	g.Go(func() (err error) {
		summary.Rooms, err = s.repo.CountRooms(ctx)
		return
	})
	g.Go(func() (err error) {
		summary.AvailableRooms, err = s.repo.CountAvailableRooms(ctx)
		return
	})
	g.Go(func() (err error) {
		summary.ActiveBookings, err = s.repo.CountActiveBookings(ctx)
		return
	})
	g.Go(func() (err error) {
		summary.TotalIncome, err = s.repo.SumTransactions(ctx, "Income")
		return
	})
	g.Go(func() (err error) {
		summary.TotalExpense, err = s.repo.SumTransactions(ctx, "Expense")
		return
	})
	g.Go(func() (err error) {
		summary.TotalBalance, err = s.repo.SumBalances(ctx)
		return
	})
	g.Go(func() (err error) {
		summary.MonthlyRevenue, err = s.repo.MonthlyRevenue(ctx)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Service) fromCache(ctx context.Context) *Summary {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil
	}
	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *Service) store(ctx context.Context, summary *Summary) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("dashboard cache write failed", slog.Any("error", err))
	}
}
