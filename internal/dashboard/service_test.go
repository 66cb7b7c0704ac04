package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type memoryStats struct {
	customers int64
	income    float64
	expense   float64
}

func (m *memoryStats) CountCustomers(ctx context.Context) (int64, error)      { return m.customers, nil }
func (m *memoryStats) CountRooms(ctx context.Context) (int64, error)          { return 12, nil }
func (m *memoryStats) CountAvailableRooms(ctx context.Context) (int64, error) { return 7, nil }
func (m *memoryStats) CountActiveBookings(ctx context.Context) (int64, error) { return 4, nil }
func (m *memoryStats) SumTransactions(ctx context.Context, txType string) (float64, error) {
	if txType == "Income" {
		return m.income, nil
	}
	return m.expense, nil
}
func (m *memoryStats) SumBalances(ctx context.Context) (float64, error)   { return m.income - m.expense, nil }
func (m *memoryStats) MonthlyRevenue(ctx context.Context) (float64, error) { return m.income, nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSummaryAggregates(t *testing.T) {
	repo := &memoryStats{customers: 30, income: 1000, expense: 400}
	svc := NewService(testLogger(), repo, nil, 0)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(30), summary.Customers)
	require.Equal(t, int64(12), summary.Rooms)
	require.Equal(t, int64(7), summary.AvailableRooms)
	require.Equal(t, int64(4), summary.ActiveBookings)
	require.InDelta(t, 1000, summary.TotalIncome, 0.001)
	require.InDelta(t, 400, summary.TotalExpense, 0.001)
	require.InDelta(t, 600, summary.TotalBalance, 0.001)
}

func TestSummaryUsesCache(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	repo := &memoryStats{customers: 30, income: 1000}
	svc := NewService(testLogger(), repo, client, time.Minute)
	ctx := context.Background()

	first, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(30), first.Customers)

	// The store changes; the cached snapshot keeps serving.
	repo.customers = 99
	second, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(30), second.Customers)

	srv.FlushAll()
	third, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(99), third.Customers)
}

func TestSummarySurvivesCacheOutage(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	srv.Close()

	repo := &memoryStats{customers: 5}
	svc := NewService(testLogger(), repo, client, time.Minute)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(5), summary.Customers)
}
