package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/bayside-hms/bayside-hms/internal/app"
	"github.com/bayside-hms/bayside-hms/internal/bookings"
	"github.com/bayside-hms/bayside-hms/internal/customers"
	"github.com/bayside-hms/bayside-hms/internal/dashboard"
	"github.com/bayside-hms/bayside-hms/internal/finance/accounts"
	"github.com/bayside-hms/bayside-hms/internal/finance/ledger"
	"github.com/bayside-hms/bayside-hms/internal/observability"
	"github.com/bayside-hms/bayside-hms/internal/platform/db"
	"github.com/bayside-hms/bayside-hms/internal/receipts"
	"github.com/bayside-hms/bayside-hms/internal/rooms"
	"github.com/bayside-hms/bayside-hms/internal/serviceorders"
	"github.com/bayside-hms/bayside-hms/internal/services"
	"github.com/bayside-hms/bayside-hms/internal/shared"
	"github.com/bayside-hms/bayside-hms/migrations"
)

func main() {
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("load config failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool, migrations.Files, "."); err != nil {
		logger.Error("run migrations failed", slog.Any("error", err))
		os.Exit(1)
	}

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := cache.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, dashboard cache disabled", slog.Any("error", err))
			cache = nil
		}
	}

	metrics := observability.NewMetrics()
	idempotency := shared.NewIdempotencyStore(pool)

	customerRepo := customers.NewRepository(pool)
	roomRepo := rooms.NewRepository(pool)
	serviceRepo := services.NewRepository(pool)
	bookingRepo := bookings.NewRepository(pool)
	orderRepo := serviceorders.NewRepository(pool)
	accountRepo := accounts.NewRepository(pool)
	ledgerRepo := ledger.NewRepository(pool)
	receiptRepo := receipts.NewRepository(pool)
	dashboardRepo := dashboard.NewRepository(pool)

	ledgerSvc := ledger.NewLedger(logger, ledgerRepo, accountRepo, ledger.Options{
		PrimaryAccountID: cfg.PrimaryAccountID,
		LegacyPosting:    cfg.LegacyPosting,
		Metrics:          metrics,
		Idempotency:      idempotency,
	})

	customerSvc := customers.NewService(customerRepo)
	roomSvc := rooms.NewService(roomRepo)
	catalogSvc := services.NewCatalog(serviceRepo)
	bookingSvc := bookings.NewService(logger, bookingRepo, customerRepo, roomRepo, ledgerSvc)
	orderSvc := serviceorders.NewService(logger, orderRepo, serviceRepo, customerRepo, bookingRepo, ledgerSvc)
	accountSvc := accounts.NewService(accountRepo)
	receiptSvc := receipts.NewService(receiptRepo, customerRepo, accountRepo, bookingRepo)
	dashboardSvc := dashboard.NewService(logger, dashboardRepo, cache, cfg.DashboardCacheTTL)

	router := app.NewRouter(app.RouterParams{
		Logger:              logger,
		Config:              cfg,
		CustomerHandler:     customers.NewHandler(logger, customerSvc),
		RoomHandler:         rooms.NewHandler(logger, roomSvc),
		ServiceHandler:      services.NewHandler(logger, catalogSvc),
		BookingHandler:      bookings.NewHandler(logger, bookingSvc),
		ServiceOrderHandler: serviceorders.NewHandler(logger, orderSvc),
		AccountHandler:      accounts.NewHandler(logger, accountSvc),
		LedgerHandler:       ledger.NewHandler(logger, ledgerSvc),
		ReceiptHandler:      receipts.NewHandler(logger, receiptSvc),
		DashboardHandler:    dashboard.NewHandler(logger, dashboardSvc),
		Metrics:             metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
	if cache != nil {
		_ = cache.Close()
	}
}
