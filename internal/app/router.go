package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bayside-hms/bayside-hms/internal/bookings"
	"github.com/bayside-hms/bayside-hms/internal/customers"
	"github.com/bayside-hms/bayside-hms/internal/dashboard"
	"github.com/bayside-hms/bayside-hms/internal/finance/accounts"
	"github.com/bayside-hms/bayside-hms/internal/finance/ledger"
	"github.com/bayside-hms/bayside-hms/internal/observability"
	"github.com/bayside-hms/bayside-hms/internal/receipts"
	"github.com/bayside-hms/bayside-hms/internal/rooms"
	"github.com/bayside-hms/bayside-hms/internal/serviceorders"
	"github.com/bayside-hms/bayside-hms/internal/services"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger              *slog.Logger
	Config              *Config
	CustomerHandler     *customers.Handler
	RoomHandler         *rooms.Handler
	ServiceHandler      *services.Handler
	BookingHandler      *bookings.Handler
	ServiceOrderHandler *serviceorders.Handler
	AccountHandler      *accounts.Handler
	LedgerHandler       *ledger.Handler
	ReceiptHandler      *receipts.Handler
	DashboardHandler    *dashboard.Handler
	Metrics             *observability.Metrics
}

// NewRouter constructs the chi.Router with Bayside defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		params.CustomerHandler.MountRoutes(r)
		params.RoomHandler.MountRoutes(r)
		params.ServiceHandler.MountRoutes(r)
		params.BookingHandler.MountRoutes(r)
		params.ServiceOrderHandler.MountRoutes(r)
		params.AccountHandler.MountRoutes(r)
		params.LedgerHandler.MountRoutes(r)
		params.ReceiptHandler.MountRoutes(r)
		params.DashboardHandler.MountRoutes(r)
	})

	return r
}
