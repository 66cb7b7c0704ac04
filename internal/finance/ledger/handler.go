package ledger

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bayside-hms/bayside-hms/internal/platform/httpx"
	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// Handler exposes the transaction endpoints.
type Handler struct {
	logger   *slog.Logger
	ledger   *Ledger
	validate *validator.Validate
}

// NewHandler constructs the transaction handler.
func NewHandler(logger *slog.Logger, ledger *Ledger) *Handler {
	return &Handler{
		logger:   logger,
		ledger:   ledger,
		validate: validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := shared.PageParams(r)
	req := ListTransactionsRequest{
		Type:  r.URL.Query().Get("type"),
		Page:  page,
		Limit: limit,
	}
	if raw := r.URL.Query().Get("account"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid account filter")
			return
		}
		req.AccountID = id
	}
	req.StartDate = parseDate(r.URL.Query().Get("startDate"))
	req.EndDate = parseDate(r.URL.Query().Get("endDate"))

	items, total, err := h.ledger.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list transactions failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, shared.NewPage(items, page, limit, total))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "missing required fields")
		return
	}

	tx, err := h.ledger.CreateManual(r.Context(), req, r.Header.Get("Idempotency-Key"))
	if err != nil {
		h.logger.Error("create transaction failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, tx)
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
