package bookings

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bayside-hms/bayside-hms/internal/platform/httpx"
	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// Handler exposes the booking endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs the booking handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := shared.PageParams(r)
	items, total, err := h.service.List(r.Context(), ListBookingsRequest{
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.logger.Error("list bookings failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, shared.NewPage(items, page, limit, total))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "missing required fields")
		return
	}

	booking, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create booking failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, booking)
}

// UpdateStatus handles PUT /bookings with an {id, status} body.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookingStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "booking ID and status are required")
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), req)
	if err != nil {
		h.logger.Error("update booking status failed",
			slog.Int64("booking", req.ID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, booking)
}
