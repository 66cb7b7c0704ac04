package rooms

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bayside-hms/bayside-hms/internal/platform/httpx"
	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// Handler exposes the room endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs the room handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := shared.PageParams(r)
	rooms, total, err := h.service.List(r.Context(), ListRoomsRequest{
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.logger.Error("list rooms failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, shared.NewPage(rooms, page, limit, total))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "missing required fields")
		return
	}

	room, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create room failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, room)
}

// Available answers the availability query used by the booking form.
func (h *Handler) Available(w http.ResponseWriter, r *http.Request) {
	checkIn := parseDate(r.URL.Query().Get("checkInDate"))
	checkOut := parseDate(r.URL.Query().Get("checkOutDate"))

	rooms, err := h.service.Available(r.Context(), checkIn, checkOut)
	if err != nil {
		h.logger.Error("list available rooms failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if rooms == nil {
		rooms = []Room{}
	}
	httpx.JSON(w, http.StatusOK, rooms)
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
