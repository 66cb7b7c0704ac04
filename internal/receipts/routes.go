package receipts

import "github.com/go-chi/chi/v5"

// MountRoutes registers the receipt endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/receipts", h.List)
	r.Post("/receipts", h.Create)
}
