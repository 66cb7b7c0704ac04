package ledger

import "github.com/go-chi/chi/v5"

// MountRoutes registers the transaction endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/transactions", h.List)
	r.Post("/transactions", h.Create)
}
