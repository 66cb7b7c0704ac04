package accounts

import "github.com/go-chi/chi/v5"

// MountRoutes registers the account endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/accounts", h.List)
	r.Post("/accounts", h.Create)
}
