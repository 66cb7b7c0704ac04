package customers

import "github.com/go-chi/chi/v5"

// MountRoutes registers the customer endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/customers", h.List)
	r.Post("/customers", h.Create)
	r.Delete("/customers", h.Delete)
}
