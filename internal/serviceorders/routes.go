package serviceorders

import "github.com/go-chi/chi/v5"

// MountRoutes registers the service-order endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/service-orders", h.List)
	r.Post("/service-orders", h.Create)
}
