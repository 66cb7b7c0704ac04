package services

import "github.com/go-chi/chi/v5"

// MountRoutes registers the service-catalog endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/services", h.List)
	r.Post("/services", h.Create)
}
