package rooms

import "github.com/go-chi/chi/v5"

// MountRoutes registers the room endpoints. The available route must be
// registered alongside the collection route; chi matches it before the
// wildcard handlers.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/rooms", h.List)
	r.Post("/rooms", h.Create)
	r.Get("/rooms/available", h.Available)
}
