package dashboard

import "github.com/go-chi/chi/v5"

// MountRoutes registers the dashboard endpoint.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard/summary", h.Summary)
}
