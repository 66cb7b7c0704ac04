package bookings

import "github.com/go-chi/chi/v5"

// MountRoutes registers the booking endpoints. Status updates go through PUT
// on the collection with the id in the body; the admin dashboard calls it
// that way.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/bookings", h.List)
	r.Post("/bookings", h.Create)
	r.Put("/bookings", h.UpdateStatus)
}
