// internal/app/features/addresses/routes.go
package addresses

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/address", h.HandleCreate)
	r.Get("/address", h.HandleList)
	r.Put("/address", h.HandleUpdate)
}
