// internal/app/features/neighbours/routes.go
package neighbours

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/neighbour", h.HandleCreate)
	r.Get("/neighbour", h.HandleList)
}
