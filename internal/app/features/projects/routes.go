// internal/app/features/projects/routes.go
package projects

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/upcoming-projects", h.HandleCreate)
	r.Get("/upcoming-projects", h.HandleList)
}
