// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/contact", h.HandleSubmit)
	r.Get("/contact", h.HandleList)
}
