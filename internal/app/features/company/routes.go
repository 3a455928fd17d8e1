// internal/app/features/company/routes.go
package company

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/company", h.HandleSave)
	r.Get("/company", h.HandleGet)
}
