// internal/app/features/checkout/routes.go
package checkout

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/checkout", h.HandleCreate)
	r.Get("/checkout", h.HandleList)
}
