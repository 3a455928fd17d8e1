// internal/app/features/subscribe/routes.go
package subscribe

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/subscribe", h.HandleSubscribe)
}
