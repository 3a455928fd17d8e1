// internal/app/features/listings/routes.go
package listings

import "github.com/go-chi/chi/v5"

// MountRoutes registers the listing endpoints on r.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/listing", h.HandleCreate)
	r.Get("/listings", h.HandleList)
	r.Get("/listings/{id}", h.HandleGet)
	r.Put("/listings/{id}", h.HandleUpdate)
	r.Delete("/listings/{id}", h.HandleDelete)
	r.Get("/api/listings/{id}/images", h.HandleImages)

	r.Post("/listing/{id}/review", h.HandleCreateReview)
	r.Get("/listing/{id}/review", h.HandleListReviews)
}
