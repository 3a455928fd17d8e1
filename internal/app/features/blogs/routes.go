// internal/app/features/blogs/routes.go
package blogs

import "github.com/go-chi/chi/v5"

// MountRoutes registers the blog endpoints on r.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/add-blog", h.HandleCreate)
	r.Get("/blogs", h.HandleList)
	r.Get("/blogs/{id}", h.HandleGet)

	r.Get("/blogs/{id}/comments", h.HandleListComments)
	r.Post("/blogs/{id}/comments", h.HandleCreateComment)
	r.Post("/comments/{commentId}/reply", h.HandleReply)
}
