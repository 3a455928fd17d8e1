// internal/app/features/accountdetails/routes.go
package accountdetails

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/account-details", h.HandleSave)
	r.Get("/account-details/{userId}", h.HandleGet)
}
