// internal/app/features/accounts/routes.go
package accounts

import "github.com/go-chi/chi/v5"

// MountRoutes registers the account endpoints on r.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/login", h.HandleLogin)
	r.Post("/register", h.HandleRegister)
	r.Post("/forgot-password", h.HandleForgotPassword)
	r.Post("/reset-password", h.HandleResetPassword)
	r.Post("/change-password/{userId}", h.HandleChangePassword)
	r.Put("/users/{id}", h.HandleUpdateUser)
}
