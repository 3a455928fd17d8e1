// internal/app/features/accounts/password.go
package accounts

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	"github.com/dalemusser/propertyhub/internal/app/system/credentials"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type forgotRequest struct {
	Email string `json:"email"`
}

type resetRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type changeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// HandleForgotPassword handles POST /forgot-password. Responses are plain
// text.
func (h *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotRequest
	if err := formutil.DecodeJSON(w, r, &req); err != nil {
		apierrors.Text(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if !h.allow(w, r, req.Email, func(msg string) any { return map[string]string{"message": msg} }) {
		return
	}

	// Mail delivery can be slow; give it the long budget.
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "forgot password")
	defer cancel()

	sentTo, err := h.Creds.ForgotPassword(ctx, req.Email)
	switch {
	case errors.Is(err, credentials.ErrUnknownEmail):
		apierrors.Text(w, http.StatusBadRequest, "User with this email does not exist.")
		return
	case errors.Is(err, credentials.ErrMailFailed):
		apierrors.Text(w, http.StatusInternalServerError, "Error sending password reset email")
		return
	case err != nil:
		h.Log.Error("forgot password", zap.Error(err))
		apierrors.Text(w, http.StatusInternalServerError, "Error sending password reset email")
		return
	}
	apierrors.Text(w, http.StatusOK, "A password reset email has been sent to "+sentTo)
}

// HandleResetPassword handles POST /reset-password. Responses are plain text.
func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := formutil.DecodeJSON(w, r, &req); err != nil {
		apierrors.Text(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if strings.TrimSpace(req.NewPassword) == "" {
		apierrors.Text(w, http.StatusBadRequest, "New password is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Creds.ResetPassword(ctx, req.Token, req.NewPassword)
	switch {
	case errors.Is(err, credentials.ErrInvalidToken):
		apierrors.Text(w, http.StatusBadRequest, "Password reset token is invalid or has expired.")
		return
	case err != nil:
		h.Log.Error("reset password", zap.Error(err))
		apierrors.Text(w, http.StatusInternalServerError, "Error resetting password.")
		return
	}
	apierrors.Text(w, http.StatusOK, "Password has been reset successfully.")
}

// HandleChangePassword handles POST /change-password/{userId}.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userId"))
	if err != nil {
		apierrors.NotFound(w, "User not found")
		return
	}
	var req changeRequest
	if err := formutil.DecodeJSON(w, r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode change-password body", err, "Invalid request body.")
		return
	}
	if strings.TrimSpace(req.NewPassword) == "" {
		apierrors.Message(w, http.StatusBadRequest, "New password is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Creds.ChangePassword(ctx, id, req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, credentials.ErrNotFound):
		apierrors.NotFound(w, "User not found")
		return
	case errors.Is(err, credentials.ErrUnauthorized):
		apierrors.Message(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "change password", err, "Internal Server Error")
		return
	}
	apierrors.Message(w, http.StatusOK, "Password changed successfully!")
}
