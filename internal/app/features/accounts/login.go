// internal/app/features/accounts/login.go
package accounts

import (
	"context"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	"github.com/dalemusser/propertyhub/internal/app/system/credentials"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// statusBody is the login response shape: {"status": …, "message": …} on
// failure and {"status": "Success", "user": …} on success.
type statusBody struct {
	Status  string             `json:"status"`
	Message string             `json:"message,omitempty"`
	User    *models.PublicUser `json:"user,omitempty"`
}

// HandleLogin handles POST /login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := formutil.DecodeJSON(w, r, &req); err != nil {
		apierrors.JSON(w, http.StatusBadRequest, statusBody{Status: "Failure", Message: "Invalid request body."})
		return
	}

	if !h.allow(w, r, req.Email, func(msg string) any {
		return statusBody{Status: "Failure", Message: msg}
	}) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Creds.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, credentials.ErrNotFound):
		apierrors.JSON(w, http.StatusNotFound, statusBody{Status: "Failure", Message: "No record existed"})
		return
	case errors.Is(err, credentials.ErrUnauthorized):
		h.Log.Info("login failed", zap.String("email", req.Email))
		apierrors.JSON(w, http.StatusUnauthorized, statusBody{Status: "Failure", Message: "The credentials are incorrect"})
		return
	case err != nil:
		h.Log.Error("login", zap.Error(err))
		apierrors.JSON(w, http.StatusInternalServerError, statusBody{Status: "Error", Message: "Internal Server Error"})
		return
	}

	if h.Limiter != nil {
		h.Limiter.ResetEmail(req.Email)
	}
	apierrors.JSON(w, http.StatusOK, statusBody{Status: "Success", User: &user})
}

// HandleRegister handles POST /register.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in credentials.RegisterInput
	if err := formutil.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode register body", err, "Invalid request body.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Creds.Register(ctx, in)
	if err != nil {
		var res inputval.Result
		switch {
		case errors.As(err, &res):
			apierrors.Validation(w, res)
		case errors.Is(err, credentials.ErrDuplicateEmail):
			apierrors.Message(w, http.StatusBadRequest, "A user with this email already exists.")
		default:
			h.ErrLog.LogServerError(w, r, "register user", err, "Internal Server Error")
		}
		return
	}
	apierrors.JSON(w, http.StatusCreated, user)
}

// allow applies the attempt limiter. When the attempt is refused it writes
// 429 with the body built by refuse and returns false.
func (h *Handler) allow(w http.ResponseWriter, r *http.Request, email string, refuse func(msg string) any) bool {
	if h.Limiter == nil {
		return true
	}
	ok, msg := h.Limiter.Check(r, email)
	if !ok {
		h.Log.Warn("credential attempt limited", zap.String("path", r.URL.Path))
		apierrors.JSON(w, http.StatusTooManyRequests, refuse(msg))
	}
	return ok
}
