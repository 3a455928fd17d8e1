// internal/app/features/subscribe/handler.go
package subscribe

import (
	"context"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	subscriberstore "github.com/dalemusser/propertyhub/internal/app/store/subscribers"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler records newsletter subscriptions.
type Handler struct {
	Subscribers *subscriberstore.Store
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Subscribers: subscriberstore.New(db),
		Log:         logger,
	}
}

type subscribeInput struct {
	Email string `json:"email" validate:"required,email,max=254" label:"Email"`
}

// HandleSubscribe handles POST /subscribe. Every failure is a 400 with
// {"error": …}.
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	var in subscribeInput
	if err := formutil.DecodeJSON(w, r, &in); err != nil {
		apierrors.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		apierrors.Error(w, http.StatusBadRequest, res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sub, err := h.Subscribers.Create(ctx, in.Email)
	switch {
	case errors.Is(err, subscriberstore.ErrDuplicateEmail):
		apierrors.Error(w, http.StatusBadRequest, "This email is already subscribed.")
		return
	case err != nil:
		h.Log.Error("subscribe", zap.Error(err))
		apierrors.Error(w, http.StatusBadRequest, "Could not subscribe.")
		return
	}
	apierrors.JSON(w, http.StatusCreated, sub)
}
