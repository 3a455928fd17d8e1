// internal/app/features/addresses/handler.go
package addresses

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	addressstore "github.com/dalemusser/propertyhub/internal/app/store/addresses"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves saved addresses.
type Handler struct {
	Addresses *addressstore.Store
	ErrLog    *apierrors.ErrorLogger
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Addresses: addressstore.New(db),
		ErrLog:    errLog,
		Log:       logger,
	}
}

type addressInput struct {
	FirstName string `json:"firstName" validate:"required,max=100" label:"First name"`
	LastName  string `json:"lastName" validate:"required,max=100" label:"Last name"`
	Email     string `json:"email" validate:"required,email,max=254" label:"Email"`
	Phone     string `json:"phone" validate:"required,max=50" label:"Phone"`
	Address   string `json:"address" validate:"required,max=500" label:"Address"`
	City      string `json:"city" validate:"required,max=100" label:"City"`
	State     string `json:"state" validate:"required,max=100" label:"State"`
	Country   string `json:"country" validate:"required,max=100" label:"Country"`
	Zip       string `json:"zip" validate:"required,max=20" label:"Zip"`
}

// addressPatch is the body of PUT /address: the email selects the address,
// the other fields present are changed.
type addressPatch struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Country   *string `json:"country"`
	Zip       *string `json:"zip"`
}

// HandleCreate handles POST /address.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in addressInput
	if err := formutil.DecodeJSON(w, r, &in); err != nil {
		apierrors.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Addresses.Create(ctx, models.Address{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Country:   in.Country,
		Zip:       in.Zip,
	})
	switch {
	case errors.Is(err, addressstore.ErrDuplicateEmail):
		apierrors.Error(w, http.StatusBadRequest, "An address for this email already exists.")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "create address", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusCreated, a)
}

// HandleList handles GET /address.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	all, err := h.Addresses.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list addresses", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, all)
}

// HandleUpdate handles PUT /address.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in addressPatch
	if err := formutil.DecodeJSON(w, r, &in); err != nil {
		apierrors.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if strings.TrimSpace(in.Email) == "" {
		apierrors.Error(w, http.StatusBadRequest, "Email is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Addresses.UpdateByEmail(ctx, in.Email, addressstore.Update{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Country:   in.Country,
		Zip:       in.Zip,
	})
	switch {
	case errors.Is(err, addressstore.ErrNotFound):
		apierrors.Error(w, http.StatusNotFound, "Address not found for the provided email")
		return
	case err != nil:
		h.Log.Error("update address", zap.Error(err))
		apierrors.Error(w, http.StatusInternalServerError, "Error updating address")
		return
	}
	apierrors.JSON(w, http.StatusOK, a)
}
