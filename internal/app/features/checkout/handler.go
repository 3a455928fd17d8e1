// internal/app/features/checkout/handler.go
package checkout

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	checkoutstore "github.com/dalemusser/propertyhub/internal/app/store/checkouts"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler records checkout billing details.
type Handler struct {
	Checkouts *checkoutstore.Store
	ErrLog    *apierrors.ErrorLogger
	Log       *zap.Logger
}

// NewHandler wires the checkout handler to db.
func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Checkouts: checkoutstore.New(db),
		ErrLog:    errLog,
		Log:       logger,
	}
}

type itemInput struct {
	ItemID string  `json:"itemId" validate:"max=100" label:"Item ID"`
	Price  float64 `json:"price" validate:"gte=0" label:"Item price"`
}

type checkoutInput struct {
	FirstName      string      `json:"firstName" validate:"max=100" label:"First name"`
	LastName       string      `json:"lastName" validate:"max=100" label:"Last name"`
	Email          string      `json:"email" validate:"omitempty,email,max=254" label:"Email"`
	Phone          string      `json:"phone" validate:"max=50" label:"Phone"`
	CompanyName    string      `json:"componyName" validate:"max=200" label:"Company name"`
	CompanyAddress string      `json:"componyAddress" validate:"max=500" label:"Company address"`
	Address        string      `json:"address" validate:"max=500" label:"Address"`
	Country        string      `json:"country" validate:"max=100" label:"Country"`
	City           string      `json:"city" validate:"max=100" label:"City"`
	State          string      `json:"state" validate:"max=100" label:"State"`
	Zip            string      `json:"zip" validate:"max=20" label:"Zip"`
	Message        string      `json:"message" validate:"max=5000" label:"Message"`
	ItemDetails    []itemInput `json:"itemDetails" validate:"dive" label:"Items"`
	TotalPrice     float64     `json:"totalPrice" validate:"gte=0" label:"Total price"`

	// Also accepted with the corrected spelling; "compony" wins when both are sent.
	AltCompanyName    string `json:"companyName" validate:"max=200" label:"Company name"`
	AltCompanyAddress string `json:"companyAddress" validate:"max=500" label:"Company address"`
}

func (in *checkoutInput) mergeAliases() {
	if in.CompanyName == "" {
		in.CompanyName = in.AltCompanyName
	}
	if in.CompanyAddress == "" {
		in.CompanyAddress = in.AltCompanyAddress
	}
}

// HandleCreate handles POST /checkout.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in checkoutInput
	if err := formutil.DecodeJSON(w, r, &in); err != nil {
		h.Log.Debug("decode checkout body", zap.Error(err))
		apierrors.Error(w, http.StatusBadRequest, "Error saving checkout")
		return
	}
	in.mergeAliases()
	if res := inputval.Validate(in); res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	c := models.Checkout{
		FirstName:      normalize.Name(in.FirstName),
		LastName:       normalize.Name(in.LastName),
		Email:          normalize.Email(in.Email),
		Phone:          in.Phone,
		CompanyName:    in.CompanyName,
		CompanyAddress: in.CompanyAddress,
		Address:        in.Address,
		Country:        in.Country,
		City:           in.City,
		State:          in.State,
		Zip:            in.Zip,
		Message:        in.Message,
		TotalPrice:     in.TotalPrice,
	}
	for _, it := range in.ItemDetails {
		c.ItemDetails = append(c.ItemDetails, models.CheckoutItem{ItemID: it.ItemID, Price: it.Price})
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	saved, err := h.Checkouts.Create(ctx, c)
	if err != nil {
		h.Log.Error("save checkout", zap.Error(err))
		apierrors.Error(w, http.StatusInternalServerError, "Error saving checkout")
		return
	}
	apierrors.JSON(w, http.StatusCreated, saved)
}

// HandleList handles GET /checkout.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	all, err := h.Checkouts.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list checkouts", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, all)
}
