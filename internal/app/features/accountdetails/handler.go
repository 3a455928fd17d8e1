// internal/app/features/accountdetails/handler.go
package accountdetails

import (
	"context"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	accountdetailsstore "github.com/dalemusser/propertyhub/internal/app/store/accountdetails"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the per-user account details record.
type Handler struct {
	Details     *accountdetailsstore.Store
	Uploads     *uploads.Store
	MaxUploadMB int64
	ErrLog      *apierrors.ErrorLogger
	Log         *zap.Logger
}

// NewHandler wires the account details handler to db and the upload store.
func NewHandler(db *mongo.Database, store *uploads.Store, maxUploadMB int64, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Details:     accountdetailsstore.New(db),
		Uploads:     store,
		MaxUploadMB: maxUploadMB,
		ErrLog:      errLog,
		Log:         logger,
	}
}

type detailsInput struct {
	UserID   string `json:"userId" validate:"required" label:"User ID"`
	FName    string `json:"fname" validate:"required,max=100" label:"First name"`
	LName    string `json:"lname" validate:"required,max=100" label:"Last name"`
	Username string `json:"username" validate:"required,max=100" label:"Username"`
	Email    string `json:"email" validate:"required,email,max=254" label:"Email"`
	Phone    string `json:"phone" validate:"required,max=50" label:"Phone"`
	Address  string `json:"address" validate:"required,max=500" label:"Address"`
}

// HandleSave handles POST /account-details. Details are upserted by userId;
// the profile image is only replaced when a "profileImage" file is sent.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := formutil.ParseMultipart(r, h.MaxUploadMB); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse account details form", err, "Invalid form data.")
		return
	}

	in := detailsInput{
		UserID:   formutil.String(r, "userId"),
		FName:    formutil.String(r, "fname"),
		LName:    formutil.String(r, "lname"),
		Username: formutil.String(r, "username"),
		Email:    formutil.String(r, "email"),
		Phone:    formutil.String(r, "phone"),
		Address:  formutil.String(r, "address"),
	}
	res := inputval.Validate(in)
	userID, err := primitive.ObjectIDFromHex(in.UserID)
	if in.UserID != "" && err != nil {
		res.Add("userId", "User ID is not valid.")
	}
	if res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	batch := h.Uploads.NewBatch(formutil.File(r, "profileImage"))
	if err := batch.Commit(); err != nil {
		h.ErrLog.LogServerError(w, r, "save profile image", err, "Internal Server Error")
		return
	}
	defer batch.Keep()
	d := models.AccountDetails{
		UserID:   userID,
		FName:    in.FName,
		LName:    in.LName,
		Username: in.Username,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
	}
	if names := batch.Written(); len(names) > 0 {
		d.ProfileImage = names[0]
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	saved, err := h.Details.UpsertByUserID(ctx, d)
	if err != nil {
		batch.Rollback()
		h.ErrLog.LogServerError(w, r, "upsert account details", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, saved)
}

// HandleGet handles GET /account-details/{userId}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userId"))
	if err != nil {
		apierrors.NotFound(w, "Account details not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.Details.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, accountdetailsstore.ErrNotFound):
		apierrors.NotFound(w, "Account details not found")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "get account details", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, d)
}
