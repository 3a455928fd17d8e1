// internal/app/features/accounts/profile.go
package accounts

import (
	"context"
	"errors"
	"mime"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	userstore "github.com/dalemusser/propertyhub/internal/app/store/users"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// profileFields is the JSON form of a profile update. Password and reset
// fields are not accepted.
type profileFields struct {
	FName    *string `json:"fname"`
	LName    *string `json:"lname"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

func (p profileFields) validate() inputval.Result {
	var res inputval.Result
	if p.Email != nil && !inputval.IsValidEmail(*p.Email) {
		res.Add("email", "Email must be a valid email address.")
	}
	if p.FName != nil && *p.FName == "" {
		res.Add("fname", "First name cannot be empty.")
	}
	if p.LName != nil && *p.LName == "" {
		res.Add("lname", "Last name cannot be empty.")
	}
	return res
}

// HandleUpdateUser handles PUT /users/{id}. The body is multipart (with an
// optional "file" part that becomes the profile image) or JSON.
func (h *Handler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.NotFound(w, "User not found")
		return
	}

	var fields profileFields
	batch := h.Uploads.NewBatch()
	if isJSON(r) {
		if err := formutil.DecodeJSON(w, r, &fields); err != nil {
			h.ErrLog.LogBadRequest(w, r, "decode profile body", err, "Invalid request body.")
			return
		}
	} else {
		if err := formutil.ParseMultipart(r, h.MaxUploadMB); err != nil {
			h.ErrLog.LogBadRequest(w, r, "parse profile form", err, "Invalid form data.")
			return
		}
		fields = profileFields{
			FName:    formutil.Optional(r, "fname"),
			LName:    formutil.Optional(r, "lname"),
			Username: formutil.Optional(r, "username"),
			Email:    formutil.Optional(r, "email"),
			Phone:    formutil.Optional(r, "phone"),
			Address:  formutil.Optional(r, "address"),
		}
		if fh := formutil.File(r, "file"); fh != nil {
			batch.Add(fh)
		}
	}
	if res := fields.validate(); res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	upd := userstore.ProfileUpdate{
		FName:    fields.FName,
		LName:    fields.LName,
		Username: fields.Username,
		Email:    fields.Email,
		Phone:    fields.Phone,
		Address:  fields.Address,
	}
	if batch.Len() > 0 {
		if err := batch.Commit(); err != nil {
			h.ErrLog.LogServerError(w, r, "save profile image", err, "Internal Server Error")
			return
		}
		defer batch.Keep()
		name := batch.Written()[0]
		upd.ProfileImage = &name
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.UpdateProfile(ctx, id, upd)
	if err != nil {
		batch.Rollback()
		switch {
		case errors.Is(err, userstore.ErrNotFound):
			apierrors.NotFound(w, "User not found")
		case errors.Is(err, userstore.ErrDuplicateEmail):
			apierrors.Message(w, http.StatusBadRequest, "A user with this email already exists.")
		default:
			h.ErrLog.LogServerError(w, r, "update user", err, "Internal Server Error")
		}
		return
	}
	apierrors.JSON(w, http.StatusOK, u.Public())
}

func isJSON(r *http.Request) bool {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/json"
}
