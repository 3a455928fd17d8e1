// internal/app/features/company/handler.go
package company

import (
	"context"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	companystore "github.com/dalemusser/propertyhub/internal/app/store/company"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves company profiles and their logos.
type Handler struct {
	Company     *companystore.Store
	Uploads     *uploads.Store
	MaxUploadMB int64
	ErrLog      *apierrors.ErrorLogger
	Log         *zap.Logger
}

// NewHandler wires the company handler to db and the upload store.
func NewHandler(db *mongo.Database, store *uploads.Store, maxUploadMB int64, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Company:     companystore.New(db),
		Uploads:     store,
		MaxUploadMB: maxUploadMB,
		ErrLog:      errLog,
		Log:         logger,
	}
}

// HandleSave handles POST /company. The logo is replaced only when a "file"
// part is sent.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := formutil.ParseMultipart(r, h.MaxUploadMB); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse company form", err, "Invalid form data.")
		return
	}

	c := models.Company{
		Description: formutil.String(r, "description"),
		Email:       formutil.String(r, "email"),
		Phone:       formutil.String(r, "phone"),
		Address:     formutil.String(r, "address"),
	}
	if c.Email != "" && !inputval.IsValidEmail(c.Email) {
		var res inputval.Result
		res.Add("email", "Email must be a valid email address.")
		apierrors.Validation(w, res)
		return
	}

	batch := h.Uploads.NewBatch(formutil.File(r, "file"))
	if err := batch.Commit(); err != nil {
		h.ErrLog.LogServerError(w, r, "store company logo", err, "Internal Server Error")
		return
	}
	defer batch.Keep()
	if names := batch.Written(); len(names) > 0 {
		c.Logo = names[0]
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	saved, err := h.Company.Save(ctx, c)
	if err != nil {
		batch.Rollback()
		h.ErrLog.LogServerError(w, r, "save company", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, saved)
}

// HandleGet handles GET /company.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Company.Get(ctx)
	switch {
	case errors.Is(err, companystore.ErrNotFound):
		apierrors.NotFound(w, "Company details not found")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "get company", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, c)
}
