// internal/app/features/listings/update.go
package listings

import (
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	listingstore "github.com/dalemusser/propertyhub/internal/app/store/listings"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleUpdate handles PUT /listings/{id}. Only the fields sent are
// changed. Uploaded images replace the image list and an uploaded PDF
// replaces pdfFile.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.NotFound(w, "Listing not found")
		return
	}
	if err := formutil.ParseMultipart(r, h.MaxUploadMB); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse listing form", err, "Invalid form data.")
		return
	}

	form, res, err := readListingForm(r)
	if err != nil {
		writeFormError(w, err)
		return
	}
	if res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	upd := listingstore.Update{
		Title:        form.Title,
		Description:  form.Description,
		PropertyType: form.PropertyType,
		Status:       form.Status,
		Price:        form.Price,
		Address:      form.Address,
		City:         form.City,
		State:        form.State,
		Zip:          form.Zip,
		Country:      form.Country,
		Bedrooms:     form.Bedrooms,
		Bathrooms:    form.Bathrooms,
		Area:         form.Area,
		YearBuilt:    form.YearBuilt,
		Details:      form.Details,
	}

	files := formutil.Files(r, "files")
	c := uploads.Classify(files)
	if len(c.Images) > 0 {
		upd.Images = c.Images
	}
	if c.PDF != "" {
		upd.PDFFile = &c.PDF
	}

	batch := h.Uploads.NewBatch(files...)
	if err := batch.Commit(); err != nil {
		h.ErrLog.LogServerError(w, r, "store listing files", err, "Error saving files.")
		return
	}
	defer batch.Keep()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update listing")
	defer cancel()

	l, err := h.Listings.Update(ctx, id, upd)
	if err != nil {
		batch.Rollback()
		if errors.Is(err, listingstore.ErrNotFound) {
			apierrors.NotFound(w, "Listing not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "update listing", err, "Error updating listing")
		return
	}
	apierrors.JSON(w, http.StatusOK, l)
}
