// internal/app/features/listings/create.go
package listings

import (
	"context"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"go.uber.org/zap"
)

// HandleCreate handles POST /listing.
//
// Files arrive under "files". Images are linked in upload order, the last
// PDF becomes pdfFile, and anything else is stored but not linked. Nothing
// is written to disk until the whole form has been validated.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := formutil.ParseMultipart(r, h.MaxUploadMB); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse listing form", err, "Invalid form data.")
		return
	}

	form, res, err := readListingForm(r)
	if err != nil {
		writeFormError(w, err)
		return
	}
	if form.Title == nil {
		res.Add("title", "Title is required.")
	}
	if res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	files := formutil.Files(r, "files")
	batch := h.Uploads.NewBatch(files...)
	if err := batch.Commit(); err != nil {
		h.ErrLog.LogServerError(w, r, "store listing files", err, "Error saving files.")
		return
	}
	defer batch.Keep()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create listing")
	defer cancel()

	listing, err := h.Listings.Create(ctx, form.listing(uploads.Classify(files)))
	if err != nil {
		batch.Rollback()
		h.ErrLog.LogServerError(w, r, "create listing", err, "Error creating listing.")
		return
	}
	h.Log.Info("listing created",
		zap.String("id", listing.ID.Hex()),
		zap.Int("files", batch.Len()))
	apierrors.JSON(w, http.StatusCreated, listing)
}

// writeFormError reports a detail group that is not a JSON array.
func writeFormError(w http.ResponseWriter, err error) {
	var je *uploads.InvalidJSONError
	if errors.As(err, &je) {
		apierrors.Error(w, http.StatusBadRequest, je.Error())
		return
	}
	apierrors.Error(w, http.StatusBadRequest, "Invalid form data.")
}

// shortCtx bounds a single-document request.
func shortCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeouts.Short())
}
