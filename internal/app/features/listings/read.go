// internal/app/features/listings/read.go
package listings

import (
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	listingstore "github.com/dalemusser/propertyhub/internal/app/store/listings"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleList handles GET /listings.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := shortCtx(r)
	defer cancel()

	all, err := h.Listings.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list listings", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, all)
}

// HandleGet handles GET /listings/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.NotFound(w, "Listing not found")
		return
	}

	ctx, cancel := shortCtx(r)
	defer cancel()

	l, err := h.Listings.GetByID(ctx, id)
	switch {
	case errors.Is(err, listingstore.ErrNotFound):
		apierrors.NotFound(w, "Listing not found")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "get listing", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, l)
}

// HandleImages handles GET /api/listings/{id}/images: the listing's image
// names that are actually present in the upload directory.
func (h *Handler) HandleImages(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.NotFound(w, "Listing not found")
		return
	}

	ctx, cancel := shortCtx(r)
	defer cancel()

	l, err := h.Listings.GetByID(ctx, id)
	switch {
	case errors.Is(err, listingstore.ErrNotFound):
		apierrors.NotFound(w, "Listing not found")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "get listing", err, "Internal Server Error")
		return
	}

	present, err := h.Uploads.Present(l.Images)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "read upload dir", err, "Internal Server Error")
		return
	}
	if len(present) == 0 {
		apierrors.NotFound(w, "No valid images found for this listing")
		return
	}
	apierrors.JSON(w, http.StatusOK, present)
}
