// internal/app/features/listings/delete.go
package listings

import (
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	listingstore "github.com/dalemusser/propertyhub/internal/app/store/listings"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /listings/{id}. Unknown and malformed ids are
// both answered with 400. Uploaded files and reviews are left in place.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.Message(w, http.StatusBadRequest, "Invalid listing id.")
		return
	}

	ctx, cancel := shortCtx(r)
	defer cancel()

	err = h.Listings.Delete(ctx, id)
	switch {
	case errors.Is(err, listingstore.ErrNotFound):
		apierrors.Message(w, http.StatusBadRequest, "Listing not found")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "delete listing", err, "Internal Server Error")
		return
	}
	h.Log.Info("listing deleted", zap.String("id", id.Hex()))
	apierrors.Message(w, http.StatusOK, "Listing deleted successfully")
}
