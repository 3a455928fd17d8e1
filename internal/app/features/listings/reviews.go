// internal/app/features/listings/reviews.go
package listings

import (
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type reviewInput struct {
	Name    string `json:"name" validate:"required,max=200" label:"Name"`
	Email   string `json:"email" validate:"required,email,max=254" label:"Email"`
	Website string `json:"website" validate:"max=500" label:"Website"`
	Content string `json:"content" validate:"required,max=10000" label:"Content"`
}

// HandleCreateReview handles POST /listing/{id}/review. The listing is not
// required to exist.
func (h *Handler) HandleCreateReview(w http.ResponseWriter, r *http.Request) {
	listingID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.Message(w, http.StatusBadRequest, "Invalid listing id.")
		return
	}

	var in reviewInput
	if err := formutil.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode review body", err, "Invalid request body.")
		return
	}
	in.Name = normalize.Name(in.Name)
	in.Email = normalize.Email(in.Email)
	in.Website = strings.TrimSpace(in.Website)
	in.Content = htmlsanitize.StripTags(in.Content)
	if res := inputval.Validate(in); res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	ctx, cancel := shortCtx(r)
	defer cancel()

	review, err := h.Reviews.Create(ctx, models.Review{
		ListingID: listingID,
		Name:      in.Name,
		Email:     in.Email,
		Website:   in.Website,
		Content:   in.Content,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create review", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusCreated, review)
}

// HandleListReviews handles GET /listing/{id}/review.
func (h *Handler) HandleListReviews(w http.ResponseWriter, r *http.Request) {
	listingID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.Message(w, http.StatusBadRequest, "Invalid listing id.")
		return
	}

	ctx, cancel := shortCtx(r)
	defer cancel()

	reviews, err := h.Reviews.ListByListing(ctx, listingID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list reviews", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, reviews)
}
