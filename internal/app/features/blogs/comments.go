// internal/app/features/blogs/comments.go
package blogs

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	commentstore "github.com/dalemusser/propertyhub/internal/app/store/comments"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// commentInput is shared by comments and replies.
type commentInput struct {
	Name    string `json:"name" validate:"required,max=200" label:"Name"`
	Email   string `json:"email" validate:"required,email,max=254" label:"Email"`
	Website string `json:"website" validate:"max=500" label:"Website"`
	Content string `json:"content" validate:"required,max=10000" label:"Content"`
}

func (in *commentInput) clean() {
	in.Name = normalize.Name(in.Name)
	in.Email = normalize.Email(in.Email)
	in.Website = strings.TrimSpace(in.Website)
	in.Content = htmlsanitize.StripTags(in.Content)
}

// HandleListComments handles GET /blogs/{id}/comments.
func (h *Handler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	blogID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.Message(w, http.StatusBadRequest, "Invalid blog id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	comments, err := h.Comments.ListByBlog(ctx, blogID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list comments", err, "Internal server error.")
		return
	}
	apierrors.JSON(w, http.StatusOK, comments)
}

// HandleCreateComment handles POST /blogs/{id}/comments. The blog is not
// required to exist.
func (h *Handler) HandleCreateComment(w http.ResponseWriter, r *http.Request) {
	blogID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.Message(w, http.StatusBadRequest, "Invalid blog id.")
		return
	}
	var in commentInput
	if err := formutil.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode comment body", err, "Invalid request body.")
		return
	}
	in.clean()
	if res := inputval.Validate(in); res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Comments.Create(ctx, models.Comment{
		BlogID:  blogID,
		Name:    in.Name,
		Email:   in.Email,
		Website: in.Website,
		Content: in.Content,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create comment", err, "Internal server error.")
		return
	}
	apierrors.JSON(w, http.StatusCreated, c)
}

// HandleReply handles POST /comments/{commentId}/reply and returns the
// stored reply.
func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	var in commentInput
	if err := formutil.DecodeJSON(w, r, &in); err != nil && !errors.Is(err, formutil.ErrEmptyBody) {
		h.ErrLog.LogBadRequest(w, r, "decode reply body", err, "Invalid request body.")
		return
	}
	in.clean()
	if in.Name == "" || in.Email == "" || in.Content == "" {
		apierrors.Message(w, http.StatusBadRequest, "Name, email, and content are required.")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	commentID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "commentId"))
	if err != nil {
		apierrors.NotFound(w, "Comment not found.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	reply, err := h.Comments.AddReply(ctx, commentID, models.Reply{
		Name:    in.Name,
		Email:   in.Email,
		Website: in.Website,
		Content: in.Content,
	})
	switch {
	case errors.Is(err, commentstore.ErrNotFound):
		apierrors.NotFound(w, "Comment not found.")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "add reply", err, "Internal server error.")
		return
	}
	apierrors.JSON(w, http.StatusCreated, reply)
}
