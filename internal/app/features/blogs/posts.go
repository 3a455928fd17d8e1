// internal/app/features/blogs/posts.go
package blogs

import (
	"context"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	blogstore "github.com/dalemusser/propertyhub/internal/app/store/blogs"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate handles POST /add-blog. title, description, tags
// (comma-separated) and a "file" banner image are all required.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := formutil.ParseMultipart(r, h.MaxUploadMB); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse blog form", err, "All fields are required.")
		return
	}

	title := formutil.String(r, "title")
	description := htmlsanitize.Sanitize(formutil.String(r, "description"))
	tags := normalize.Tags(formutil.String(r, "tags"))
	banner := formutil.File(r, "file")
	if title == "" || description == "" || len(tags) == 0 || banner == nil {
		apierrors.Message(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	batch := h.Uploads.NewBatch(banner)
	if err := batch.Commit(); err != nil {
		h.ErrLog.LogServerError(w, r, "store blog banner", err, "Server error. Please try again later.")
		return
	}
	defer batch.Keep()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	b, err := h.Blogs.Create(ctx, models.Blog{
		Title:       title,
		Description: description,
		Tags:        tags,
		BannerImage: batch.Written()[0],
	})
	if err != nil {
		batch.Rollback()
		h.ErrLog.LogServerError(w, r, "create blog", err, "Server error. Please try again later.")
		return
	}
	h.Log.Info("blog created", zap.String("id", b.ID.Hex()))
	apierrors.Message(w, http.StatusCreated, "Blog created successfully!")
}

// HandleList handles GET /blogs.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	all, err := h.Blogs.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list blogs", err, "Error fetching blogs")
		return
	}
	apierrors.JSON(w, http.StatusOK, all)
}

// HandleGet handles GET /blogs/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.NotFound(w, "Blog not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	b, err := h.Blogs.GetByID(ctx, id)
	switch {
	case errors.Is(err, blogstore.ErrNotFound):
		apierrors.NotFound(w, "Blog not found")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "get blog", err, "Server error")
		return
	}
	apierrors.JSON(w, http.StatusOK, b)
}
