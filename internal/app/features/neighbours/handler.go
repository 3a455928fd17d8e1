// internal/app/features/neighbours/handler.go
package neighbours

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	neighbourstore "github.com/dalemusser/propertyhub/internal/app/store/neighbours"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const msgRequired = "All fields are required!"

// Handler serves neighbourhood entries with their banner and inner images.
type Handler struct {
	Neighbours  *neighbourstore.Store
	Uploads     *uploads.Store
	MaxUploadMB int64
	ErrLog      *apierrors.ErrorLogger
	Log         *zap.Logger
}

// NewHandler wires the neighbours handler to db and the upload store.
func NewHandler(db *mongo.Database, store *uploads.Store, maxUploadMB int64, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Neighbours:  neighbourstore.New(db),
		Uploads:     store,
		MaxUploadMB: maxUploadMB,
		ErrLog:      errLog,
		Log:         logger,
	}
}

// HandleCreate handles POST /neighbour. Both images are required.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := formutil.ParseMultipart(r, h.MaxUploadMB); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse neighbour form", err, msgRequired)
		return
	}

	n := models.Neighbour{
		Title:       formutil.String(r, "title"),
		Distance:    formutil.String(r, "distance"),
		Description: formutil.String(r, "description"),
	}
	banner := formutil.File(r, "banner_image")
	inner := formutil.File(r, "inner_image")
	if n.Title == "" || n.Distance == "" || n.Description == "" || banner == nil || inner == nil {
		apierrors.Message(w, http.StatusBadRequest, msgRequired)
		return
	}

	batch := h.Uploads.NewBatch(banner, inner)
	if err := batch.Commit(); err != nil {
		h.ErrLog.LogServerError(w, r, "store neighbour images", err, "Internal Server Error")
		return
	}
	defer batch.Keep()
	names := batch.Written()
	n.BannerImage, n.InnerImage = names[0], names[1]

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Neighbours.Create(ctx, n); err != nil {
		batch.Rollback()
		h.ErrLog.LogServerError(w, r, "create neighbour", err, "Internal Server Error")
		return
	}
	apierrors.Message(w, http.StatusCreated, "Neighbor added successfully!")
}

// HandleList handles GET /neighbour.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	all, err := h.Neighbours.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list neighbours", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, all)
}
