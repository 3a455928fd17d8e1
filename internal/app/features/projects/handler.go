// internal/app/features/projects/handler.go
package projects

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	projectstore "github.com/dalemusser/propertyhub/internal/app/store/projects"
	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const msgRequired = "All fields are required!"

// Handler serves projects and their attached files.
type Handler struct {
	Projects    *projectstore.Store
	Uploads     *uploads.Store
	MaxUploadMB int64
	ErrLog      *apierrors.ErrorLogger
	Log         *zap.Logger
}

// NewHandler wires the projects handler to db and the upload store.
func NewHandler(db *mongo.Database, store *uploads.Store, maxUploadMB int64, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Projects:    projectstore.New(db),
		Uploads:     store,
		MaxUploadMB: maxUploadMB,
		ErrLog:      errLog,
		Log:         logger,
	}
}

// HandleCreate handles POST /upcoming-projects.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := formutil.ParseMultipart(r, h.MaxUploadMB); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse project form", err, msgRequired)
		return
	}

	for _, name := range []string{"projectName", "type", "address", "noOfApartments", "investment"} {
		if formutil.String(r, name) == "" {
			apierrors.Message(w, http.StatusBadRequest, msgRequired)
			return
		}
	}
	file := formutil.File(r, "file")
	if file == nil {
		apierrors.Message(w, http.StatusBadRequest, msgRequired)
		return
	}

	var res inputval.Result
	p := models.UpcomingProject{
		ProjectName:    formutil.String(r, "projectName"),
		Type:           formutil.String(r, "type"),
		Address:        formutil.String(r, "address"),
		NoOfApartments: formutil.Int(r, "noOfApartments", "Number of apartments", &res),
		Investment:     formutil.Float(r, "investment", "Investment", &res),
	}
	if res.HasErrors() {
		apierrors.Validation(w, res)
		return
	}

	batch := h.Uploads.NewBatch(file)
	if err := batch.Commit(); err != nil {
		h.ErrLog.LogServerError(w, r, "store project file", err, "An error occurred while adding the project. Please try again.")
		return
	}
	defer batch.Keep()
	p.File = batch.Written()[0]

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Projects.Create(ctx, p); err != nil {
		batch.Rollback()
		h.ErrLog.LogServerError(w, r, "create project", err, "An error occurred while adding the project. Please try again.")
		return
	}
	apierrors.Message(w, http.StatusCreated, "Upcoming project added successfully!")
}

// HandleList handles GET /upcoming-projects.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	all, err := h.Projects.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list projects", err, "Internal Server Error")
		return
	}
	apierrors.JSON(w, http.StatusOK, all)
}
