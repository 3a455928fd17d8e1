// internal/app/features/blogs/handler.go
package blogs

import (
	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	blogstore "github.com/dalemusser/propertyhub/internal/app/store/blogs"
	commentstore "github.com/dalemusser/propertyhub/internal/app/store/comments"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves blog posts, their comments and comment replies.
type Handler struct {
	Blogs       *blogstore.Store
	Comments    *commentstore.Store
	Uploads     *uploads.Store
	MaxUploadMB int64
	ErrLog      *apierrors.ErrorLogger
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, store *uploads.Store, maxUploadMB int64, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Blogs:       blogstore.New(db),
		Comments:    commentstore.New(db),
		Uploads:     store,
		MaxUploadMB: maxUploadMB,
		ErrLog:      errLog,
		Log:         logger,
	}
}
