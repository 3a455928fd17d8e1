// internal/app/features/listings/handler.go
package listings

import (
	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	listingstore "github.com/dalemusser/propertyhub/internal/app/store/listings"
	reviewstore "github.com/dalemusser/propertyhub/internal/app/store/reviews"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves listings, their images and their reviews.
type Handler struct {
	Listings    *listingstore.Store
	Reviews     *reviewstore.Store
	Uploads     *uploads.Store
	MaxUploadMB int64
	ErrLog      *apierrors.ErrorLogger
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, store *uploads.Store, maxUploadMB int64, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Listings:    listingstore.New(db),
		Reviews:     reviewstore.New(db),
		Uploads:     store,
		MaxUploadMB: maxUploadMB,
		ErrLog:      errLog,
		Log:         logger,
	}
}
