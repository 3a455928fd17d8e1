// internal/app/features/accounts/handler.go
package accounts

import (
	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	userstore "github.com/dalemusser/propertyhub/internal/app/store/users"
	"github.com/dalemusser/propertyhub/internal/app/system/credentials"
	"github.com/dalemusser/propertyhub/internal/app/system/ratelimit"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves sign-in, registration, the password flows and profile
// updates.
type Handler struct {
	Creds       *credentials.Manager
	Users       *userstore.Store
	Uploads     *uploads.Store
	Limiter     *ratelimit.CredentialLimiter
	MaxUploadMB int64
	ErrLog      *apierrors.ErrorLogger
	Log         *zap.Logger
}

// NewHandler wires the accounts handler. limiter may be nil to disable
// attempt limiting.
func NewHandler(
	db *mongo.Database,
	creds *credentials.Manager,
	store *uploads.Store,
	limiter *ratelimit.CredentialLimiter,
	maxUploadMB int64,
	errLog *apierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Creds:       creds,
		Users:       userstore.New(db),
		Uploads:     store,
		Limiter:     limiter,
		MaxUploadMB: maxUploadMB,
		ErrLog:      errLog,
		Log:         logger,
	}
}
