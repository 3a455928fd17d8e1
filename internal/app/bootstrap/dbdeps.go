// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/propertyhub/internal/app/system/credentials"
	"github.com/dalemusser/propertyhub/internal/app/system/mailer"
	"github.com/dalemusser/propertyhub/internal/app/system/ratelimit"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the backends built once at startup and shared by every
// handler.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Uploads     *uploads.Store
	Mailer      *mailer.Mailer
	Credentials *credentials.Manager
	Limiter     *ratelimit.CredentialLimiter
}
