// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	userstore "github.com/dalemusser/propertyhub/internal/app/store/users"
	"github.com/dalemusser/propertyhub/internal/app/system/credentials"
	"github.com/dalemusser/propertyhub/internal/app/system/indexes"
	"github.com/dalemusser/propertyhub/internal/app/system/mailer"
	"github.com/dalemusser/propertyhub/internal/app/system/ratelimit"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/dalemusser/propertyhub/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// ConnectDB connects to MongoDB and builds the backends that hang off it.
//
// Embedded documents (listing details, account detail arrays) decode as
// bson.M rather than bson.D so they marshal to JSON as objects.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	client, err := mongo.Connect(cctx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(cctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error("MongoDB ping failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	db := client.Database(appCfg.MongoDatabase)
	m := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		Username: appCfg.MailSMTPUser,
		Password: appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Uploads:       uploads.NewOS(appCfg.UploadDir),
		Mailer:        m,
		Credentials:   credentials.NewManager(userstore.New(db), m, appCfg.ResetURLBase, appCfg.ResetTokenTTL, logger),
		Limiter:       ratelimit.NewCredentialLimiter(),
	}, nil
}

// EnsureSchema applies collection validators, then indexes. Validators come
// first so collections exist with the right options before indexing.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure validators failed", zap.Error(err))
		return err
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	return nil
}
