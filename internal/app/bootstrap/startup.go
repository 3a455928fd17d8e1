// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs after the schema is in place and before the handler is
// built. It applies TIMEOUT_* overrides and makes sure the upload directory
// exists.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n), zap.Any("timeouts", timeouts.Current()))
	}
	if err := deps.Uploads.EnsureDir(); err != nil {
		logger.Error("upload directory unavailable", zap.String("dir", deps.Uploads.Dir()), zap.Error(err))
		return err
	}
	return nil
}
