// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/credentials"
	"github.com/dalemusser/propertyhub/internal/app/system/limits"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys are loaded from config files, PROPERTYHUB_* environment
// variables and --flags, in that order of increasing precedence.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "propertyhub", Desc: "MongoDB database name"},

	{Name: "upload_dir", Default: "./uploads", Desc: "Directory for uploaded files"},
	{Name: "max_upload_mb", Default: limits.DefaultUploadMB, Desc: "Multipart in-memory limit in megabytes"},

	{Name: "cors_origins", Default: "https://creativedevops.com", Desc: "Comma-separated list of allowed CORS origins"},

	{Name: "mail_smtp_host", Default: "localhost", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@propertyhub.local", Desc: "From email address"},
	{Name: "mail_from_name", Default: "PropertyHub", Desc: "From display name"},

	{Name: "reset_url_base", Default: "http://localhost:3000/reset-password", Desc: "Password reset link prefix"},
	{Name: "reset_token_ttl", Default: "1h", Desc: "Password reset token lifetime (e.g., 30m, 1h)"},
}

// LoadConfig loads WAFFLE core config and PropertyHub's app config.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PROPERTYHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		UploadDir:   appValues.String("upload_dir"),
		MaxUploadMB: appValues.Int("max_upload_mb"),

		CORSOrigins: appValues.String("cors_origins"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),

		ResetURLBase:  appValues.String("reset_url_base"),
		ResetTokenTTL: appValues.Duration("reset_token_ttl", credentials.DefaultTokenTTL),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects configuration that would fail later at connect or
// upload time.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return errors.New("mongo_database must not be empty")
	}
	if strings.TrimSpace(appCfg.UploadDir) == "" {
		return errors.New("upload_dir must not be empty")
	}
	if appCfg.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be positive, got %d", appCfg.MaxUploadMB)
	}
	if appCfg.ResetTokenTTL < time.Minute {
		return fmt.Errorf("reset_token_ttl must be at least 1m, got %s", appCfg.ResetTokenTTL)
	}
	return nil
}

// corsOrigins splits the configured origin list, dropping blanks.
func corsOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
