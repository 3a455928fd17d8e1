// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds PropertyHub's own configuration. WAFFLE's CoreConfig
// covers the HTTP listener, environment and logging; everything the API
// itself needs lives here.
type AppConfig struct {
	// MongoDB
	MongoURI      string
	MongoDatabase string

	// Uploaded files are written flat into UploadDir and served at /uploads.
	UploadDir   string
	MaxUploadMB int

	// Comma-separated list of origins allowed by CORS.
	CORSOrigins string

	// Email/SMTP
	MailSMTPHost string
	MailSMTPPort int
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string
	MailFromName string

	// Password reset links are ResetURLBase + "/" + token.
	ResetURLBase  string
	ResetTokenTTL time.Duration
}
