// internal/app/system/limits/limits.go
package limits

// Request body size limits. Multipart uploads are bounded separately by the
// max_upload_mb setting.
const (
	// MaxJSONBody is the largest JSON request body accepted.
	MaxJSONBody = 1 << 20 // 1 MB

	// DefaultUploadMB is the multipart limit used when none is configured.
	DefaultUploadMB = 32
)
