package utils

// Application Constants
const (
	AppName    = "LuxuryWheels"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "EUR"
	DefaultTimeZone = "UTC"

	// File Upload
	MaxImageSize = 5 * 1024 * 1024 // 5MB

	// Vehicle images are bounded before storage.
	MaxImageWidth  = 1280
	MaxImageHeight = 960
	JPEGQuality    = 85
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidInput     = "invalid input"
	ErrInternalServer   = "internal server error"
	ErrNotFound         = "not found"
	ErrConflict         = "conflict"
	ErrValidationFailed = "validation failed"
	ErrFileUploadFailed = "file upload failed"
)
