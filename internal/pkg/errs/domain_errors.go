package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Quote errors
	ErrQuoteNotFound = errors.New("quote not found")

	// Sync errors
	ErrNotionNotConfigured = errors.New("notion integration not configured")
	ErrSyncAlreadyRunning  = errors.New("sync already running")

	// Settings errors
	ErrInvalidAPIKeyFormat     = errors.New("invalid notion api key format")
	ErrInvalidDatabaseIDFormat = errors.New("invalid notion database id format")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
