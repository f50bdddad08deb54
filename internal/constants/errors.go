package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIEndpoint    = errors.New("no API endpoint configured, use 'wms config set api <url>' or --api")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrNotAuthenticated = errors.New("not authenticated, use 'wms login' first")
)

// Validation errors.
var (
	ErrPayloadFileRequired        = errors.New("--file is required")
	ErrAtLeastOneIDRequired       = errors.New("at least one ID is required")
	ErrUsernameRequired           = errors.New("username is required")
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
	ErrUnsupportedPayloadFormat   = errors.New("payload file must be .json, .yaml or .yml")
)

// File system errors.
var (
	ErrNotRegularFile = errors.New("path is not a regular file")
)
