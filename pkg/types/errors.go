package types

import "errors"

// Store and service errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrInvalidName   = errors.New("name must not be empty")
	ErrNoTrainers    = errors.New("no trainers available")
)

// Catalog lookup errors. Unavailable is transient and retryable by the
// caller; not-found is not.
var (
	ErrCatalogNotFound    = errors.New("catalog has no such entity")
	ErrCatalogUnavailable = errors.New("catalog is unreachable")
)
