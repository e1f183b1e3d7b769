package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMasterKeyNotFound is returned when no resident master key row
	// exists in the local database.
	ErrMasterKeyNotFound = errors.New("master key not found")

	// ErrCachedMessageNotFound is returned when the message cache holds no
	// row for the requested message id.
	ErrCachedMessageNotFound = errors.New("cached message not found")
)
