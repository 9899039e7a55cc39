package directory

import "errors"

// Typed errors for directory operations.
// These allow services to use errors.Is() for reliable error detection
// instead of fragile string matching.
var (
	// ErrUnauthorized indicates the directory rejected our API credentials (HTTP 401/403).
	ErrUnauthorized = errors.New("directory rejected credentials")

	// ErrUnavailable indicates the directory returned a server-side failure (HTTP 5xx).
	ErrUnavailable = errors.New("directory unavailable")
)
