// Package apperr defines the error kinds services raise intentionally.
// Handlers branch on these with errors.Is instead of matching message
// strings; anything that wraps neither sentinel is treated as internal.
package apperr

import "errors"

var (
	// ErrInvalidArgument marks input rejected before any database access
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a lookup that matched no document
	ErrNotFound = errors.New("not found")
)
