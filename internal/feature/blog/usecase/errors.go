// Package usecase implements the business logic for the blog feature.
package usecase

import "errors"

var (
	// ErrPostNotFound is returned when no post with the given ID is owned by the caller.
	// A post belonging to another user yields the same error, so ownership
	// is never leaked through the error surface.
	ErrPostNotFound = errors.New("post not found")

	// ErrAuthorNotFound is returned when no author with the given ID is owned by the caller.
	ErrAuthorNotFound = errors.New("author not found")
)
