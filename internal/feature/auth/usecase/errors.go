// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrEmailRequired is returned when attempting to create a user with an empty email address.
	ErrEmailRequired = errors.New("user must have an email address")

	// ErrInvalidCredentials is returned when email or password does not match a registered user.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
