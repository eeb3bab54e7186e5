package usecase

import "errors"

var (
	// ErrInvalidCredentials covers both a wrong email and a wrong password;
	// login failures are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSlug means a blog write collided with an existing slug.
	// Slugs are never auto-suffixed: the admin supplies a different one.
	ErrDuplicateSlug = errors.New("a blog with this slug already exists")

	// ErrValidation marks input the business rules reject.
	ErrValidation = errors.New("validation failed")
)
