package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput indicates a payload failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthenticated indicates missing, wrong or expired credentials.
	ErrUnauthenticated = errors.New("unauthenticated")
)
