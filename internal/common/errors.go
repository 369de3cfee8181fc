package common

import "errors"

var (
	// Local storage errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors.
	ErrEmptyProfile = errors.New("at least one profile field must be set")
	ErrEmptyToken   = errors.New("token must not be empty")
	ErrEmptyPostID  = errors.New("post id must not be empty")
	ErrBioTooLong   = errors.New("bio must be at most 250 characters")
)
