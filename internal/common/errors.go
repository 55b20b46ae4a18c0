package common

import "errors"

// Callers should use errors.Is to match these values.
var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrInvalidID  = errors.New("invalid id")

	// Auth errors.
	ErrMissingToken     = errors.New("missing token")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidPage       = errors.New("invalid page")
	ErrInvalidPayload    = errors.New("invalid payload")

	// Object storage errors.
	ErrUpload = errors.New("upload failed")
)
