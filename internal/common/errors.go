package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound    = errors.New("resource not found")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("service unavailable")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrAccountBanned      = errors.New("account banned by administrator")
	ErrPhoneTaken         = errors.New("phone already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthorized       = errors.New("unauthorized")

	// Content errors
	ErrEmptyContent = errors.New("content cannot be empty")
	ErrPostNotFound = errors.New("post not found")
	ErrChatNotFound = errors.New("chat not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
)
