package domain

import "errors"

// Domain errors - business rule violations.
// These errors are part of the domain language.
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Email errors
	ErrEmailRequired = errors.New("email is required")
	ErrEmailInvalid  = errors.New("email format is invalid")
	ErrEmailExists   = errors.New("email already exists")

	// Name errors
	ErrNameRequired = errors.New("name is required")
	ErrNameLength   = errors.New("name must be 2-100 characters")

	// Password errors
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// Login errors
	ErrMissingLoginField = errors.New("email and password are required")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so login responses never reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
