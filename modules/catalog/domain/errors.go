package domain

import "errors"

// Domain errors - business rule violations.
// These errors are part of the domain language.
var (
	ErrBookNotFound = errors.New("book not found")

	ErrTitleRequired  = errors.New("title is required")
	ErrAuthorRequired = errors.New("author is required")
	ErrNegativeStock  = errors.New("stock must not be negative")

	ErrISBNRequired = errors.New("isbn13 is required")
	ErrISBNLength   = errors.New("isbn13 must be exactly 13 characters")
	ErrISBNExists   = errors.New("isbn13 already exists")
)
