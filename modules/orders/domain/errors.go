package domain

import "errors"

var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrEmptyOrder indicates an order was submitted with no line items.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrInvalidQuantity indicates a line item quantity is zero or negative.
	ErrInvalidQuantity = errors.New("item quantity must be positive")

	// ErrQuantityTooLarge indicates a line item quantity exceeds MaxLineQuantity.
	ErrQuantityTooLarge = errors.New("item quantity exceeds the per-line maximum")

	// ErrBookNotFound indicates a referenced book does not exist in the catalog.
	ErrBookNotFound = errors.New("referenced book not found")
)
