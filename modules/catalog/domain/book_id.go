package domain

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidBookID indicates the book ID format is invalid.
var ErrInvalidBookID = errors.New("invalid book ID format")

// BookID represents a unique identifier for a book.
type BookID struct {
	value string
}

func NewBookID() BookID {
	return BookID{value: uuid.New().String()}
}

func ParseBookID(s string) (BookID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return BookID{}, ErrInvalidBookID
	}
	return BookID{value: s}, nil
}

func (id BookID) String() string { return id.value }
func (id BookID) IsZero() bool   { return id.value == "" }
