package domain

import "strings"

// ISBN is a value object for an ISBN-13 identifier.
// Exactly 13 characters, unique across the catalog.
type ISBN struct {
	value string
}

const isbnLength = 13

// NewISBN creates a validated ISBN value object.
func NewISBN(value string) (ISBN, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ISBN{}, ErrISBNRequired
	}
	if len(value) != isbnLength {
		return ISBN{}, ErrISBNLength
	}
	return ISBN{value: value}, nil
}

// MustNewISBN creates an ISBN, panicking if invalid.
// Use only for trusted input (e.g., from database).
func MustNewISBN(value string) ISBN {
	isbn, err := NewISBN(value)
	if err != nil {
		panic(err)
	}
	return isbn
}

func (i ISBN) String() string { return i.value }
func (i ISBN) IsZero() bool   { return i.value == "" }

func (i ISBN) Equals(other ISBN) bool {
	return i.value == other.value
}
