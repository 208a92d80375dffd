package domain

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidUserRef indicates the user reference format is invalid.
var ErrInvalidUserRef = errors.New("invalid user reference format")

// UserRef is the orders module's own handle on the buyer who placed an
// order. Orders only ever carry the opaque id, never the account's
// domain types, so the users module can evolve without touching order
// rows or their history.
type UserRef struct {
	value string
}

// NewUserRef validates the id carried in a verified credential. The
// placement engine rejects the request before any store access if the
// subject claim is not a well-formed id.
func NewUserRef(s string) (UserRef, error) {
	if _, err := uuid.Parse(s); err != nil {
		return UserRef{}, ErrInvalidUserRef
	}
	return UserRef{value: s}, nil
}

func (r UserRef) String() string { return r.value }
func (r UserRef) IsZero() bool   { return r.value == "" }
