// Package domain contains the business entities and rules for users.
// This is the innermost layer - it has no dependencies on outer layers.
package domain

import (
	"time"
)

// User is the aggregate root for the user bounded context.
// Accounts are created at signup and never updated by this core.
type User struct {
	id           UserID
	name         Name
	email        Email
	passwordHash PasswordHash
	role         Role
	createdAt    time.Time
}

// NewUser creates a new User with validated inputs.
// Factory function enforces all invariants at creation time.
func NewUser(name Name, email Email, passwordHash PasswordHash, role Role) *User {
	return &User{
		id:           NewUserID(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    time.Now().UTC(),
	}
}

// Reconstitute recreates a User from persistence.
// Used by repositories to rebuild aggregates from stored data.
func Reconstitute(
	id UserID,
	name Name,
	email Email,
	passwordHash PasswordHash,
	role Role,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

// Getters - expose state without allowing direct mutation

func (u *User) ID() UserID                 { return u.id }
func (u *User) Name() Name                 { return u.name }
func (u *User) Email() Email               { return u.email }
func (u *User) PasswordHash() PasswordHash { return u.passwordHash }
func (u *User) Role() Role                 { return u.role }
func (u *User) CreatedAt() time.Time       { return u.createdAt }

// Authenticate checks a plaintext password against the stored hash.
// Returns ErrInvalidCredentials on mismatch; the plaintext is never
// stored or logged.
func (u *User) Authenticate(password string) error {
	if !u.passwordHash.Matches(password) {
		return ErrInvalidCredentials
	}
	return nil
}
