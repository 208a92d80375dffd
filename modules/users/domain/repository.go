package domain

import "context"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Insert persists a new user. Returns ErrEmailExists if another
	// account already uses the email.
	Insert(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id UserID) (*User, error)
	FindByEmail(ctx context.Context, email Email) (*User, error)
	Exists(ctx context.Context, email Email) (bool, error)
}
