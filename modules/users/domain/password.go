package domain

import "golang.org/x/crypto/bcrypt"

// PasswordHash is a one-way, salted hash of a user's password.
// The plaintext never leaves the constructor.
type PasswordHash struct {
	value string
}

const minPasswordLength = 8

// HashPassword validates and hashes a plaintext password.
// bcrypt embeds a per-hash salt and compares in constant time.
func HashPassword(plaintext string) (PasswordHash, error) {
	if plaintext == "" {
		return PasswordHash{}, ErrPasswordRequired
	}
	if len(plaintext) < minPasswordLength {
		return PasswordHash{}, ErrPasswordTooShort
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return PasswordHash{}, err
	}
	return PasswordHash{value: string(hashed)}, nil
}

// ReconstitutePasswordHash wraps a stored hash from persistence.
func ReconstitutePasswordHash(stored string) PasswordHash {
	return PasswordHash{value: stored}
}

// Matches reports whether plaintext hashes to this value.
func (p PasswordHash) Matches(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.value), []byte(plaintext)) == nil
}

func (p PasswordHash) String() string { return p.value }
func (p PasswordHash) IsZero() bool   { return p.value == "" }
