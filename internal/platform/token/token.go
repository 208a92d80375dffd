// Package token issues and verifies the signed bearer credentials used
// to authenticate API requests.
package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a credential is malformed, carries a bad
// signature, or its validity window has elapsed. Callers get one error for
// all three cases so responses never reveal why verification failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultTTL is the validity window for issued credentials.
const DefaultTTL = 2 * time.Hour

// Identity is the verified content of a bearer credential.
// The role claim is trusted as issued and never re-checked against the
// store; rotating a user's role does not invalidate outstanding tokens
// until they expire.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies bearer credentials with an HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithTTL overrides the credential validity window.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) { m.ttl = ttl }
}

// WithClock overrides the time source, used by tests to move past expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a Manager signing with the given secret.
func NewManager(secret []byte, opts ...Option) *Manager {
	m := &Manager{
		secret: secret,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Issue signs a credential embedding the user's id, email and role.
func (m *Manager) Issue(userID, email, role string) (string, error) {
	now := m.now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	return t.SignedString(m.secret)
}

// Verify checks the credential's signature and validity window and
// returns the embedded identity.
func (m *Manager) Verify(tokenString string) (Identity, error) {
	var c claims
	t, err := jwt.ParseWithClaims(tokenString, &c,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !t.Valid {
		return Identity{}, ErrInvalidToken
	}
	return Identity{
		UserID: c.Subject,
		Email:  c.Email,
		Role:   c.Role,
	}, nil
}

// identityKey is the context key for the authenticated identity.
type identityKey struct{}

// WithIdentity embeds a verified identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the authenticated identity from context.
// Returns (zero, false) on unauthenticated requests.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
