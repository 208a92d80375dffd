package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ron9508/bookstore-backend/internal/platform/token"
)

func TestIssueAndVerify(t *testing.T) {
	m := token.NewManager([]byte("test-secret"))

	signed, err := m.Issue("user-1", "reader@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	id, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "reader@example.com", id.Email)
	assert.Equal(t, "customer", id.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := token.NewManager([]byte("secret-a"))
	verifier := token.NewManager([]byte("secret-b"))

	signed, err := issuer.Issue("user-1", "reader@example.com", "customer")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	m := token.NewManager([]byte("test-secret"))

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(bad)
		assert.ErrorIs(t, err, token.ErrInvalidToken, "input %q", bad)
	}
}

func TestVerify_Expired(t *testing.T) {
	now := time.Now()
	clock := &fakeClock{t: now}
	m := token.NewManager([]byte("test-secret"), token.WithClock(clock.Now))

	signed, err := m.Issue("user-1", "reader@example.com", "customer")
	require.NoError(t, err)

	// Still valid just inside the window.
	clock.t = now.Add(token.DefaultTTL - time.Minute)
	_, err = m.Verify(signed)
	require.NoError(t, err)

	// Rejected once the window has elapsed.
	clock.t = now.Add(token.DefaultTTL + time.Minute)
	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }
