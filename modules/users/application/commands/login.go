package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ron9508/bookstore-backend/modules/users/domain"
)

// CredentialIssuer signs a bearer credential for an authenticated user.
type CredentialIssuer interface {
	Issue(userID, email, role string) (string, error)
}

// LoginCommand represents a login attempt.
type LoginCommand struct {
	Email    string
	Password string
}

// LoginResult carries the issued credential and the matching profile.
type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginHandler verifies credentials and issues a bearer token.
type LoginHandler struct {
	repo   domain.UserRepository
	issuer CredentialIssuer
}

func NewLoginHandler(repo domain.UserRepository, issuer CredentialIssuer) *LoginHandler {
	return &LoginHandler{
		repo:   repo,
		issuer: issuer,
	}
}

// Handle executes the login use case.
// An unknown email and a wrong password both yield ErrInvalidCredentials,
// so responses never reveal whether the email is registered.
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return LoginResult{}, domain.ErrMissingLoginField
	}

	email, err := domain.NewEmail(cmd.Email)
	if err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	user, err := h.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return LoginResult{}, domain.ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("finding user: %w", err)
	}

	if err := user.Authenticate(cmd.Password); err != nil {
		return LoginResult{}, err
	}

	signed, err := h.issuer.Issue(user.ID().String(), user.Email().String(), user.Role().String())
	if err != nil {
		return LoginResult{}, fmt.Errorf("issuing credential: %w", err)
	}

	return LoginResult{
		Token: signed,
		User: LoginUser{
			ID:    user.ID().String(),
			Name:  user.Name().String(),
			Email: user.Email().String(),
			Role:  user.Role().String(),
		},
	}, nil
}
