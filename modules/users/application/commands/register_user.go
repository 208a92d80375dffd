// Package commands contains write use cases for the users module.
// Commands change state and typically don't return data (except IDs).
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ron9508/bookstore-backend/modules/shared/events"
	"github.com/Ron9508/bookstore-backend/modules/shared/events/contracts"
	"github.com/Ron9508/bookstore-backend/modules/users/domain"
)

// RegisterUserCommand represents the intent to create a new account.
type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserHandler handles the RegisterUserCommand.
type RegisterUserHandler struct {
	repo      domain.UserRepository
	publisher events.Publisher
	logger    *slog.Logger
}

func NewRegisterUserHandler(repo domain.UserRepository, publisher events.Publisher, logger *slog.Logger) *RegisterUserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegisterUserHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the register user use case.
// All validation happens before any store access.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (string, error) {
	name, err := domain.NewName(cmd.Name)
	if err != nil {
		return "", err
	}

	email, err := domain.NewEmail(cmd.Email)
	if err != nil {
		return "", err
	}

	hash, err := domain.HashPassword(cmd.Password)
	if err != nil {
		return "", err
	}

	// Check for existing email
	exists, err := h.repo.Exists(ctx, email)
	if err != nil {
		return "", fmt.Errorf("checking email existence: %w", err)
	}
	if exists {
		return "", domain.ErrEmailExists
	}

	user := domain.NewUser(name, email, hash, domain.RoleCustomer)

	if err := h.repo.Insert(ctx, user); err != nil {
		return "", fmt.Errorf("saving user: %w", err)
	}

	if h.publisher != nil {
		event := contracts.NewUserRegisteredEvent(user.ID().String(), user.Email().String(), user.Role().String())
		if err := h.publisher.Publish(ctx, event); err != nil {
			// The account is already saved; a lost event only costs
			// the welcome notification.
			h.logger.ErrorContext(ctx, "failed to publish UserRegistered event",
				slog.String("user_id", user.ID().String()),
				slog.String("error", err.Error()))
		}
	}

	return user.ID().String(), nil
}
