// Package queries contains read use cases for the users module.
package queries

import (
	"context"
	"time"

	"github.com/Ron9508/bookstore-backend/modules/users/domain"
)

// ProfileDTO is the account as rendered to its owner. The password
// hash never leaves the domain layer.
type ProfileDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// GetProfileHandler returns the authenticated user's own profile.
type GetProfileHandler struct {
	repo domain.UserRepository
}

func NewGetProfileHandler(repo domain.UserRepository) *GetProfileHandler {
	return &GetProfileHandler{repo: repo}
}

func (h *GetProfileHandler) Handle(ctx context.Context, userID string) (ProfileDTO, error) {
	id, err := domain.ParseUserID(userID)
	if err != nil {
		return ProfileDTO{}, err
	}

	user, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return ProfileDTO{}, err
	}

	return ProfileDTO{
		ID:        user.ID().String(),
		Name:      user.Name().String(),
		Email:     user.Email().String(),
		Role:      user.Role().String(),
		CreatedAt: user.CreatedAt(),
	}, nil
}
