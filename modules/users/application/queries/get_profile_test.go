package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Ron9508/bookstore-backend/modules/users/application/queries"
	"github.com/Ron9508/bookstore-backend/modules/users/domain"
)

type mockUserRepository struct {
	findByIDFn func(ctx context.Context, id domain.UserID) (*domain.User, error)
}

func (m *mockUserRepository) Insert(ctx context.Context, user *domain.User) error {
	panic("not used")
}

func (m *mockUserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	panic("not used")
}

func (m *mockUserRepository) Exists(ctx context.Context, email domain.Email) (bool, error) {
	panic("not used")
}

func TestGetProfileHandler_Handle(t *testing.T) {
	name, _ := domain.NewName("Test Reader")
	email, _ := domain.NewEmail("reader@example.com")
	hash, err := domain.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := domain.NewUser(name, email, hash, domain.RoleCustomer)

	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id domain.UserID) (*domain.User, error) {
			if id.String() != user.ID().String() {
				t.Errorf("unexpected id lookup %q", id.String())
			}
			return user, nil
		},
	}

	handler := queries.NewGetProfileHandler(repo)
	profile, err := handler.Handle(context.Background(), user.ID().String())
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if profile.Email != "reader@example.com" || profile.Role != "customer" {
		t.Errorf("unexpected profile %+v", profile)
	}
}

func TestGetProfileHandler_Handle_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id domain.UserID) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	handler := queries.NewGetProfileHandler(repo)
	if _, err := handler.Handle(context.Background(), uuid.NewString()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetProfileHandler_Handle_InvalidID(t *testing.T) {
	handler := queries.NewGetProfileHandler(&mockUserRepository{})
	if _, err := handler.Handle(context.Background(), "not-a-uuid"); !errors.Is(err, domain.ErrInvalidUserID) {
		t.Errorf("expected ErrInvalidUserID, got %v", err)
	}
}
