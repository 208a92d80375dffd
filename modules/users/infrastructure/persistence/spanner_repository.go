// Package persistence implements repository interfaces for users.
package persistence

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	platformspanner "github.com/Ron9508/bookstore-backend/internal/platform/spanner"
	"github.com/Ron9508/bookstore-backend/modules/users/domain"
)

var userColumns = []string{"UserID", "Name", "Email", "PasswordHash", "Role", "CreatedAt"}

// SpannerRepository implements UserRepository using Cloud Spanner.
type SpannerRepository struct {
	client *spanner.Client
}

// NewSpannerRepository creates a new Spanner-backed user repository.
func NewSpannerRepository(client *spanner.Client) *SpannerRepository {
	return &SpannerRepository{client: client}
}

// Compile-time interface check.
var _ domain.UserRepository = (*SpannerRepository)(nil)

func (r *SpannerRepository) Insert(ctx context.Context, user *domain.User) error {
	mutations := []*spanner.Mutation{
		spanner.Insert("Users", userColumns,
			[]interface{}{
				user.ID().String(),
				user.Name().String(),
				user.Email().String(),
				user.PasswordHash().String(),
				user.Role().String(),
				user.CreatedAt(),
			},
		),
	}

	// Use existing transaction if available
	if txn, ok := platformspanner.ReadWriteTxFromContext(ctx); ok {
		return txn.BufferWrite(mutations)
	}

	_, err := r.client.Apply(ctx, mutations)
	if err != nil {
		// The unique index on Email surfaces as AlreadyExists at commit.
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *SpannerRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	rtx, ok := platformspanner.ReadTransactionFromContext(ctx)
	if !ok {
		rtx = r.client.Single()
	}

	row, err := rtx.ReadRow(ctx, "Users", spanner.Key{id.String()}, userColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	return scanUser(row)
}

func (r *SpannerRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	rtx, ok := platformspanner.ReadTransactionFromContext(ctx)
	if !ok {
		rtx = r.client.Single()
	}

	stmt := spanner.Statement{
		SQL: `SELECT UserID, Name, Email, PasswordHash, Role, CreatedAt
		      FROM Users@{FORCE_INDEX=UsersByEmail}
		      WHERE Email = @email
		      LIMIT 1`,
		Params: map[string]interface{}{"email": email.String()},
	}

	iter := rtx.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	return scanUser(row)
}

func (r *SpannerRepository) Exists(ctx context.Context, email domain.Email) (bool, error) {
	rtx, ok := platformspanner.ReadTransactionFromContext(ctx)
	if !ok {
		rtx = r.client.Single()
	}

	stmt := spanner.Statement{
		SQL:    `SELECT 1 FROM Users@{FORCE_INDEX=UsersByEmail} WHERE Email = @email LIMIT 1`,
		Params: map[string]interface{}{"email": email.String()},
	}

	iter := rtx.Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query email existence: %w", err)
	}
	return true, nil
}

func scanUser(row *spanner.Row) (*domain.User, error) {
	var userID, name, email, passwordHash, role string
	var createdAt time.Time

	if err := row.Columns(&userID, &name, &email, &passwordHash, &role, &createdAt); err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	id, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	nameVO, err := domain.NewName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild name: %w", err)
	}

	emailVO, err := domain.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild email: %w", err)
	}

	return domain.Reconstitute(
		id,
		nameVO,
		emailVO,
		domain.ReconstitutePasswordHash(passwordHash),
		domain.Role(role),
		createdAt,
	), nil
}
