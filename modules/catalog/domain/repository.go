package domain

import (
	"context"

	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// BookRepository defines persistence operations for books.
type BookRepository interface {
	// Insert persists a new book. Returns ErrISBNExists if another book
	// already carries the same ISBN.
	Insert(ctx context.Context, book *Book) error
	// Update rewrites an existing book. Returns ErrISBNExists on an ISBN
	// collision with another book.
	Update(ctx context.Context, book *Book) error
	FindByID(ctx context.Context, id BookID) (*Book, error)
	FindAll(ctx context.Context) ([]*Book, error)
	// Delete removes a book. Returns ErrBookNotFound if no row exists.
	Delete(ctx context.Context, id BookID) error
	// ExistsISBN reports whether any book other than excluding carries isbn.
	// Pass a zero BookID when creating.
	ExistsISBN(ctx context.Context, isbn ISBN, excluding BookID) (bool, error)
	// PricesByIDs reads current prices for the given book ids in one batch.
	// Unknown ids are simply absent from the result map.
	PricesByIDs(ctx context.Context, ids []BookID) (map[string]types.Money, error)
}
