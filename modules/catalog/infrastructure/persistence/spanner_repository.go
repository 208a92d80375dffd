// Package persistence implements repository interfaces for the catalog.
package persistence

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	platformspanner "github.com/Ron9508/bookstore-backend/internal/platform/spanner"
	"github.com/Ron9508/bookstore-backend/modules/catalog/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

var bookColumns = []string{"BookID", "Title", "Author", "ISBN13", "PriceCents", "Stock", "CreatedAt", "UpdatedAt"}

// SpannerRepository implements BookRepository using Cloud Spanner.
type SpannerRepository struct {
	client *spanner.Client
}

// NewSpannerRepository creates a new Spanner-backed book repository.
func NewSpannerRepository(client *spanner.Client) *SpannerRepository {
	return &SpannerRepository{client: client}
}

// Compile-time interface check.
var _ domain.BookRepository = (*SpannerRepository)(nil)

func (r *SpannerRepository) Insert(ctx context.Context, book *domain.Book) error {
	mutations := []*spanner.Mutation{
		spanner.Insert("Books", bookColumns, bookValues(book)),
	}

	// Use existing transaction if available
	if txn, ok := platformspanner.ReadWriteTxFromContext(ctx); ok {
		return txn.BufferWrite(mutations)
	}

	_, err := r.client.Apply(ctx, mutations)
	if err != nil {
		// The unique index on ISBN13 surfaces as AlreadyExists at commit.
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return domain.ErrISBNExists
		}
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

func (r *SpannerRepository) Update(ctx context.Context, book *domain.Book) error {
	mutations := []*spanner.Mutation{
		spanner.Update("Books", bookColumns, bookValues(book)),
	}

	if txn, ok := platformspanner.ReadWriteTxFromContext(ctx); ok {
		return txn.BufferWrite(mutations)
	}

	_, err := r.client.Apply(ctx, mutations)
	if err != nil {
		switch spanner.ErrCode(err) {
		case codes.NotFound:
			return domain.ErrBookNotFound
		case codes.AlreadyExists:
			return domain.ErrISBNExists
		}
		return fmt.Errorf("failed to update book: %w", err)
	}
	return nil
}

func (r *SpannerRepository) FindByID(ctx context.Context, id domain.BookID) (*domain.Book, error) {
	rtx, ok := platformspanner.ReadTransactionFromContext(ctx)
	if !ok {
		rtx = r.client.Single()
	}

	row, err := rtx.ReadRow(ctx, "Books", spanner.Key{id.String()}, bookColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to read book: %w", err)
	}

	return scanBook(row)
}

func (r *SpannerRepository) FindAll(ctx context.Context) ([]*domain.Book, error) {
	rtx, ok := platformspanner.ReadTransactionFromContext(ctx)
	if !ok {
		rtx = r.client.Single()
	}

	stmt := spanner.Statement{
		SQL: `SELECT BookID, Title, Author, ISBN13, PriceCents, Stock, CreatedAt, UpdatedAt
		      FROM Books
		      ORDER BY Title`,
	}

	iter := rtx.Query(ctx, stmt)
	defer iter.Stop()

	var books []*domain.Book
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query books: %w", err)
		}

		book, err := scanBook(row)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, nil
}

func (r *SpannerRepository) Delete(ctx context.Context, id domain.BookID) error {
	// A bare Delete mutation is a no-op on a missing key; read first so
	// callers can distinguish 404 from success.
	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		_, err := txn.ReadRow(ctx, "Books", spanner.Key{id.String()}, []string{"BookID"})
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return domain.ErrBookNotFound
			}
			return err
		}
		return txn.BufferWrite([]*spanner.Mutation{
			spanner.Delete("Books", spanner.Key{id.String()}),
		})
	})
	if err != nil {
		if err == domain.ErrBookNotFound {
			return err
		}
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

func (r *SpannerRepository) ExistsISBN(ctx context.Context, isbn domain.ISBN, excluding domain.BookID) (bool, error) {
	rtx, ok := platformspanner.ReadTransactionFromContext(ctx)
	if !ok {
		rtx = r.client.Single()
	}

	stmt := spanner.Statement{
		SQL: `SELECT BookID FROM Books@{FORCE_INDEX=BooksByISBN}
		      WHERE ISBN13 = @isbn AND BookID != @excluding
		      LIMIT 1`,
		Params: map[string]interface{}{
			"isbn":      isbn.String(),
			"excluding": excluding.String(),
		},
	}

	iter := rtx.Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query isbn: %w", err)
	}
	return true, nil
}

func (r *SpannerRepository) PricesByIDs(ctx context.Context, ids []domain.BookID) (map[string]types.Money, error) {
	rtx, ok := platformspanner.ReadTransactionFromContext(ctx)
	if !ok {
		rtx = r.client.Single()
	}

	keys := make([]spanner.KeySet, len(ids))
	for i, id := range ids {
		keys[i] = spanner.Key{id.String()}
	}

	iter := rtx.Read(ctx, "Books", spanner.KeySets(keys...), []string{"BookID", "PriceCents"})
	defer iter.Stop()

	prices := make(map[string]types.Money, len(ids))
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read prices: %w", err)
		}

		var bookID string
		var cents int64
		if err := row.Columns(&bookID, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		prices[bookID] = types.MustNewMoney(cents)
	}

	return prices, nil
}

func bookValues(book *domain.Book) []interface{} {
	return []interface{}{
		book.ID().String(),
		book.Title(),
		book.Author(),
		book.ISBN().String(),
		book.Price().Cents(),
		book.Stock(),
		book.CreatedAt(),
		book.UpdatedAt(),
	}
}

func scanBook(row *spanner.Row) (*domain.Book, error) {
	var bookID, title, author, isbn string
	var priceCents, stock int64
	var createdAt, updatedAt time.Time

	if err := row.Columns(&bookID, &title, &author, &isbn, &priceCents, &stock, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan book: %w", err)
	}

	id, err := domain.ParseBookID(bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse book id: %w", err)
	}

	return domain.Reconstitute(
		id,
		title,
		author,
		domain.MustNewISBN(isbn),
		types.MustNewMoney(priceCents),
		stock,
		createdAt,
		updatedAt,
	), nil
}
