package persistence

import (
	"context"
	"sync"

	"github.com/Ron9508/bookstore-backend/modules/catalog/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// InMemoryRepository implements BookRepository using in-memory storage.
type InMemoryRepository struct {
	mu    sync.RWMutex
	books map[string]*domain.Book
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		books: make(map[string]*domain.Book),
	}
}

// Compile-time interface check.
var _ domain.BookRepository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Insert(ctx context.Context, book *domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.books {
		if other.ISBN().Equals(book.ISBN()) {
			return domain.ErrISBNExists
		}
	}
	r.books[book.ID().String()] = book
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, book *domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[book.ID().String()]; !exists {
		return domain.ErrBookNotFound
	}
	for id, other := range r.books {
		if id != book.ID().String() && other.ISBN().Equals(book.ISBN()) {
			return domain.ErrISBNExists
		}
	}
	r.books[book.ID().String()] = book
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id domain.BookID) (*domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, exists := r.books[id.String()]
	if !exists {
		return nil, domain.ErrBookNotFound
	}
	return book, nil
}

func (r *InMemoryRepository) FindAll(ctx context.Context) ([]*domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]*domain.Book, 0, len(r.books))
	for _, book := range r.books {
		books = append(books, book)
	}
	return books, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id domain.BookID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[id.String()]; !exists {
		return domain.ErrBookNotFound
	}
	delete(r.books, id.String())
	return nil
}

func (r *InMemoryRepository) ExistsISBN(ctx context.Context, isbn domain.ISBN, excluding domain.BookID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, book := range r.books {
		if id != excluding.String() && book.ISBN().Equals(isbn) {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) PricesByIDs(ctx context.Context, ids []domain.BookID) (map[string]types.Money, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prices := make(map[string]types.Money, len(ids))
	for _, id := range ids {
		if book, exists := r.books[id.String()]; exists {
			prices[id.String()] = book.Price()
		}
	}
	return prices, nil
}
