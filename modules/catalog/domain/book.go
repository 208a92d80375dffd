// Package domain contains business entities and rules for the book catalog.
package domain

import (
	"strings"
	"time"

	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// Book is the aggregate root for the catalog bounded context.
type Book struct {
	id        BookID
	title     string
	author    string
	isbn      ISBN
	price     types.Money
	stock     int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBook creates a new Book with validated inputs.
func NewBook(title, author string, isbn ISBN, price types.Money, stock int64) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if author == "" {
		return nil, ErrAuthorRequired
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	return &Book{
		id:        NewBookID(),
		title:     title,
		author:    author,
		isbn:      isbn,
		price:     price,
		stock:     stock,
		createdAt: time.Now().UTC(),
		updatedAt: time.Now().UTC(),
	}, nil
}

// Reconstitute rebuilds a book from persistence.
func Reconstitute(
	id BookID,
	title, author string,
	isbn ISBN,
	price types.Money,
	stock int64,
	createdAt, updatedAt time.Time,
) *Book {
	return &Book{
		id:        id,
		title:     title,
		author:    author,
		isbn:      isbn,
		price:     price,
		stock:     stock,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Getters

func (b *Book) ID() BookID           { return b.id }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) ISBN() ISBN           { return b.isbn }
func (b *Book) Price() types.Money   { return b.price }
func (b *Book) Stock() int64         { return b.stock }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }

// Update replaces the book's mutable fields.
// Orders placed before the update keep the price they snapshotted.
func (b *Book) Update(title, author string, isbn ISBN, price types.Money, stock int64) error {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" {
		return ErrTitleRequired
	}
	if author == "" {
		return ErrAuthorRequired
	}
	if stock < 0 {
		return ErrNegativeStock
	}
	b.title = title
	b.author = author
	b.isbn = isbn
	b.price = price
	b.stock = stock
	b.updatedAt = time.Now().UTC()
	return nil
}
