// Package queries contains read use cases for the catalog module.
package queries

import (
	"context"
	"time"

	"github.com/Ron9508/bookstore-backend/modules/catalog/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// BookDTO is a read model for catalog data.
type BookDTO struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Author    string      `json:"author"`
	ISBN13    string      `json:"isbn13"`
	Price     types.Money `json:"price"`
	Stock     int64       `json:"stock"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ListBooksHandler returns the whole catalog.
type ListBooksHandler struct {
	repo domain.BookRepository
}

func NewListBooksHandler(repo domain.BookRepository) *ListBooksHandler {
	return &ListBooksHandler{repo: repo}
}

func (h *ListBooksHandler) Handle(ctx context.Context) ([]BookDTO, error) {
	books, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookDTO, len(books))
	for i, book := range books {
		dtos[i] = toBookDTO(book)
	}
	return dtos, nil
}

func toBookDTO(book *domain.Book) BookDTO {
	return BookDTO{
		ID:        book.ID().String(),
		Title:     book.Title(),
		Author:    book.Author(),
		ISBN13:    book.ISBN().String(),
		Price:     book.Price(),
		Stock:     book.Stock(),
		CreatedAt: book.CreatedAt(),
		UpdatedAt: book.UpdatedAt(),
	}
}
