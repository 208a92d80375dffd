// Package commands contains write use cases for the catalog module.
package commands

import (
	"context"
	"fmt"

	"github.com/Ron9508/bookstore-backend/modules/catalog/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// CreateBookCommand represents the intent to add a book to the catalog.
type CreateBookCommand struct {
	Title  string
	Author string
	ISBN13 string
	Price  string
	Stock  int64
}

// CreateBookHandler handles the CreateBookCommand.
type CreateBookHandler struct {
	repo domain.BookRepository
}

func NewCreateBookHandler(repo domain.BookRepository) *CreateBookHandler {
	return &CreateBookHandler{repo: repo}
}

// Handle executes the create book use case.
func (h *CreateBookHandler) Handle(ctx context.Context, cmd CreateBookCommand) (string, error) {
	isbn, err := domain.NewISBN(cmd.ISBN13)
	if err != nil {
		return "", err
	}

	price, err := types.ParseMoney(cmd.Price)
	if err != nil {
		return "", fmt.Errorf("invalid price: %w", err)
	}

	book, err := domain.NewBook(cmd.Title, cmd.Author, isbn, price, cmd.Stock)
	if err != nil {
		return "", err
	}

	// Friendly pre-check; the unique index on ISBN backstops races.
	exists, err := h.repo.ExistsISBN(ctx, isbn, domain.BookID{})
	if err != nil {
		return "", fmt.Errorf("checking isbn existence: %w", err)
	}
	if exists {
		return "", domain.ErrISBNExists
	}

	if err := h.repo.Insert(ctx, book); err != nil {
		return "", fmt.Errorf("saving book: %w", err)
	}

	return book.ID().String(), nil
}
