package commands

import (
	"context"
	"fmt"

	"github.com/Ron9508/bookstore-backend/modules/catalog/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// UpdateBookCommand replaces a book's fields.
type UpdateBookCommand struct {
	BookID string
	Title  string
	Author string
	ISBN13 string
	Price  string
	Stock  int64
}

type UpdateBookHandler struct {
	repo domain.BookRepository
}

func NewUpdateBookHandler(repo domain.BookRepository) *UpdateBookHandler {
	return &UpdateBookHandler{repo: repo}
}

func (h *UpdateBookHandler) Handle(ctx context.Context, cmd UpdateBookCommand) error {
	id, err := domain.ParseBookID(cmd.BookID)
	if err != nil {
		return err
	}

	isbn, err := domain.NewISBN(cmd.ISBN13)
	if err != nil {
		return err
	}

	price, err := types.ParseMoney(cmd.Price)
	if err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}

	book, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	exists, err := h.repo.ExistsISBN(ctx, isbn, id)
	if err != nil {
		return fmt.Errorf("checking isbn existence: %w", err)
	}
	if exists {
		return domain.ErrISBNExists
	}

	if err := book.Update(cmd.Title, cmd.Author, isbn, price, cmd.Stock); err != nil {
		return err
	}

	if err := h.repo.Update(ctx, book); err != nil {
		return fmt.Errorf("saving book: %w", err)
	}

	return nil
}
