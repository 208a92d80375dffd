package commands

import (
	"context"

	"github.com/Ron9508/bookstore-backend/modules/catalog/domain"
)

// DeleteBookCommand removes a book from the catalog.
// Line items on committed orders keep their snapshot of its price.
type DeleteBookCommand struct {
	BookID string
}

type DeleteBookHandler struct {
	repo domain.BookRepository
}

func NewDeleteBookHandler(repo domain.BookRepository) *DeleteBookHandler {
	return &DeleteBookHandler{repo: repo}
}

func (h *DeleteBookHandler) Handle(ctx context.Context, cmd DeleteBookCommand) error {
	id, err := domain.ParseBookID(cmd.BookID)
	if err != nil {
		return err
	}
	return h.repo.Delete(ctx, id)
}
