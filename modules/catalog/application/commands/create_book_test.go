package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ron9508/bookstore-backend/modules/catalog/application/commands"
	"github.com/Ron9508/bookstore-backend/modules/catalog/domain"
	"github.com/Ron9508/bookstore-backend/modules/catalog/infrastructure/persistence"
)

func createBook(t *testing.T, handler *commands.CreateBookHandler, title, isbn string) string {
	t.Helper()
	id, err := handler.Handle(context.Background(), commands.CreateBookCommand{
		Title:  title,
		Author: "Author",
		ISBN13: isbn,
		Price:  "12.99",
		Stock:  5,
	})
	if err != nil {
		t.Fatalf("failed to create book: %v", err)
	}
	return id
}

func TestCreateBookHandler_Handle(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	handler := commands.NewCreateBookHandler(repo)

	id := createBook(t, handler, "Clean Architecture", "9780134494166")

	bookID, err := domain.ParseBookID(id)
	if err != nil {
		t.Fatalf("returned id is not valid: %v", err)
	}
	book, err := repo.FindByID(context.Background(), bookID)
	if err != nil {
		t.Fatalf("created book not found: %v", err)
	}
	if book.Price().Cents() != 1299 {
		t.Errorf("expected price 1299 cents, got %d", book.Price().Cents())
	}
}

func TestCreateBookHandler_Handle_DuplicateISBN(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	handler := commands.NewCreateBookHandler(repo)
	ctx := context.Background()

	id := createBook(t, handler, "Clean Architecture", "9780134494166")

	_, err := handler.Handle(ctx, commands.CreateBookCommand{
		Title:  "Impostor Edition",
		Author: "Someone Else",
		ISBN13: "9780134494166",
		Price:  "1.00",
		Stock:  1,
	})
	if !errors.Is(err, domain.ErrISBNExists) {
		t.Fatalf("expected ErrISBNExists, got %v", err)
	}

	// The existing row is untouched by the failed insert.
	bookID, _ := domain.ParseBookID(id)
	book, err := repo.FindByID(ctx, bookID)
	if err != nil {
		t.Fatalf("original book missing after conflict: %v", err)
	}
	if book.Title() != "Clean Architecture" {
		t.Errorf("original title changed to %q", book.Title())
	}
	if book.Price().Cents() != 1299 {
		t.Errorf("original price changed to %d cents", book.Price().Cents())
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 book after conflict, got %d", len(all))
	}
}

func TestUpdateBookHandler_Handle_ISBNConflict(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	create := commands.NewCreateBookHandler(repo)
	update := commands.NewUpdateBookHandler(repo)
	ctx := context.Background()

	createBook(t, create, "Clean Architecture", "9780134494166")
	otherID := createBook(t, create, "The Go Programming Language", "9780134190440")

	// Taking the first book's ISBN must conflict.
	err := update.Handle(ctx, commands.UpdateBookCommand{
		BookID: otherID,
		Title:  "The Go Programming Language",
		Author: "Donovan & Kernighan",
		ISBN13: "9780134494166",
		Price:  "39.99",
		Stock:  10,
	})
	if !errors.Is(err, domain.ErrISBNExists) {
		t.Fatalf("expected ErrISBNExists, got %v", err)
	}

	// Keeping its own ISBN is not a conflict with itself.
	err = update.Handle(ctx, commands.UpdateBookCommand{
		BookID: otherID,
		Title:  "The Go Programming Language, 2nd ed.",
		Author: "Donovan & Kernighan",
		ISBN13: "9780134190440",
		Price:  "44.99",
		Stock:  10,
	})
	if err != nil {
		t.Fatalf("update with own isbn failed: %v", err)
	}

	bookID, _ := domain.ParseBookID(otherID)
	book, err := repo.FindByID(ctx, bookID)
	if err != nil {
		t.Fatalf("updated book not found: %v", err)
	}
	if book.Title() != "The Go Programming Language, 2nd ed." {
		t.Errorf("unexpected title %q", book.Title())
	}
	if book.Price().Cents() != 4499 {
		t.Errorf("expected price 4499 cents, got %d", book.Price().Cents())
	}
}
