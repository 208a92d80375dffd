package domain_test

import (
	"testing"

	"github.com/Ron9508/bookstore-backend/modules/catalog/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

func TestNewBook(t *testing.T) {
	isbn, err := domain.NewISBN("9780134190440")
	if err != nil {
		t.Fatalf("failed to create isbn: %v", err)
	}

	book, err := domain.NewBook("The Go Programming Language", "Donovan & Kernighan", isbn, types.MustNewMoney(3999), 12)
	if err != nil {
		t.Fatalf("failed to create book: %v", err)
	}

	if book.ID().IsZero() {
		t.Error("expected book to have an ID")
	}
	if book.Title() != "The Go Programming Language" {
		t.Errorf("unexpected title %q", book.Title())
	}
	if book.Price().Cents() != 3999 {
		t.Errorf("expected price 3999 cents, got %d", book.Price().Cents())
	}
}

func TestNewBook_Validation(t *testing.T) {
	isbn := domain.MustNewISBN("9780134190440")

	tests := []struct {
		name    string
		title   string
		author  string
		stock   int64
		wantErr error
	}{
		{"missing title", "", "Author", 0, domain.ErrTitleRequired},
		{"blank title", "   ", "Author", 0, domain.ErrTitleRequired},
		{"missing author", "Title", "", 0, domain.ErrAuthorRequired},
		{"negative stock", "Title", "Author", -1, domain.ErrNegativeStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewBook(tt.title, tt.author, isbn, types.Money{}, tt.stock)
			if err != tt.wantErr {
				t.Errorf("NewBook() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestISBN_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid", "9780134190440", nil},
		{"valid after trim", " 9780134190440 ", nil},
		{"empty", "", domain.ErrISBNRequired},
		{"too short", "978013419044", domain.ErrISBNLength},
		{"too long", "97801341904401", domain.ErrISBNLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewISBN(tt.input)
			if err != tt.wantErr {
				t.Errorf("NewISBN(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
