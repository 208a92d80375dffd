// Package http provides HTTP handlers for the catalog module.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ron9508/bookstore-backend/internal/platform/httpserver"
	"github.com/Ron9508/bookstore-backend/modules/catalog/application/commands"
	"github.com/Ron9508/bookstore-backend/modules/catalog/application/queries"
	"github.com/Ron9508/bookstore-backend/modules/catalog/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

type Handler struct {
	createBook *commands.CreateBookHandler
	updateBook *commands.UpdateBookHandler
	deleteBook *commands.DeleteBookHandler
	listBooks  *queries.ListBooksHandler
}

// RegisterRoutes registers the catalog module routes to the given mux.
// Reads are public; writes require authentication.
func RegisterRoutes(
	mux *http.ServeMux,
	requireAuth httpserver.MiddlewareFunc,
	createBook *commands.CreateBookHandler,
	updateBook *commands.UpdateBookHandler,
	deleteBook *commands.DeleteBookHandler,
	listBooks *queries.ListBooksHandler,
) {
	h := &Handler{
		createBook: createBook,
		updateBook: updateBook,
		deleteBook: deleteBook,
		listBooks:  listBooks,
	}

	mux.HandleFunc("GET /books", h.handleListBooks)
	mux.Handle("POST /books", requireAuth(http.HandlerFunc(h.handleCreateBook)))
	mux.Handle("PUT /books/{id}", requireAuth(http.HandlerFunc(h.handleUpdateBook)))
	mux.Handle("DELETE /books/{id}", requireAuth(http.HandlerFunc(h.handleDeleteBook)))
}

// Request/Response DTOs

type bookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN13 string `json:"isbn13"`
	Price  string `json:"price"`
	Stock  int64  `json:"stock"`
}

type createBookResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers

func (h *Handler) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.listBooks.Handle(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	if books == nil {
		books = []queries.BookDTO{}
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *Handler) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.CreateBookCommand{
		Title:  req.Title,
		Author: req.Author,
		ISBN13: req.ISBN13,
		Price:  req.Price,
		Stock:  req.Stock,
	}
	id, err := h.createBook.Handle(r.Context(), cmd)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createBookResponse{ID: id})
}

func (h *Handler) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.UpdateBookCommand{
		BookID: r.PathValue("id"),
		Title:  req.Title,
		Author: req.Author,
		ISBN13: req.ISBN13,
		Price:  req.Price,
		Stock:  req.Stock,
	}
	if err := h.updateBook.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	cmd := commands.DeleteBookCommand{BookID: r.PathValue("id")}
	if err := h.deleteBook.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Helper functions

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBookNotFound), errors.Is(err, domain.ErrInvalidBookID):
		writeError(w, http.StatusNotFound, domain.ErrBookNotFound.Error())
	case errors.Is(err, domain.ErrISBNExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrAuthorRequired),
		errors.Is(err, domain.ErrNegativeStock),
		errors.Is(err, domain.ErrISBNRequired),
		errors.Is(err, domain.ErrISBNLength),
		errors.Is(err, types.ErrNegativeAmount),
		errors.Is(err, types.ErrInvalidAmount),
		errors.Is(err, types.ErrSubCentPrecision):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
