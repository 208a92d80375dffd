// Package catalog provides book catalog management.
// This is the public API for the catalog bounded context.
package catalog

import (
	"context"
	"net/http"

	"github.com/Ron9508/bookstore-backend/internal/platform/httpserver"
	"github.com/Ron9508/bookstore-backend/modules/catalog/application/commands"
	"github.com/Ron9508/bookstore-backend/modules/catalog/application/queries"
	"github.com/Ron9508/bookstore-backend/modules/catalog/domain"
	httphandler "github.com/Ron9508/bookstore-backend/modules/catalog/infrastructure/http"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// Module is the public API for the catalog bounded context.
// External communication: HTTP API (RegisterRoutes).
// The orders module reads prices through PricesByBookIDs without touching
// catalog domain types.
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux, requireAuth httpserver.MiddlewareFunc)
	// PricesByBookIDs batch-reads current prices for the given book ids.
	// Unknown ids are absent from the result.
	PricesByBookIDs(ctx context.Context, bookIDs []string) (map[string]types.Money, error)
}

// Config holds the module configuration.
type Config struct {
	Repository domain.BookRepository
}

type module struct {
	repo       domain.BookRepository
	createBook *commands.CreateBookHandler
	updateBook *commands.UpdateBookHandler
	deleteBook *commands.DeleteBookHandler
	listBooks  *queries.ListBooksHandler
}

// New creates a new catalog module.
func New(cfg Config) Module {
	return &module{
		repo:       cfg.Repository,
		createBook: commands.NewCreateBookHandler(cfg.Repository),
		updateBook: commands.NewUpdateBookHandler(cfg.Repository),
		deleteBook: commands.NewDeleteBookHandler(cfg.Repository),
		listBooks:  queries.NewListBooksHandler(cfg.Repository),
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux, requireAuth httpserver.MiddlewareFunc) {
	httphandler.RegisterRoutes(mux, requireAuth, m.createBook, m.updateBook, m.deleteBook, m.listBooks)
}

func (m *module) PricesByBookIDs(ctx context.Context, bookIDs []string) (map[string]types.Money, error) {
	ids := make([]domain.BookID, 0, len(bookIDs))
	for _, raw := range bookIDs {
		id, err := domain.ParseBookID(raw)
		if err != nil {
			// An unparseable id can't exist in the catalog; leave it out
			// and let the caller treat it as missing.
			continue
		}
		ids = append(ids, id)
	}
	return m.repo.PricesByIDs(ctx, ids)
}
