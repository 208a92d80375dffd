// Package orders provides order placement and order history.
// This is the public API for the orders bounded context.
package orders

import (
	"log/slog"
	"net/http"

	"github.com/Ron9508/bookstore-backend/internal/platform/httpserver"
	"github.com/Ron9508/bookstore-backend/internal/platform/transaction"
	"github.com/Ron9508/bookstore-backend/modules/orders/application/commands"
	"github.com/Ron9508/bookstore-backend/modules/orders/application/queries"
	"github.com/Ron9508/bookstore-backend/modules/orders/domain"
	httphandler "github.com/Ron9508/bookstore-backend/modules/orders/infrastructure/http"
	"github.com/Ron9508/bookstore-backend/modules/shared/events"
)

// Module is the public API for the orders bounded context.
// External communication: HTTP API (RegisterRoutes) and the
// OrderPlaced event published after each successful placement.
type Module interface {
	RegisterRoutes(mux *http.ServeMux, requireAuth httpserver.MiddlewareFunc)
}

// Config holds the module configuration.
type Config struct {
	Repository domain.OrderRepository
	Reader     queries.OrderReader
	// PriceCatalog supplies the price snapshot at placement time,
	// typically backed by the catalog module.
	PriceCatalog domain.PriceCatalog
	// TxScope wraps order placement so the header and all line items
	// commit atomically.
	TxScope transaction.Scope
	// ReadScope wraps the price snapshot and order listings with a
	// bounded read transaction; nil runs them on single-use reads.
	ReadScope transaction.Scope
	Publisher events.Publisher
	Logger    *slog.Logger
}

type module struct {
	placeOrder *commands.PlaceOrderHandler
	listOrders *queries.ListUserOrdersHandler
}

// New creates a new orders module.
func New(cfg Config) Module {
	return &module{
		placeOrder: commands.NewPlaceOrderHandler(cfg.Repository, cfg.PriceCatalog, cfg.TxScope, cfg.ReadScope, cfg.Publisher, cfg.Logger),
		listOrders: queries.NewListUserOrdersHandler(cfg.Reader, cfg.ReadScope),
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux, requireAuth httpserver.MiddlewareFunc) {
	httphandler.RegisterRoutes(mux, requireAuth, m.placeOrder, m.listOrders)
}
