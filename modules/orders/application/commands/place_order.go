// Package commands contains write use cases for the orders module.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ron9508/bookstore-backend/internal/platform/transaction"
	"github.com/Ron9508/bookstore-backend/modules/orders/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/events"
	"github.com/Ron9508/bookstore-backend/modules/shared/events/contracts"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// PlaceOrderCommand represents the intent to place an order.
type PlaceOrderCommand struct {
	UserID string
	Items  []domain.ItemRequest
}

// PlaceOrderResult is returned to the caller after a successful placement.
type PlaceOrderResult struct {
	OrderID string
	Total   types.Money
}

// PlaceOrderHandler handles the PlaceOrderCommand.
//
// The flow is: validate the request, snapshot current prices from the
// catalog in one batch, build the order with the snapshotted prices,
// then persist header and items in a single transaction. Prices are
// read outside the write transaction; the snapshot taken at placement
// time is the one that sticks even if the catalog changes concurrently.
type PlaceOrderHandler struct {
	repo      domain.OrderRepository
	catalog   domain.PriceCatalog
	txScope   transaction.Scope
	readScope transaction.Scope
	publisher events.Publisher
	logger    *slog.Logger
}

func NewPlaceOrderHandler(
	repo domain.OrderRepository,
	catalog domain.PriceCatalog,
	txScope transaction.Scope,
	readScope transaction.Scope,
	publisher events.Publisher,
	logger *slog.Logger,
) *PlaceOrderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlaceOrderHandler{
		repo:      repo,
		catalog:   catalog,
		txScope:   txScope,
		readScope: readScope,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the place order use case.
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	userRef, err := domain.NewUserRef(cmd.UserID)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	// Fast-fail on shape problems before touching the catalog.
	if err := domain.ValidateItems(cmd.Items); err != nil {
		return PlaceOrderResult{}, err
	}

	prices, err := h.snapshotPrices(ctx, distinctBookIDs(cmd.Items))
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("fetching price snapshot: %w", err)
	}

	order, err := domain.NewOrder(userRef, cmd.Items, prices)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	// Header and every line item commit together or not at all. Nothing
	// with external side effects runs inside the transaction function:
	// the scope may retry it on aborts.
	err = h.txScope.Execute(ctx, func(ctx context.Context) error {
		return h.repo.Save(ctx, order)
	})
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("saving order: %w", err)
	}

	if h.publisher != nil {
		event := contracts.NewOrderPlacedEvent(
			order.ID().String(),
			userRef.String(),
			order.Total().Cents(),
			len(order.Items()),
		)
		if err := h.publisher.Publish(ctx, event); err != nil {
			h.logger.ErrorContext(ctx, "failed to publish OrderPlaced event",
				slog.String("order_id", order.ID().String()),
				slog.String("error", err.Error()))
		}
	}

	return PlaceOrderResult{OrderID: order.ID().String(), Total: order.Total()}, nil
}

// snapshotPrices runs the batch catalog read inside the read scope so
// it carries the same bounded timeout as every other store operation.
func (h *PlaceOrderHandler) snapshotPrices(ctx context.Context, bookIDs []string) (map[string]types.Money, error) {
	if h.readScope == nil {
		return h.catalog.PricesByBookIDs(ctx, bookIDs)
	}
	return transaction.ExecuteWithResult(ctx, h.readScope, func(ctx context.Context) (map[string]types.Money, error) {
		return h.catalog.PricesByBookIDs(ctx, bookIDs)
	})
}

// distinctBookIDs deduplicates the requested ids for the batch price
// lookup. Duplicates in the request itself stay separate line items.
func distinctBookIDs(items []domain.ItemRequest) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.BookID]; ok {
			continue
		}
		seen[item.BookID] = struct{}{}
		ids = append(ids, item.BookID)
	}
	return ids
}
