// Package queries contains read use cases for the orders module.
// Queries bypass the domain model and read denormalized rows directly,
// which keeps listing cheap and avoids loading aggregates just to render them.
package queries

import (
	"context"
	"time"

	"github.com/Ron9508/bookstore-backend/internal/platform/transaction"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// OrderItemDTO is one line of an order as rendered to the caller.
// Title and Author come from the catalog at read time; BookDeleted is
// set when the book has since been removed and only the snapshot remains.
type OrderItemDTO struct {
	BookID      string      `json:"book_id"`
	Title       string      `json:"title,omitempty"`
	Author      string      `json:"author,omitempty"`
	ISBN13      string      `json:"isbn13,omitempty"`
	BookDeleted bool        `json:"book_deleted,omitempty"`
	Quantity    int64       `json:"quantity"`
	UnitPrice   types.Money `json:"unit_price"`
	Subtotal    types.Money `json:"subtotal"`
}

// OrderDTO is a read model for a placed order.
type OrderDTO struct {
	ID        string         `json:"id"`
	Status    string         `json:"status"`
	Total     types.Money    `json:"total"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []OrderItemDTO `json:"items"`
}

// OrderReader reads denormalized order rows for a user, newest first.
// Orders sharing a creation timestamp are tie-broken by id so the
// listing is stable across calls.
type OrderReader interface {
	ListByUser(ctx context.Context, userID string) ([]OrderDTO, error)
}

// ListUserOrdersHandler returns the order history for one user.
type ListUserOrdersHandler struct {
	reader    OrderReader
	readScope transaction.Scope
}

func NewListUserOrdersHandler(reader OrderReader, readScope transaction.Scope) *ListUserOrdersHandler {
	return &ListUserOrdersHandler{reader: reader, readScope: readScope}
}

func (h *ListUserOrdersHandler) Handle(ctx context.Context, userID string) ([]OrderDTO, error) {
	if h.readScope == nil {
		return h.reader.ListByUser(ctx, userID)
	}
	return transaction.ExecuteWithResult(ctx, h.readScope, func(ctx context.Context) ([]OrderDTO, error) {
		return h.reader.ListByUser(ctx, userID)
	})
}
