// Package domain contains business entities and rules for orders.
package domain

import (
	"time"

	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// ItemRequest is one (book, quantity) pair from a checkout request.
type ItemRequest struct {
	BookID   string
	Quantity int64
}

// LineItem is a priced line on a committed order. UnitPrice is the
// catalog price snapshotted at placement time and never re-derived,
// no matter how the catalog changes afterwards.
type LineItem struct {
	BookID    string
	Quantity  int64
	UnitPrice types.Money
}

func (i LineItem) Subtotal() types.Money {
	return i.UnitPrice.Multiply(i.Quantity)
}

// Order is the aggregate root for the order bounded context.
// Orders are immutable once placed: there is no update path, only
// status transitions owned by an external fulfillment process.
type Order struct {
	id        OrderID
	userRef   UserRef
	items     []LineItem
	status    Status
	total     types.Money
	createdAt time.Time
}

// MaxLineQuantity caps a single line. Anything past it is not a real
// purchase, and the cap keeps subtotal arithmetic far from int64 range.
const MaxLineQuantity = 1_000_000

// ValidateItems checks a checkout request before any store access.
func ValidateItems(items []ItemRequest) error {
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if item.Quantity > MaxLineQuantity {
			return ErrQuantityTooLarge
		}
	}
	return nil
}

// NewOrder builds an order from a checkout request and a price snapshot.
// Every requested book must be present in prices or the whole order is
// rejected with ErrBookNotFound - no partial orders. Duplicate book ids
// are preserved as separate line items, each priced independently.
// The total is the exact sum of unit price times quantity across lines.
func NewOrder(userRef UserRef, items []ItemRequest, prices map[string]types.Money) (*Order, error) {
	if err := ValidateItems(items); err != nil {
		return nil, err
	}

	lines := make([]LineItem, 0, len(items))
	total := types.Money{}
	for _, item := range items {
		price, ok := prices[item.BookID]
		if !ok {
			return nil, ErrBookNotFound
		}
		line := LineItem{
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			UnitPrice: price,
		}
		// Checked arithmetic: the quantities and prices are
		// client-influenced, and a wrapped total would silently break
		// the total == sum(price * quantity) invariant.
		subtotal, err := price.MultiplyChecked(item.Quantity)
		if err != nil {
			return nil, err
		}
		total, err = total.AddChecked(subtotal)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return &Order{
		id:        NewOrderID(),
		userRef:   userRef,
		items:     lines,
		status:    StatusPending,
		total:     total,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstitute rebuilds an order from persistence.
func Reconstitute(
	id OrderID,
	userRef UserRef,
	items []LineItem,
	status Status,
	total types.Money,
	createdAt time.Time,
) *Order {
	return &Order{
		id:        id,
		userRef:   userRef,
		items:     items,
		status:    status,
		total:     total,
		createdAt: createdAt,
	}
}

// Getters

func (o *Order) ID() OrderID          { return o.id }
func (o *Order) UserRef() UserRef     { return o.userRef }
func (o *Order) Items() []LineItem    { return o.items }
func (o *Order) Status() Status       { return o.status }
func (o *Order) Total() types.Money   { return o.total }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
