package domain

import "context"

// OrderRepository defines the persistence interface for orders.
// Save must persist the order header and all line items atomically:
// either everything is written or nothing is.
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
}
