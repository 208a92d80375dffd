package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/Ron9508/bookstore-backend/modules/orders/application/queries"
	"github.com/Ron9508/bookstore-backend/modules/orders/domain"
)

type bookMeta struct {
	title  string
	author string
	isbn   string
}

// InMemoryRepository implements OrderRepository and OrderReader using
// in-memory storage. Used for tests and local development.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	books  map[string]bookMeta
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]*domain.Order),
		books:  make(map[string]bookMeta),
	}
}

// Compile-time interface checks.
var (
	_ domain.OrderRepository = (*InMemoryRepository)(nil)
	_ queries.OrderReader    = (*InMemoryRepository)(nil)
)

// SetBookMeta registers title and author for a book id so ListByUser
// can render them, mirroring the join the Spanner reader performs.
func (r *InMemoryRepository) SetBookMeta(bookID, title, author, isbn string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books[bookID] = bookMeta{title: title, author: author, isbn: isbn}
}

func (r *InMemoryRepository) Save(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID().String()] = order
	return nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]queries.OrderDTO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []queries.OrderDTO
	for _, order := range r.orders {
		if order.UserRef().String() != userID {
			continue
		}
		dto := queries.OrderDTO{
			ID:        order.ID().String(),
			Status:    order.Status().String(),
			Total:     order.Total(),
			CreatedAt: order.CreatedAt(),
		}
		for _, item := range order.Items() {
			meta, known := r.books[item.BookID]
			dto.Items = append(dto.Items, queries.OrderItemDTO{
				BookID:      item.BookID,
				Title:       meta.title,
				Author:      meta.author,
				ISBN13:      meta.isbn,
				BookDeleted: !known,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Subtotal:    item.Subtotal(),
			})
		}
		result = append(result, dto)
	}

	// Newest first, id as the tiebreak for orders placed within the
	// same timestamp.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}
