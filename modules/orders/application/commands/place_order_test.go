package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Ron9508/bookstore-backend/modules/orders/application/commands"
	"github.com/Ron9508/bookstore-backend/modules/orders/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/events"
	"github.com/Ron9508/bookstore-backend/modules/shared/events/contracts"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// --- Mocks ---

type mockOrderRepository struct {
	saveFn func(ctx context.Context, order *domain.Order) error
}

func (m *mockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	return m.saveFn(ctx, order)
}

type mockPriceCatalog struct {
	pricesFn func(ctx context.Context, bookIDs []string) (map[string]types.Money, error)
}

func (m *mockPriceCatalog) PricesByBookIDs(ctx context.Context, bookIDs []string) (map[string]types.Money, error) {
	return m.pricesFn(ctx, bookIDs)
}

// passthroughScope runs fn without a real transaction.
type passthroughScope struct {
	executed bool
	fail     error
}

func (s *passthroughScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	s.executed = true
	if s.fail != nil {
		return s.fail
	}
	return fn(ctx)
}

type capturingPublisher struct {
	published []events.Event
}

func (p *capturingPublisher) Publish(ctx context.Context, evts ...events.Event) error {
	p.published = append(p.published, evts...)
	return nil
}

// --- Tests ---

func TestPlaceOrderHandler_Handle_Success(t *testing.T) {
	userID := uuid.NewString()
	bookA := uuid.NewString()
	bookB := uuid.NewString()

	var saved *domain.Order
	repo := &mockOrderRepository{
		saveFn: func(ctx context.Context, order *domain.Order) error {
			saved = order
			return nil
		},
	}
	catalog := &mockPriceCatalog{
		pricesFn: func(ctx context.Context, bookIDs []string) (map[string]types.Money, error) {
			if len(bookIDs) != 2 {
				t.Errorf("expected 2 distinct ids in batch lookup, got %d", len(bookIDs))
			}
			return map[string]types.Money{
				bookA: types.MustNewMoney(1299),
				bookB: types.MustNewMoney(850),
			}, nil
		},
	}
	scope := &passthroughScope{}
	publisher := &capturingPublisher{}

	handler := commands.NewPlaceOrderHandler(repo, catalog, scope, nil, publisher, nil)
	result, err := handler.Handle(context.Background(), commands.PlaceOrderCommand{
		UserID: userID,
		Items: []domain.ItemRequest{
			{BookID: bookA, Quantity: 2},
			{BookID: bookB, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if result.OrderID == "" {
		t.Error("expected an order id")
	}
	if result.Total.Cents() != 3448 {
		t.Errorf("expected total 3448 cents, got %d", result.Total.Cents())
	}
	if !scope.executed {
		t.Error("expected save to run inside the transaction scope")
	}
	if saved == nil {
		t.Fatal("expected order to be saved")
	}
	if len(saved.Items()) != 2 {
		t.Errorf("expected 2 line items, got %d", len(saved.Items()))
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.published))
	}
	placed, ok := publisher.published[0].(contracts.OrderPlacedEvent)
	if !ok {
		t.Fatalf("expected OrderPlacedEvent, got %T", publisher.published[0])
	}
	if placed.TotalCents != 3448 || placed.UserID != userID {
		t.Errorf("unexpected event payload %+v", placed)
	}
}

func TestPlaceOrderHandler_Handle_SnapshotUsesReadScope(t *testing.T) {
	bookID := uuid.NewString()

	readScope := &passthroughScope{}
	var snapshotInScope bool
	catalog := &mockPriceCatalog{
		pricesFn: func(ctx context.Context, bookIDs []string) (map[string]types.Money, error) {
			snapshotInScope = readScope.executed
			return map[string]types.Money{bookID: types.MustNewMoney(1000)}, nil
		},
	}
	repo := &mockOrderRepository{
		saveFn: func(ctx context.Context, order *domain.Order) error { return nil },
	}

	handler := commands.NewPlaceOrderHandler(repo, catalog, &passthroughScope{}, readScope, nil, nil)
	_, err := handler.Handle(context.Background(), commands.PlaceOrderCommand{
		UserID: uuid.NewString(),
		Items:  []domain.ItemRequest{{BookID: bookID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !snapshotInScope {
		t.Error("expected the price snapshot to run inside the read scope")
	}
}

func TestPlaceOrderHandler_Handle_DuplicateBookID(t *testing.T) {
	bookID := uuid.NewString()

	var lookups int
	catalog := &mockPriceCatalog{
		pricesFn: func(ctx context.Context, bookIDs []string) (map[string]types.Money, error) {
			lookups++
			if len(bookIDs) != 1 {
				t.Errorf("expected deduplicated lookup, got %v", bookIDs)
			}
			return map[string]types.Money{bookID: types.MustNewMoney(1000)}, nil
		},
	}
	repo := &mockOrderRepository{
		saveFn: func(ctx context.Context, order *domain.Order) error { return nil },
	}

	handler := commands.NewPlaceOrderHandler(repo, catalog, &passthroughScope{}, nil, nil, nil)
	result, err := handler.Handle(context.Background(), commands.PlaceOrderCommand{
		UserID: uuid.NewString(),
		Items: []domain.ItemRequest{
			{BookID: bookID, Quantity: 2},
			{BookID: bookID, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if lookups != 1 {
		t.Errorf("expected a single batch lookup, got %d", lookups)
	}
	if result.Total.Cents() != 5000 {
		t.Errorf("expected total 5000 cents, got %d", result.Total.Cents())
	}
}

func TestPlaceOrderHandler_Handle_UnknownBook(t *testing.T) {
	catalog := &mockPriceCatalog{
		pricesFn: func(ctx context.Context, bookIDs []string) (map[string]types.Money, error) {
			return map[string]types.Money{}, nil
		},
	}
	repo := &mockOrderRepository{
		saveFn: func(ctx context.Context, order *domain.Order) error {
			t.Error("save must not be called for an unknown book")
			return nil
		},
	}

	handler := commands.NewPlaceOrderHandler(repo, catalog, &passthroughScope{}, nil, nil, nil)
	_, err := handler.Handle(context.Background(), commands.PlaceOrderCommand{
		UserID: uuid.NewString(),
		Items:  []domain.ItemRequest{{BookID: uuid.NewString(), Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestPlaceOrderHandler_Handle_ValidationBeforeCatalog(t *testing.T) {
	catalog := &mockPriceCatalog{
		pricesFn: func(ctx context.Context, bookIDs []string) (map[string]types.Money, error) {
			t.Error("catalog must not be called for an invalid request")
			return nil, nil
		},
	}
	repo := &mockOrderRepository{
		saveFn: func(ctx context.Context, order *domain.Order) error { return nil },
	}
	handler := commands.NewPlaceOrderHandler(repo, catalog, &passthroughScope{}, nil, nil, nil)

	_, err := handler.Handle(context.Background(), commands.PlaceOrderCommand{
		UserID: uuid.NewString(),
		Items:  nil,
	})
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Errorf("expected ErrEmptyOrder, got %v", err)
	}

	_, err = handler.Handle(context.Background(), commands.PlaceOrderCommand{
		UserID: uuid.NewString(),
		Items:  []domain.ItemRequest{{BookID: uuid.NewString(), Quantity: 0}},
	})
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestPlaceOrderHandler_Handle_SaveFailure(t *testing.T) {
	bookID := uuid.NewString()
	catalog := &mockPriceCatalog{
		pricesFn: func(ctx context.Context, bookIDs []string) (map[string]types.Money, error) {
			return map[string]types.Money{bookID: types.MustNewMoney(1000)}, nil
		},
	}
	repo := &mockOrderRepository{
		saveFn: func(ctx context.Context, order *domain.Order) error { return nil },
	}
	scope := &passthroughScope{fail: errors.New("aborted")}
	publisher := &capturingPublisher{}

	handler := commands.NewPlaceOrderHandler(repo, catalog, scope, nil, publisher, nil)
	_, err := handler.Handle(context.Background(), commands.PlaceOrderCommand{
		UserID: uuid.NewString(),
		Items:  []domain.ItemRequest{{BookID: bookID, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("expected an error when the transaction fails")
	}
	if len(publisher.published) != 0 {
		t.Errorf("expected no events after a failed commit, got %d", len(publisher.published))
	}
}
