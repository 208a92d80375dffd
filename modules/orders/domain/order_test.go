package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/Ron9508/bookstore-backend/modules/orders/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

func testUserRef(t *testing.T) domain.UserRef {
	t.Helper()
	ref, err := domain.NewUserRef(uuid.NewString())
	if err != nil {
		t.Fatalf("failed to create user ref: %v", err)
	}
	return ref
}

func TestNewOrder(t *testing.T) {
	userRef := testUserRef(t)
	bookA := uuid.NewString()
	bookB := uuid.NewString()

	prices := map[string]types.Money{
		bookA: types.MustNewMoney(1299), // 12.99
		bookB: types.MustNewMoney(850),  // 8.50
	}

	order, err := domain.NewOrder(userRef, []domain.ItemRequest{
		{BookID: bookA, Quantity: 2},
		{BookID: bookB, Quantity: 1},
	}, prices)
	if err != nil {
		t.Fatalf("failed to place order: %v", err)
	}

	if order.ID().IsZero() {
		t.Error("expected order to have an ID")
	}
	if order.Status() != domain.StatusPending {
		t.Errorf("expected status pending, got %s", order.Status())
	}
	if len(order.Items()) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(order.Items()))
	}
	// 2 * 12.99 + 1 * 8.50 = 34.48
	if order.Total().Cents() != 3448 {
		t.Errorf("expected total 3448 cents, got %d", order.Total().Cents())
	}
	if order.Items()[0].UnitPrice.Cents() != 1299 {
		t.Errorf("expected snapshotted unit price 1299, got %d", order.Items()[0].UnitPrice.Cents())
	}
}

func TestNewOrder_DuplicateBookIDs(t *testing.T) {
	userRef := testUserRef(t)
	bookID := uuid.NewString()

	prices := map[string]types.Money{
		bookID: types.MustNewMoney(1000), // 10.00
	}

	order, err := domain.NewOrder(userRef, []domain.ItemRequest{
		{BookID: bookID, Quantity: 2},
		{BookID: bookID, Quantity: 3},
	}, prices)
	if err != nil {
		t.Fatalf("failed to place order: %v", err)
	}

	// Duplicates survive as separate lines rather than being merged.
	if len(order.Items()) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(order.Items()))
	}
	if order.Items()[0].Quantity != 2 || order.Items()[1].Quantity != 3 {
		t.Errorf("unexpected quantities %d, %d", order.Items()[0].Quantity, order.Items()[1].Quantity)
	}
	if order.Total().Cents() != 5000 {
		t.Errorf("expected total 5000 cents, got %d", order.Total().Cents())
	}
}

func TestNewOrder_UnknownBook(t *testing.T) {
	userRef := testUserRef(t)
	known := uuid.NewString()
	unknown := uuid.NewString()

	prices := map[string]types.Money{
		known: types.MustNewMoney(1000),
	}

	_, err := domain.NewOrder(userRef, []domain.ItemRequest{
		{BookID: known, Quantity: 1},
		{BookID: unknown, Quantity: 1},
	}, prices)
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestNewOrder_HugeQuantityRejected(t *testing.T) {
	userRef := testUserRef(t)
	bookID := uuid.NewString()
	prices := map[string]types.Money{
		bookID: types.MustNewMoney(1299),
	}

	// A quantity this large would wrap the subtotal into a negative
	// total if it ever reached the arithmetic.
	_, err := domain.NewOrder(userRef, []domain.ItemRequest{
		{BookID: bookID, Quantity: 1 << 62},
	}, prices)
	if !errors.Is(err, domain.ErrQuantityTooLarge) {
		t.Errorf("expected ErrQuantityTooLarge, got %v", err)
	}

	order, err := domain.NewOrder(userRef, []domain.ItemRequest{
		{BookID: bookID, Quantity: domain.MaxLineQuantity},
	}, prices)
	if err != nil {
		t.Fatalf("max quantity should be accepted, got %v", err)
	}
	if order.Total().Cents() < 0 {
		t.Errorf("total must never be negative, got %d", order.Total().Cents())
	}
}

func TestNewOrder_SubtotalOverflow(t *testing.T) {
	userRef := testUserRef(t)
	bookID := uuid.NewString()

	// Quantity within the cap, price large enough that the multiply
	// would exceed int64.
	prices := map[string]types.Money{
		bookID: types.MustNewMoney(math.MaxInt64 / 10),
	}
	_, err := domain.NewOrder(userRef, []domain.ItemRequest{
		{BookID: bookID, Quantity: 100},
	}, prices)
	if !errors.Is(err, types.ErrAmountOverflow) {
		t.Errorf("expected ErrAmountOverflow, got %v", err)
	}
}

func TestValidateItems(t *testing.T) {
	tests := []struct {
		name    string
		items   []domain.ItemRequest
		wantErr error
	}{
		{"empty", nil, domain.ErrEmptyOrder},
		{"zero quantity", []domain.ItemRequest{{BookID: "b", Quantity: 0}}, domain.ErrInvalidQuantity},
		{"negative quantity", []domain.ItemRequest{{BookID: "b", Quantity: -1}}, domain.ErrInvalidQuantity},
		{"quantity above cap", []domain.ItemRequest{{BookID: "b", Quantity: domain.MaxLineQuantity + 1}}, domain.ErrQuantityTooLarge},
		{"valid", []domain.ItemRequest{{BookID: "b", Quantity: 1}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := domain.ValidateItems(tt.items); err != tt.wantErr {
				t.Errorf("ValidateItems() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from domain.Status
		to   domain.Status
		want bool
	}{
		{domain.StatusPending, domain.StatusProcessing, true},
		{domain.StatusPending, domain.StatusCancelled, true},
		{domain.StatusPending, domain.StatusFulfilled, false},
		{domain.StatusProcessing, domain.StatusFulfilled, true},
		{domain.StatusProcessing, domain.StatusCancelled, true},
		{domain.StatusFulfilled, domain.StatusCancelled, false},
		{domain.StatusCancelled, domain.StatusProcessing, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNewUserRef(t *testing.T) {
	if _, err := domain.NewUserRef("not-a-uuid"); !errors.Is(err, domain.ErrInvalidUserRef) {
		t.Errorf("expected ErrInvalidUserRef, got %v", err)
	}
	if _, err := domain.NewUserRef(uuid.NewString()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
