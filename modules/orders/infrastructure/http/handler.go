// Package http provides HTTP handlers for the orders module.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ron9508/bookstore-backend/internal/platform/httpserver"
	"github.com/Ron9508/bookstore-backend/internal/platform/token"
	"github.com/Ron9508/bookstore-backend/modules/orders/application/commands"
	"github.com/Ron9508/bookstore-backend/modules/orders/application/queries"
	"github.com/Ron9508/bookstore-backend/modules/orders/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

type Handler struct {
	placeOrder *commands.PlaceOrderHandler
	listOrders *queries.ListUserOrdersHandler
}

// RegisterRoutes registers the orders module routes to the given mux.
// All order routes require authentication; the acting user comes from
// the verified token, never from the request body.
func RegisterRoutes(
	mux *http.ServeMux,
	requireAuth httpserver.MiddlewareFunc,
	placeOrder *commands.PlaceOrderHandler,
	listOrders *queries.ListUserOrdersHandler,
) {
	h := &Handler{
		placeOrder: placeOrder,
		listOrders: listOrders,
	}

	mux.Handle("POST /orders", requireAuth(http.HandlerFunc(h.handlePlaceOrder)))
	mux.Handle("GET /orders/my", requireAuth(http.HandlerFunc(h.handleListMyOrders)))
}

// Request/Response DTOs

type orderItemRequest struct {
	BookID   string `json:"book_id"`
	Quantity int64  `json:"quantity"`
}

type placeOrderRequest struct {
	Items []orderItemRequest `json:"items"`
}

type placeOrderResponse struct {
	OrderID string `json:"orderId"`
	Total   string `json:"total"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers

func (h *Handler) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := token.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]domain.ItemRequest, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.ItemRequest{BookID: item.BookID, Quantity: item.Quantity}
	}

	result, err := h.placeOrder.Handle(r.Context(), commands.PlaceOrderCommand{
		UserID: identity.UserID,
		Items:  items,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, placeOrderResponse{
		OrderID: result.OrderID,
		Total:   result.Total.String(),
	})
}

func (h *Handler) handleListMyOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := token.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	orders, err := h.listOrders.Handle(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, err)
		return
	}
	if orders == nil {
		orders = []queries.OrderDTO{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// Helper functions

func handleError(w http.ResponseWriter, err error) {
	switch {
	// A checkout referencing an unknown book is a bad request, not a
	// lookup miss: the book id came from the client's payload.
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrQuantityTooLarge),
		errors.Is(err, types.ErrAmountOverflow),
		errors.Is(err, domain.ErrBookNotFound),
		errors.Is(err, domain.ErrInvalidUserRef):
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
