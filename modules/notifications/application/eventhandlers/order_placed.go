// Package eventhandlers contains event handlers for the notifications module.
package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	segmentio "github.com/segmentio/kafka-go"

	"github.com/Ron9508/bookstore-backend/internal/platform/kafka"
	"github.com/Ron9508/bookstore-backend/modules/shared/events"
	"github.com/Ron9508/bookstore-backend/modules/shared/events/contracts"
)

// OrderPlacedHandler reacts to successful order placements: it logs a
// confirmation and, when a Kafka writer is configured, forwards the
// event to the external pipeline. Failures here never affect the order
// itself, which is already committed.
type OrderPlacedHandler struct {
	logger *slog.Logger
	writer *segmentio.Writer
}

func NewOrderPlacedHandler(logger *slog.Logger, writer *segmentio.Writer) *OrderPlacedHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderPlacedHandler{logger: logger, writer: writer}
}

func (h *OrderPlacedHandler) Handle(ctx context.Context, event events.Event) error {
	placed, ok := event.(contracts.OrderPlacedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	h.logger.InfoContext(ctx, "order confirmation",
		slog.String("order_id", placed.OrderID),
		slog.String("user_id", placed.UserID),
		slog.Int64("total_cents", placed.TotalCents),
		slog.Int("item_count", placed.ItemCount))

	if h.writer != nil {
		if err := kafka.PublishJSON(ctx, h.writer, placed.OrderID, placed); err != nil {
			return fmt.Errorf("forwarding order placed event: %w", err)
		}
	}
	return nil
}
