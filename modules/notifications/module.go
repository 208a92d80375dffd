// Package notifications reacts to domain events from other modules.
// It has no HTTP surface; it only subscribes to the event bus.
package notifications

import (
	"fmt"
	"log/slog"

	segmentio "github.com/segmentio/kafka-go"

	"github.com/Ron9508/bookstore-backend/modules/notifications/application/eventhandlers"
	"github.com/Ron9508/bookstore-backend/modules/shared/events"
	"github.com/Ron9508/bookstore-backend/modules/shared/events/contracts"
)

// Config holds the module configuration.
type Config struct {
	Logger *slog.Logger
	// OrderEventsWriter, when set, forwards OrderPlaced events to an
	// external Kafka topic in addition to local logging.
	OrderEventsWriter *segmentio.Writer
}

// Register subscribes the module's handlers to the event bus.
func Register(subscriber events.Subscriber, cfg Config) error {
	orderPlaced := eventhandlers.NewOrderPlacedHandler(cfg.Logger, cfg.OrderEventsWriter)
	if err := subscriber.Subscribe(contracts.OrderPlacedEventType, orderPlaced); err != nil {
		return fmt.Errorf("subscribing order placed handler: %w", err)
	}

	userRegistered := eventhandlers.NewUserRegisteredHandler(cfg.Logger)
	if err := subscriber.Subscribe(contracts.UserRegisteredEventType, userRegistered); err != nil {
		return fmt.Errorf("subscribing user registered handler: %w", err)
	}
	return nil
}
