package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ron9508/bookstore-backend/modules/shared/events"
	"github.com/Ron9508/bookstore-backend/modules/shared/events/contracts"
)

// UserRegisteredHandler logs a welcome notification for new accounts.
type UserRegisteredHandler struct {
	logger *slog.Logger
}

func NewUserRegisteredHandler(logger *slog.Logger) *UserRegisteredHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserRegisteredHandler{logger: logger}
}

func (h *UserRegisteredHandler) Handle(ctx context.Context, event events.Event) error {
	registered, ok := event.(contracts.UserRegisteredEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	h.logger.InfoContext(ctx, "welcome notification",
		slog.String("user_id", registered.UserID),
		slog.String("email", registered.Email))
	return nil
}
