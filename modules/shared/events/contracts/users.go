package contracts

import "github.com/Ron9508/bookstore-backend/modules/shared/events"

const (
	UserRegisteredEventType events.EventType = "users.UserRegistered"
)

// UserRegisteredEvent is emitted after a new user account has been created.
type UserRegisteredEvent struct {
	events.BaseEvent
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func NewUserRegisteredEvent(userID, email, role string) UserRegisteredEvent {
	return UserRegisteredEvent{
		BaseEvent: events.NewBaseEvent(UserRegisteredEventType, userID),
		UserID:    userID,
		Email:     email,
		Role:      role,
	}
}
