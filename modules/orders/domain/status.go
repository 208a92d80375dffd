package domain

// Status represents the order status.
// The placement engine only ever creates pending orders; every later
// transition belongs to an external fulfillment process.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCancelled  Status = "cancelled"
	StatusFulfilled  Status = "fulfilled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCancelled, StatusFulfilled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the fulfillment state machine allows
// moving from s to next. Fulfilled and cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCancelled
	case StatusProcessing:
		return next == StatusFulfilled || next == StatusCancelled
	default:
		return false
	}
}
