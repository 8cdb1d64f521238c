package domain

import "fmt"

// Status represents the lifecycle state of a task.
// It is stored and serialized as one of the literal tokens below.
type Status string

// The closed set of task statuses. Any other token is rejected at the
// boundary; transitions between the values are unrestricted.
const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Validate checks that the status is one of the enumerated values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
