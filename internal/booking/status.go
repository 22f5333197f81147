package booking

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a booking. Bookings are created
// pending; an administrator moves them to exactly one terminal state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid booking status transition")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

var allowedTransitions = map[Status]map[Status]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {}, // terminal
	StatusCancelled: {}, // terminal
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// Transition validates an administrator's status change. Anything other
// than pending -> confirmed|cancelled is rejected.
func (s Status) Transition(to Status) (Status, error) {
	if !CanTransition(s, to) {
		return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
	return to, nil
}

// IsPending reports whether action controls may be offered for a booking.
func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsTerminal() bool {
	m, ok := allowedTransitions[s]
	return ok && len(m) == 0
}

// Title renders the status for display, e.g. "Pending".
func (s Status) Title() string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
