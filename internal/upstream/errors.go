package upstream

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned when the booking API rejects a login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// APIError is any other non-2xx answer from the booking API. The body is
// surfaced so call sites can log the real cause; users only ever see a
// generic notification.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("booking api error: status=%d body=%s", e.Status, e.Body)
	}
	return fmt.Sprintf("booking api error: status=%d", e.Status)
}
