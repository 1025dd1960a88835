package github

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("github: not found")
	ErrEventUnreadable = errors.New("github: event payload unreadable")
	ErrTooManyPages    = errors.New("github: pagination did not terminate")
)

// APIError is returned for non-2xx responses other than 404.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github API error %d: %s", e.StatusCode, e.Body)
}
