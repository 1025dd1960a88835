package http

import (
	"errors"
	"net/http"

	"require-checklist/internal/checklist"
	"require-checklist/internal/gate"
	"require-checklist/internal/github"
)

var errInvalidNumber = errors.New("issue number must be a positive integer")

// mapError translates use-case errors into an HTTP status.
func (h *handler) mapError(err error) int {
	var cfgErr *checklist.ConfigError
	switch {
	case errors.As(err, &cfgErr), errors.Is(err, gate.ErrIssueNumberMissing):
		return http.StatusBadRequest
	case errors.Is(err, github.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, gate.ErrFetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
