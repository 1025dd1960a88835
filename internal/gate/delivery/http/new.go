package http

import (
	"require-checklist/internal/gate"
	"require-checklist/pkg/log"
)

type handler struct {
	l  log.Logger
	uc gate.UseCase
}

// New creates a new HTTP handler for the checklist domain.
func New(l log.Logger, uc gate.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
