package webhook

import (
	"sync"
	"time"

	"require-checklist/internal/gate"
	"require-checklist/pkg/log"
)

const recheckTimeout = 2 * time.Minute

type Handler struct {
	gateUC       gate.UseCase
	security     *SecurityValidator
	githubParser *GitHubWebhookParser
	l            log.Logger
	wg           sync.WaitGroup
}

func NewHandler(
	gateUC gate.UseCase,
	securityConfig SecurityConfig,
	l log.Logger,
) *Handler {
	return &Handler{
		gateUC:       gateUC,
		security:     NewSecurityValidator(securityConfig),
		githubParser: NewGitHubParser(),
		l:            l,
	}
}

// Wait blocks until every background re-check has finished.
func (h *Handler) Wait() {
	h.wg.Wait()
}
