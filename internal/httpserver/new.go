package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"require-checklist/pkg/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// GitHubWebhookHandler receives GitHub webhook deliveries.
type GitHubWebhookHandler interface {
	HandleGitHubWebhook(c *gin.Context)
	Wait()
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string

	// Checklist domain
	checklistRoutes func(rg *gin.RouterGroup)

	// GitHub webhooks
	webhookHandler GitHubWebhookHandler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// ChecklistRoutes registers the checklist query API under /api/v1/checklist.
	ChecklistRoutes func(rg *gin.RouterGroup)

	// WebhookHandler serves POST /webhook/github; optional.
	WebhookHandler GitHubWebhookHandler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		checklistRoutes: cfg.ChecklistRoutes,
		webhookHandler:  cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler returns the routed engine.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
