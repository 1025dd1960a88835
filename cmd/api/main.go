package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"require-checklist/config"
	_ "require-checklist/docs" // Swagger docs
	"require-checklist/internal/checklist"
	"require-checklist/internal/gate"
	gateHTTP "require-checklist/internal/gate/delivery/http"
	"require-checklist/internal/github"
	"require-checklist/internal/httpserver"
	"require-checklist/internal/webhook"
	"require-checklist/pkg/log"
)

// @title       Require Checklist API
// @description Checklist gate for GitHub issues and pull requests.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Require Checklist...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "GitHub API: %s", cfg.GitHub.APIURL)

	// 3. Checklist gate
	githubClient := github.NewClient(ctx, cfg.GitHub.APIURL, cfg.GitHub.Token)
	if cfg.GitHub.Token == "" {
		logger.Warn(ctx, "GitHub token not set, only public repositories can be checked")
	}

	defaults := checklist.Options{
		RequireChecklist: cfg.Checklist.RequireChecklist,
		SkipPattern:      cfg.Checklist.SkipDescriptionRegex,
		SkipFlags:        cfg.Checklist.SkipDescriptionRegexFlags,
	}
	if _, err := checklist.NewEvaluator(defaults); err != nil {
		logger.Errorf(ctx, "Invalid checklist defaults: %v", err)
		os.Exit(1)
	}

	gateUC := gate.New(logger, githubClient, checklist.New(), gate.Config{
		Defaults:     defaults,
		SkipComments: cfg.Checklist.SkipComments,
		CacheSize:    cfg.Cache.Size,
		CacheTTL:     cfg.Cache.TTL,
	})

	checklistHandler := gateHTTP.New(logger, gateUC)

	// 4. Webhooks
	var webhookHandler httpserver.GitHubWebhookHandler
	switch {
	case !cfg.Webhook.Enabled:
		logger.Info(ctx, "Webhooks disabled")
	case cfg.Webhook.Secret == "":
		logger.Warn(ctx, "Webhooks skipped: webhook.secret is missing")
	default:
		webhookHandler = webhook.NewHandler(gateUC, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChecklistRoutes: func(rg *gin.RouterGroup) {
			gateHTTP.RegisterRoutes(rg, checklistHandler)
		},
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
