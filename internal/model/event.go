package model

import "time"

// WebhookSource represents the source platform
type WebhookSource string

const (
	SourceGitHub WebhookSource = "github"
	SourceManual WebhookSource = "manual"
)

// WebhookEvent represents a parsed webhook event that may affect a checklist
type WebhookEvent struct {
	Source     WebhookSource // Platform source
	DeliveryID string        // X-GitHub-Delivery header
	EventType  string        // issues, issue_comment, pull_request
	Action     string        // opened, edited, created, ...
	Issue      IssueRef      // Issue or pull request the event belongs to
	Sender     string        // Login of the user that triggered the event
	ReceivedAt time.Time     // When webhook was received
}
