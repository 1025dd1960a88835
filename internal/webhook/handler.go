package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"require-checklist/internal/model"
	pkgResponse "require-checklist/pkg/response"
)

// HandleGitHubWebhook processes GitHub webhook events
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "GitHub webhook rejected: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	signature := c.GetHeader("X-Hub-Signature-256")
	if err := h.security.ValidateGitHubSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "GitHub signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	if err := h.security.CheckRateLimit(rateLimitKey(body)); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	eventType := c.GetHeader("X-GitHub-Event")

	var event *model.WebhookEvent
	switch eventType {
	case EventPing:
		pkgResponse.OK(c, gin.H{"status": "pong"})
		return
	case EventIssues:
		event, err = h.githubParser.ParseIssueEvent(body)
	case EventIssueComment:
		event, err = h.githubParser.ParseIssueCommentEvent(body)
	case EventPullRequest:
		event, err = h.githubParser.ParsePullRequestEvent(body)
	default:
		h.l.Infof(ctx, "Unsupported GitHub event type: %s", eventType)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}

	if err != nil {
		h.l.Errorf(ctx, "Failed to parse GitHub event: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}
	event.DeliveryID = c.GetHeader("X-GitHub-Delivery")

	if !h.githubParser.Relevant(event) {
		h.l.Debugf(ctx, "Ignoring %s/%s for %s", event.EventType, event.Action, event.Issue)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "action does not affect checklist"})
		return
	}

	h.gateUC.Invalidate(ctx, event.Issue)

	h.wg.Add(1)
	go h.recheckAsync(*event)

	pkgResponse.OK(c, gin.H{"status": "accepted", "issue": event.Issue.String()})
}

// recheckAsync refreshes the cached verdict in background
func (h *Handler) recheckAsync(event model.WebhookEvent) {
	defer h.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), recheckTimeout)
	defer cancel()

	h.l.Infof(ctx, "Re-checking %s after %s/%s (delivery %s)", event.Issue, event.EventType, event.Action, event.DeliveryID)

	output, err := h.gateUC.Status(ctx, event.Issue)
	if err != nil {
		h.l.Errorf(ctx, "Re-check of %s failed: %v", event.Issue, err)
		return
	}

	h.l.Infof(ctx, "Re-checked %s: passed=%t", event.Issue, output.Verdict.Passed)
}

// rateLimitKey buckets requests by lower-cased repository name, falling back
// to one shared key.
func rateLimitKey(body []byte) string {
	var peek struct {
		Repository repositoryPayload `json:"repository"`
	}
	if err := json.Unmarshal(body, &peek); err != nil || peek.Repository.FullName == "" {
		return string(model.SourceGitHub)
	}
	return strings.ToLower(peek.Repository.FullName)
}
