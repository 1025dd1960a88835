package webhook

import (
	"encoding/json"
	"fmt"
	"time"

	"require-checklist/internal/model"
)

// Event types accepted on the GitHub endpoint.
const (
	EventIssues       = "issues"
	EventIssueComment = "issue_comment"
	EventPullRequest  = "pull_request"
	EventPing         = "ping"
)

// relevantActions lists the actions that can change a checklist verdict.
var relevantActions = map[string]map[string]bool{
	EventIssues:       {"opened": true, "edited": true, "reopened": true},
	EventIssueComment: {"created": true, "edited": true, "deleted": true},
	EventPullRequest:  {"opened": true, "edited": true, "reopened": true, "synchronize": true, "ready_for_review": true},
}

type repositoryPayload struct {
	FullName string `json:"full_name"`
}

type userPayload struct {
	Login string `json:"login"`
}

// GitHubWebhookParser parses GitHub webhook payloads
type GitHubWebhookParser struct {
	now func() time.Time
}

func NewGitHubParser() *GitHubWebhookParser {
	return &GitHubWebhookParser{now: time.Now}
}

// Relevant reports whether the event's action may change the verdict.
func (p *GitHubWebhookParser) Relevant(event *model.WebhookEvent) bool {
	return relevantActions[event.EventType][event.Action]
}

// ParseIssueEvent parses GitHub issues event
func (p *GitHubWebhookParser) ParseIssueEvent(payload []byte) (*model.WebhookEvent, error) {
	var event struct {
		Action string `json:"action"`
		Issue  struct {
			Number int `json:"number"`
		} `json:"issue"`
		Repository repositoryPayload `json:"repository"`
		Sender     userPayload       `json:"sender"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse issues event: %w", err)
	}

	return p.build(EventIssues, event.Action, event.Repository.FullName, event.Issue.Number, event.Sender.Login)
}

// ParseIssueCommentEvent parses GitHub issue_comment event. Comments on pull
// requests arrive here too, keyed by the pull request number.
func (p *GitHubWebhookParser) ParseIssueCommentEvent(payload []byte) (*model.WebhookEvent, error) {
	var event struct {
		Action string `json:"action"`
		Issue  struct {
			Number int `json:"number"`
		} `json:"issue"`
		Repository repositoryPayload `json:"repository"`
		Sender     userPayload       `json:"sender"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse issue_comment event: %w", err)
	}

	return p.build(EventIssueComment, event.Action, event.Repository.FullName, event.Issue.Number, event.Sender.Login)
}

// ParsePullRequestEvent parses GitHub pull_request event
func (p *GitHubWebhookParser) ParsePullRequestEvent(payload []byte) (*model.WebhookEvent, error) {
	var event struct {
		Action      string `json:"action"`
		Number      int    `json:"number"`
		PullRequest struct {
			Number int `json:"number"`
		} `json:"pull_request"`
		Repository repositoryPayload `json:"repository"`
		Sender     userPayload       `json:"sender"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse pull_request event: %w", err)
	}

	number := event.Number
	if number == 0 {
		number = event.PullRequest.Number
	}

	return p.build(EventPullRequest, event.Action, event.Repository.FullName, number, event.Sender.Login)
}

func (p *GitHubWebhookParser) build(eventType, action, fullName string, number int, sender string) (*model.WebhookEvent, error) {
	ref, err := model.ParseRepository(fullName)
	if err != nil {
		return nil, fmt.Errorf("%s event: %w", eventType, err)
	}
	if number <= 0 {
		return nil, fmt.Errorf("%s event: %w", eventType, ErrMissingNumber)
	}
	ref.Number = number

	return &model.WebhookEvent{
		Source:     model.SourceGitHub,
		EventType:  eventType,
		Action:     action,
		Issue:      ref,
		Sender:     sender,
		ReceivedAt: p.now(),
	}, nil
}
