package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"require-checklist/internal/model"
)

func TestGitHubWebhookParser(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &GitHubWebhookParser{now: func() time.Time { return fixed }}

	t.Run("issue comment on pull request", func(t *testing.T) {
		event, err := p.ParseIssueCommentEvent([]byte(`{
			"action": "created",
			"issue": {"number": 42, "pull_request": {"url": "x"}},
			"comment": {"id": 7, "body": "- [ ] new"},
			"repository": {"full_name": "octo/hello"},
			"sender": {"login": "mona"}
		}`))
		require.NoError(t, err)
		assert.Equal(t, &model.WebhookEvent{
			Source:     model.SourceGitHub,
			EventType:  EventIssueComment,
			Action:     "created",
			Issue:      model.IssueRef{Owner: "octo", Repo: "hello", Number: 42},
			Sender:     "mona",
			ReceivedAt: fixed,
		}, event)
		assert.True(t, p.Relevant(event))
	})

	t.Run("pull request number fallback", func(t *testing.T) {
		event, err := p.ParsePullRequestEvent([]byte(`{
			"action": "synchronize",
			"pull_request": {"number": 9},
			"repository": {"full_name": "octo/hello"}
		}`))
		require.NoError(t, err)
		assert.Equal(t, 9, event.Issue.Number)
		assert.True(t, p.Relevant(event))
	})

	t.Run("labeled pull request is not relevant", func(t *testing.T) {
		event, err := p.ParsePullRequestEvent([]byte(`{"action":"labeled","number":3,"repository":{"full_name":"octo/hello"}}`))
		require.NoError(t, err)
		assert.False(t, p.Relevant(event))
	})

	t.Run("bad repository", func(t *testing.T) {
		_, err := p.ParseIssueEvent([]byte(`{"action":"opened","issue":{"number":1},"repository":{"full_name":"nope"}}`))
		assert.ErrorIs(t, err, model.ErrInvalidRepository)
	})

	t.Run("missing number", func(t *testing.T) {
		_, err := p.ParseIssueEvent([]byte(`{"action":"opened","repository":{"full_name":"octo/hello"}}`))
		assert.ErrorIs(t, err, ErrMissingNumber)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := p.ParsePullRequestEvent([]byte(`{`))
		assert.Error(t, err)
	})
}
