package github

import (
	"encoding/json"
	"fmt"
	"os"
)

// Event is the subset of a workflow event payload used to locate the issue.
type Event struct {
	Number int `json:"number"`
	Issue  *struct {
		Number int `json:"number"`
	} `json:"issue"`
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Repository *struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
}

// IssueNumber returns issue.number, pull_request.number or number, in that
// order of preference, or 0.
func (e Event) IssueNumber() int {
	if e.Issue != nil && e.Issue.Number != 0 {
		return e.Issue.Number
	}
	if e.PullRequest != nil && e.PullRequest.Number != 0 {
		return e.PullRequest.Number
	}
	return e.Number
}

// ReadEvent parses the payload at path. An empty path yields an empty Event.
func ReadEvent(path string) (Event, error) {
	var ev Event
	if path == "" {
		return ev, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ev, fmt.Errorf("%w: %v", ErrEventUnreadable, err)
	}
	if err := json.Unmarshal(raw, &ev); err != nil {
		return ev, fmt.Errorf("%w: %v", ErrEventUnreadable, err)
	}
	return ev, nil
}
