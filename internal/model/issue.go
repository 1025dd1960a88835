package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRepository = errors.New("repository must be in owner/name form")

// IssueRef identifies an issue or pull request.
type IssueRef struct {
	Owner  string `json:"owner" yaml:"owner"`
	Repo   string `json:"repo" yaml:"repo"`
	Number int    `json:"number" yaml:"number"`
}

func (r IssueRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// Key identifies the issue for caches and limiters. GitHub owner and
// repository names are case-insensitive, so the key is lower-cased.
func (r IssueRef) Key() string {
	return strings.ToLower(r.String())
}

// FullName returns "owner/repo".
func (r IssueRef) FullName() string {
	return r.Owner + "/" + r.Repo
}

// ParseRepository splits "owner/repo" into an IssueRef without a number.
func ParseRepository(fullName string) (IssueRef, error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(fullName), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return IssueRef{}, fmt.Errorf("%w: %q", ErrInvalidRepository, fullName)
	}
	return IssueRef{Owner: owner, Repo: repo}, nil
}

// Issue is the part of a GitHub issue or pull request the checker reads.
type Issue struct {
	Number      int
	Title       string
	Body        *string // nil when GitHub returns null
	PullRequest bool
}

// Comment is one issue comment.
type Comment struct {
	ID     int64
	Author string
	Body   *string
}
