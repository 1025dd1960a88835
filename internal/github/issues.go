package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"require-checklist/internal/model"
)

// ---- Response types scoped to this package ----

type issueResp struct {
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	Body        *string   `json:"body"`
	PullRequest *struct{} `json:"pull_request"`
}

type commentResp struct {
	ID   int64   `json:"id"`
	Body *string `json:"body"`
	User struct {
		Login string `json:"login"`
	} `json:"user"`
}

// GetIssue fetches an issue or pull request via GET /repos/{owner}/{repo}/issues/{number}.
func (c *Client) GetIssue(ctx context.Context, ref model.IssueRef) (model.Issue, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d", c.baseURL, ref.Owner, ref.Repo, ref.Number)

	var resp issueResp
	if _, err := c.get(ctx, url, &resp); err != nil {
		return model.Issue{}, err
	}

	return model.Issue{
		Number:      resp.Number,
		Title:       resp.Title,
		Body:        resp.Body,
		PullRequest: resp.PullRequest != nil,
	}, nil
}

// ListComments fetches every comment of an issue in API order, following
// Link rel="next" pagination.
func (c *Client) ListComments(ctx context.Context, ref model.IssueRef) ([]model.Comment, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d/comments?per_page=%d", c.baseURL, ref.Owner, ref.Repo, ref.Number, commentsPerPage)

	var comments []model.Comment
	for page := 0; url != ""; page++ {
		if page >= maxPages {
			return nil, ErrTooManyPages
		}

		var resp []commentResp
		header, err := c.get(ctx, url, &resp)
		if err != nil {
			return nil, err
		}
		for _, cm := range resp {
			comments = append(comments, model.Comment{
				ID:     cm.ID,
				Author: cm.User.Login,
				Body:   cm.Body,
			})
		}
		url = nextPage(header)
	}
	return comments, nil
}

// nextPage extracts the rel="next" target of a Link header.
func nextPage(header http.Header) string {
	for _, link := range header.Values("Link") {
		for _, part := range strings.Split(link, ",") {
			target, params, ok := strings.Cut(strings.TrimSpace(part), ";")
			if !ok {
				continue
			}
			for _, p := range strings.Split(params, ";") {
				if strings.TrimSpace(p) == `rel="next"` {
					return strings.Trim(strings.TrimSpace(target), "<>")
				}
			}
		}
	}
	return ""
}
