package github

import "time"

const (
	DefaultBaseURL = "https://api.github.com"
	DefaultTimeout = 30 * time.Second

	MediaType  = "application/vnd.github+json"
	APIVersion = "2022-11-28"
	UserAgent  = "require-checklist"

	commentsPerPage = 100
	maxPages        = 100
)
