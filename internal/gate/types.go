package gate

import (
	"time"

	"require-checklist/internal/checklist"
	"require-checklist/internal/model"
)

// Config holds the defaults used when a caller supplies no options.
type Config struct {
	Defaults     checklist.Options
	SkipComments bool
	CacheSize    int
	CacheTTL     time.Duration
}

// --- UseCase Inputs ---

type CheckInput struct {
	Issue        model.IssueRef
	Options      checklist.Options
	SkipComments bool
}

type EvaluateInput struct {
	// Bodies in order: primary body first. nil entries are absent bodies.
	Bodies  []*string
	Options checklist.Options
}

// --- UseCase Outputs ---

type CheckOutput struct {
	RunID     string            `json:"run_id" yaml:"run_id"`
	Issue     model.IssueRef    `json:"issue" yaml:"issue"`
	Verdict   checklist.Verdict `json:"verdict" yaml:"verdict"`
	CheckedAt time.Time         `json:"checked_at" yaml:"checked_at"`
}
