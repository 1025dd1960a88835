package gate

import (
	"context"

	"require-checklist/internal/model"
)

// IssueRepository fetches the texts a checklist lives in.
type IssueRepository interface {
	GetIssue(ctx context.Context, ref model.IssueRef) (model.Issue, error)
	ListComments(ctx context.Context, ref model.IssueRef) ([]model.Comment, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Check fetches the issue (and comments) and evaluates its checklist.
	Check(ctx context.Context, input CheckInput) (CheckOutput, error)

	// Evaluate evaluates caller supplied bodies without any fetching.
	Evaluate(ctx context.Context, input EvaluateInput) (CheckOutput, error)

	// Status returns the cached verdict for ref, checking with the default
	// options when nothing is cached.
	Status(ctx context.Context, ref model.IssueRef) (CheckOutput, error)

	// Invalidate drops the cached verdict for ref.
	Invalidate(ctx context.Context, ref model.IssueRef)
}
