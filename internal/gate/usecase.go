package gate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"require-checklist/internal/checklist"
	"require-checklist/internal/model"
)

// Check fetches the issue and its comments concurrently, then evaluates the
// bodies in order: issue body first, comments in API order. Nothing is cached,
// since the options are the caller's.
func (uc *usecase) Check(ctx context.Context, input CheckInput) (CheckOutput, error) {
	ref := input.Issue
	if ref.Number == 0 {
		return CheckOutput{}, ErrIssueNumberMissing
	}

	uc.l.Debugf(ctx, "issue number: %d", ref.Number)

	sources, err := uc.fetchSources(ctx, ref, input.SkipComments)
	if err != nil {
		return CheckOutput{}, err
	}

	output, err := uc.evaluate(ctx, sources, input.Options)
	if err != nil {
		return CheckOutput{}, err
	}
	output.Issue = ref
	return output, nil
}

// Evaluate evaluates raw bodies; nothing is fetched or cached.
func (uc *usecase) Evaluate(ctx context.Context, input EvaluateInput) (CheckOutput, error) {
	sources := make([]checklist.Source, 0, len(input.Bodies))
	for i, body := range input.Bodies {
		sources = append(sources, checklist.Source{Origin: fmt.Sprintf("body[%d]", i), Body: body})
	}
	return uc.evaluate(ctx, sources, input.Options)
}

// Status serves the cached default-options verdict, checking on a miss.
func (uc *usecase) Status(ctx context.Context, ref model.IssueRef) (CheckOutput, error) {
	key := ref.Key()
	if cached, ok := uc.cache.Get(key); ok {
		return cached, nil
	}

	uc.mu.Lock()
	startSeq := uc.seq
	uc.mu.Unlock()

	output, err := uc.Check(ctx, CheckInput{
		Issue:        ref,
		Options:      uc.cfg.Defaults,
		SkipComments: uc.cfg.SkipComments,
	})
	if err != nil {
		return CheckOutput{}, err
	}

	uc.store(ctx, key, startSeq, output)
	return output, nil
}

// store caches output unless key was invalidated after startSeq was read.
func (uc *usecase) store(ctx context.Context, key string, startSeq uint64, output CheckOutput) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if last, ok := uc.invalidated.Get(key); ok && last > startSeq {
		uc.l.Debugf(ctx, "Dropping stale verdict for %s", output.Issue)
		return
	}
	uc.cache.Add(key, output)
}

func (uc *usecase) Invalidate(ctx context.Context, ref model.IssueRef) {
	key := ref.Key()

	uc.mu.Lock()
	uc.seq++
	uc.invalidated.Add(key, uc.seq)
	removed := uc.cache.Remove(key)
	uc.mu.Unlock()

	if removed {
		uc.l.Debugf(ctx, "Invalidated cached verdict for %s", ref)
	}
}

func (uc *usecase) fetchSources(ctx context.Context, ref model.IssueRef, skipComments bool) ([]checklist.Source, error) {
	var (
		issue    model.Issue
		comments []model.Comment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		issue, err = uc.repo.GetIssue(gctx, ref)
		if err != nil {
			return fmt.Errorf("get issue %s: %w", ref, err)
		}
		return nil
	})
	if !skipComments {
		g.Go(func() error {
			var err error
			comments, err = uc.repo.ListComments(gctx, ref)
			if err != nil {
				return fmt.Errorf("list comments %s: %w", ref, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	sources := make([]checklist.Source, 0, len(comments)+1)
	sources = append(sources, checklist.Source{Origin: "issue", Body: issue.Body})
	for _, cm := range comments {
		sources = append(sources, checklist.Source{Origin: fmt.Sprintf("comment %d", cm.ID), Body: cm.Body})
	}
	return sources, nil
}

func (uc *usecase) evaluate(ctx context.Context, sources []checklist.Source, opts checklist.Options) (CheckOutput, error) {
	verdict, err := uc.checklistSvc.Evaluate(ctx, sources, opts)
	if err != nil {
		return CheckOutput{}, err
	}

	for _, entry := range verdict.Log {
		uc.l.Info(ctx, entry.String())
	}
	for _, failure := range verdict.Failures {
		uc.l.Warn(ctx, failure)
	}

	return CheckOutput{
		RunID:     uuid.NewString(),
		Verdict:   verdict,
		CheckedAt: uc.now(),
	}, nil
}
