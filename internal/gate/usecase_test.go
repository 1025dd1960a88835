package gate_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"require-checklist/internal/checklist"
	"require-checklist/internal/gate"
	"require-checklist/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	body        *string
	comments    []*string
	issueErr    error
	commentsErr error

	issueCalls   atomic.Int32
	commentCalls atomic.Int32
}

func (m *mockRepo) GetIssue(ctx context.Context, ref model.IssueRef) (model.Issue, error) {
	m.issueCalls.Add(1)
	if m.issueErr != nil {
		return model.Issue{}, m.issueErr
	}
	return model.Issue{Number: ref.Number, Body: m.body}, nil
}

func (m *mockRepo) ListComments(ctx context.Context, ref model.IssueRef) ([]model.Comment, error) {
	m.commentCalls.Add(1)
	if m.commentsErr != nil {
		return nil, m.commentsErr
	}
	out := make([]model.Comment, 0, len(m.comments))
	for i, b := range m.comments {
		out = append(out, model.Comment{ID: int64(i + 1), Body: b})
	}
	return out, nil
}

func str(s string) *string { return &s }

var ref = model.IssueRef{Owner: "octo", Repo: "hello", Number: 17}

func newUC(repo gate.IssueRepository) gate.UseCase {
	return gate.New(&mockLogger{}, repo, checklist.New(), gate.Config{Defaults: checklist.DefaultOptions()})
}

func TestCheckOrdersBodyBeforeComments(t *testing.T) {
	repo := &mockRepo{
		body:     str("- [ ] Body item"),
		comments: []*string{str("- [ ] First comment"), nil, str("- [ ] Second comment")},
	}
	uc := newUC(repo)

	out, err := uc.Check(context.Background(), gate.CheckInput{Issue: ref, Options: checklist.DefaultOptions()})
	require.NoError(t, err)

	assert.Equal(t, ref, out.Issue)
	assert.NotEmpty(t, out.RunID)
	assert.False(t, out.Verdict.Passed)
	assert.Equal(t, []string{
		"The following items are not marked as completed: Body item, First comment, Second comment",
	}, out.Verdict.Failures)
}

func TestCheckSkipComments(t *testing.T) {
	repo := &mockRepo{
		body:     str("- [x] Done"),
		comments: []*string{str("- [ ] Ignored")},
	}
	uc := newUC(repo)

	out, err := uc.Check(context.Background(), gate.CheckInput{Issue: ref, Options: checklist.DefaultOptions(), SkipComments: true})
	require.NoError(t, err)
	assert.True(t, out.Verdict.Passed)
	assert.Equal(t, int32(0), repo.commentCalls.Load())
}

func TestCheckMissingIssueNumber(t *testing.T) {
	uc := newUC(&mockRepo{})
	_, err := uc.Check(context.Background(), gate.CheckInput{Issue: model.IssueRef{Owner: "octo", Repo: "hello"}})
	assert.ErrorIs(t, err, gate.ErrIssueNumberMissing)
}

func TestCheckFetchErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("issue", func(t *testing.T) {
		_, err := newUC(&mockRepo{issueErr: boom}).Check(context.Background(), gate.CheckInput{Issue: ref})
		assert.ErrorIs(t, err, gate.ErrFetchFailed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("comments", func(t *testing.T) {
		_, err := newUC(&mockRepo{body: str("- [x] a"), commentsErr: boom}).Check(context.Background(), gate.CheckInput{Issue: ref})
		assert.ErrorIs(t, err, boom)
	})
}

func TestCheckInvalidSkipPattern(t *testing.T) {
	uc := newUC(&mockRepo{body: str("- [x] a")})
	_, err := uc.Check(context.Background(), gate.CheckInput{Issue: ref, Options: checklist.Options{SkipPattern: "("}})

	var cfgErr *checklist.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestStatusUsesCacheUntilInvalidated(t *testing.T) {
	repo := &mockRepo{body: str("- [x] a")}
	uc := newUC(repo)
	ctx := context.Background()

	first, err := uc.Status(ctx, ref)
	require.NoError(t, err)
	second, err := uc.Status(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, first.RunID, second.RunID)
	assert.Equal(t, int32(1), repo.issueCalls.Load())

	uc.Invalidate(ctx, ref)
	third, err := uc.Status(ctx, ref)
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, third.RunID)
	assert.Equal(t, int32(2), repo.issueCalls.Load())
}

func TestEvaluateBodies(t *testing.T) {
	uc := newUC(&mockRepo{})
	out, err := uc.Evaluate(context.Background(), gate.EvaluateInput{
		Bodies:  []*string{nil, str("No checklist in comment")},
		Options: checklist.Options{RequireChecklist: false},
	})
	require.NoError(t, err)
	assert.True(t, out.Verdict.Passed)
	assert.False(t, out.Verdict.ChecklistFound)
}

// sequencedRepo blocks its first GetIssue until release is closed and
// answers it with the old body; later calls see the new body.
type sequencedRepo struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (r *sequencedRepo) GetIssue(ctx context.Context, ref model.IssueRef) (model.Issue, error) {
	if r.calls.Add(1) == 1 {
		close(r.started)
		<-r.release
		return model.Issue{Number: ref.Number, Body: str("- [ ] old")}, nil
	}
	return model.Issue{Number: ref.Number, Body: str("- [x] new")}, nil
}

func (r *sequencedRepo) ListComments(ctx context.Context, ref model.IssueRef) ([]model.Comment, error) {
	return nil, nil
}

func TestStatusKeepsNewerVerdictOverSlowRecheck(t *testing.T) {
	repo := &sequencedRepo{started: make(chan struct{}), release: make(chan struct{})}
	uc := newUC(repo)
	ctx := context.Background()

	slow := make(chan gate.CheckOutput, 1)
	go func() {
		out, err := uc.Status(ctx, ref)
		assert.NoError(t, err)
		slow <- out
	}()
	<-repo.started

	uc.Invalidate(ctx, ref)
	fresh, err := uc.Status(ctx, ref)
	require.NoError(t, err)
	assert.True(t, fresh.Verdict.Passed)

	close(repo.release)
	stale := <-slow
	assert.False(t, stale.Verdict.Passed)

	cached, err := uc.Status(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, fresh.RunID, cached.RunID)
	assert.True(t, cached.Verdict.Passed)
	assert.Equal(t, int32(2), repo.calls.Load())
}

func TestCheckDoesNotFeedStatusCache(t *testing.T) {
	repo := &mockRepo{body: str("- [ ] (optional) docs")}
	uc := newUC(repo)
	ctx := context.Background()

	custom, err := uc.Check(ctx, gate.CheckInput{
		Issue:   ref,
		Options: checklist.Options{RequireChecklist: false, SkipPattern: "^\\(optional\\)"},
	})
	require.NoError(t, err)
	assert.True(t, custom.Verdict.Passed)

	status, err := uc.Status(ctx, ref)
	require.NoError(t, err)
	assert.NotEqual(t, custom.RunID, status.RunID)
	assert.False(t, status.Verdict.Passed)
	assert.Equal(t, int32(2), repo.issueCalls.Load())
}

func TestInvalidateIgnoresCase(t *testing.T) {
	repo := &mockRepo{body: str("- [x] a")}
	uc := newUC(repo)
	ctx := context.Background()

	first, err := uc.Status(ctx, ref)
	require.NoError(t, err)

	uc.Invalidate(ctx, model.IssueRef{Owner: "Octo", Repo: "Hello", Number: ref.Number})

	second, err := uc.Status(ctx, model.IssueRef{Owner: "OCTO", Repo: "hello", Number: ref.Number})
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, int32(2), repo.issueCalls.Load())
}
