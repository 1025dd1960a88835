package checklist

import "context"

// Service is the entry point other packages depend on.
type Service interface {
	// ParseItems extracts the task-list items of one body, comments excluded.
	ParseItems(body string) []Item

	// Evaluate validates opts and evaluates sources in order.
	Evaluate(ctx context.Context, sources []Source, opts Options) (Verdict, error)
}

type service struct{}

func New() Service {
	return &service{}
}

func (s *service) ParseItems(body string) []Item {
	return ParseItems(body)
}

func (s *service) Evaluate(ctx context.Context, sources []Source, opts Options) (Verdict, error) {
	e, err := NewEvaluator(opts)
	if err != nil {
		return Verdict{}, err
	}
	return e.Evaluate(sources), nil
}
