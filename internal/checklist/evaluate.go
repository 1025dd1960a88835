package checklist

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Evaluator turns Source Texts into a Verdict. It holds no mutable state, so
// one Evaluator may be shared between goroutines.
type Evaluator struct {
	skip             *regexp2.Regexp
	requireChecklist bool
}

// NewEvaluator validates opts eagerly. A bad skip pattern or flag yields a
// *ConfigError.
func NewEvaluator(opts Options) (*Evaluator, error) {
	skip, err := compileSkip(opts.SkipPattern, opts.SkipFlags)
	if err != nil {
		return nil, err
	}
	return &Evaluator{skip: skip, requireChecklist: opts.RequireChecklist}, nil
}

// radioGroup collects the members of one tag within one Source Text.
type radioGroup struct {
	tag     string
	members []Item
}

func (g radioGroup) completed() []Item {
	var done []Item
	for _, it := range g.members {
		if it.Complete {
			done = append(done, it)
		}
	}
	return done
}

// Evaluate runs every present source through filter, extractor and skip
// filter, resolves radio groups per source and merges the outcome.
func (e *Evaluator) Evaluate(sources []Source) Verdict {
	var v Verdict

	for _, src := range sources {
		if src.Body == nil {
			continue
		}
		items := e.collect(*src.Body, &v.Log)
		if len(items) == 0 {
			continue
		}
		v.ChecklistFound = true

		incomplete, conflicts := resolve(items)
		v.Incomplete = append(v.Incomplete, incomplete...)
		v.Conflicts = append(v.Conflicts, conflicts...)
	}

	if len(v.Incomplete) > 0 {
		v.Failures = append(v.Failures, MsgIncomplete+joinTexts(v.Incomplete))
	}

	if len(v.Conflicts) > 0 {
		for _, group := range v.Conflicts {
			v.Failures = append(v.Failures, MsgConflict+joinTexts(group))
		}
		return v
	}

	if e.requireChecklist && !v.ChecklistFound {
		v.Failures = append(v.Failures, MsgNoChecklist)
		return v
	}

	if len(v.Failures) == 0 {
		v.Passed = true
		v.Log = append(v.Log, LogEntry{Status: StatusSummary, Text: MsgAllComplete})
	}
	return v
}

// collect extracts the non-skipped items of one body, logging each one.
func (e *Evaluator) collect(body string, log *[]LogEntry) []Item {
	var kept []Item
	for _, item := range ParseItems(body) {
		if skips(e.skip, item.Text) {
			*log = append(*log, LogEntry{Status: StatusSkipped, Text: item.Text})
			continue
		}
		status := StatusIncomplete
		if item.Complete {
			status = StatusCompleted
		}
		*log = append(*log, LogEntry{Status: status, Text: item.Text})
		kept = append(kept, item)
	}
	return kept
}

// resolve applies radio grouping to the items of a single Source Text.
func resolve(items []Item) (incomplete []Item, conflicts [][]Item) {
	var groups []*radioGroup
	index := make(map[string]*radioGroup)

	for _, item := range items {
		if len(item.RadioGroups) == 0 {
			if !item.Complete {
				incomplete = append(incomplete, item)
			}
			continue
		}
		for _, tag := range item.RadioGroups {
			g, ok := index[tag]
			if !ok {
				g = &radioGroup{tag: tag}
				index[tag] = g
				groups = append(groups, g)
			}
			g.members = append(g.members, item)
		}
	}

	for _, g := range groups {
		done := g.completed()
		switch {
		case len(done) == 0:
			incomplete = append(incomplete, g.members...)
		case len(done) > 1:
			conflicts = append(conflicts, done)
		}
	}
	return incomplete, conflicts
}

func joinTexts(items []Item) string {
	return strings.Join(Texts(items), itemTextSeparator)
}
