package checklist

// Item is one task-list entry extracted from a Source Text.
type Item struct {
	// Text is the label verbatim, radio markers included.
	Text string `json:"text" yaml:"text"`
	// RadioGroups lists TaskRadio tags in order of appearance, duplicates kept.
	RadioGroups []string `json:"radio_groups,omitempty" yaml:"radio_groups,omitempty"`
	Complete    bool     `json:"complete" yaml:"complete"`
}

// Source is a single body of prose: the issue description or one comment.
// A nil Body means the body is absent and the source is skipped.
type Source struct {
	Origin string
	Body   *string
}

// Text returns a present Source with the given body.
func Text(origin, body string) Source {
	return Source{Origin: origin, Body: &body}
}

// Options configures an Evaluator.
type Options struct {
	// RequireChecklist fails the verdict when no item is found anywhere.
	RequireChecklist bool
	// SkipPattern drops items whose text matches. Empty disables skipping.
	SkipPattern string
	// SkipFlags are JavaScript RegExp flags applied to SkipPattern.
	SkipFlags string
}

// DefaultOptions mirrors the action defaults.
func DefaultOptions() Options {
	return Options{RequireChecklist: true}
}

// ItemStatus classifies a log entry.
type ItemStatus string

const (
	StatusCompleted  ItemStatus = "completed"
	StatusIncomplete ItemStatus = "incomplete"
	StatusSkipped    ItemStatus = "skipped"
	StatusSummary    ItemStatus = "summary"
)

// LogEntry is one observability line produced during evaluation.
type LogEntry struct {
	Status ItemStatus `json:"status" yaml:"status"`
	Text   string     `json:"text" yaml:"text"`
}

func (e LogEntry) String() string {
	switch e.Status {
	case StatusCompleted:
		return LogPrefixCompleted + e.Text
	case StatusIncomplete:
		return LogPrefixIncomplete + e.Text
	case StatusSkipped:
		return LogPrefixSkipped + e.Text
	default:
		return e.Text
	}
}

// Verdict is the aggregate outcome over all Source Texts.
type Verdict struct {
	Passed         bool       `json:"passed" yaml:"passed"`
	Failures       []string   `json:"failures,omitempty" yaml:"failures,omitempty"`
	Incomplete     []Item     `json:"incomplete,omitempty" yaml:"incomplete,omitempty"`
	Conflicts      [][]Item   `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	ChecklistFound bool       `json:"checklist_found" yaml:"checklist_found"`
	Log            []LogEntry `json:"log,omitempty" yaml:"log,omitempty"`
}

// Texts returns the text of each item.
func Texts(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Text)
	}
	return out
}
