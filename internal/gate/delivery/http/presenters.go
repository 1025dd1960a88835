package http

import (
	"strconv"
	"time"

	"require-checklist/internal/checklist"
	"require-checklist/internal/gate"
	"require-checklist/internal/model"
)

// --- Request DTOs ---

type evaluateReq struct {
	Bodies                    []*string `json:"bodies" binding:"required"`
	RequireChecklist          *bool     `json:"require_checklist"`
	SkipDescriptionRegex      string    `json:"skip_description_regex"`
	SkipDescriptionRegexFlags string    `json:"skip_description_regex_flags"`
}

func (r evaluateReq) toInput() gate.EvaluateInput {
	opts := checklist.DefaultOptions()
	if r.RequireChecklist != nil {
		opts.RequireChecklist = *r.RequireChecklist
	}
	opts.SkipPattern = r.SkipDescriptionRegex
	opts.SkipFlags = r.SkipDescriptionRegexFlags
	return gate.EvaluateInput{Bodies: r.Bodies, Options: opts}
}

type statusReq struct {
	Owner  string `uri:"owner" binding:"required"`
	Repo   string `uri:"repo" binding:"required"`
	Number string `uri:"number" binding:"required"`
}

func (r statusReq) toRef() (model.IssueRef, error) {
	n, err := strconv.Atoi(r.Number)
	if err != nil || n <= 0 {
		return model.IssueRef{}, errInvalidNumber
	}
	return model.IssueRef{Owner: r.Owner, Repo: r.Repo, Number: n}, nil
}

// --- Response DTOs ---

type itemResp struct {
	Text        string   `json:"text"`
	RadioGroups []string `json:"radio_groups,omitempty"`
	Complete    bool     `json:"complete"`
}

type verdictResp struct {
	RunID          string       `json:"run_id"`
	Issue          string       `json:"issue,omitempty"`
	Passed         bool         `json:"passed"`
	ChecklistFound bool         `json:"checklist_found"`
	Failures       []string     `json:"failures"`
	Incomplete     []itemResp   `json:"incomplete"`
	Conflicts      [][]itemResp `json:"conflicts"`
	Log            []string     `json:"log"`
	CheckedAt      string       `json:"checked_at"`
}

func newItemsResp(items []checklist.Item) []itemResp {
	out := make([]itemResp, 0, len(items))
	for _, it := range items {
		out = append(out, itemResp{Text: it.Text, RadioGroups: it.RadioGroups, Complete: it.Complete})
	}
	return out
}

func (h *handler) newVerdictResp(o gate.CheckOutput) verdictResp {
	v := o.Verdict
	resp := verdictResp{
		RunID:          o.RunID,
		Passed:         v.Passed,
		ChecklistFound: v.ChecklistFound,
		Failures:       append([]string{}, v.Failures...),
		Incomplete:     newItemsResp(v.Incomplete),
		Conflicts:      make([][]itemResp, 0, len(v.Conflicts)),
		Log:            make([]string, 0, len(v.Log)),
		CheckedAt:      o.CheckedAt.Format(time.RFC3339),
	}
	if o.Issue.Number != 0 {
		resp.Issue = o.Issue.String()
	}
	for _, group := range v.Conflicts {
		resp.Conflicts = append(resp.Conflicts, newItemsResp(group))
	}
	for _, e := range v.Log {
		resp.Log = append(resp.Log, e.String())
	}
	return resp
}
