package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"require-checklist/internal/checklist"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type renderFunc func(w io.Writer, v checklist.Verdict) error

var renderers = map[string]renderFunc{
	formatText: renderText,
	formatJSON: renderJSON,
	formatYAML: renderYAML,
}

// report is the machine readable form of a verdict.
type report struct {
	Passed         bool       `json:"passed" yaml:"passed"`
	ChecklistFound bool       `json:"checklist_found" yaml:"checklist_found"`
	Failures       []string   `json:"failures" yaml:"failures"`
	Incomplete     []string   `json:"incomplete" yaml:"incomplete"`
	Conflicts      [][]string `json:"conflicts" yaml:"conflicts"`
	Log            []string   `json:"log" yaml:"log"`
}

func newReport(v checklist.Verdict) report {
	r := report{
		Passed:         v.Passed,
		ChecklistFound: v.ChecklistFound,
		Failures:       append([]string{}, v.Failures...),
		Incomplete:     checklist.Texts(v.Incomplete),
		Conflicts:      make([][]string, 0, len(v.Conflicts)),
		Log:            make([]string, 0, len(v.Log)),
	}
	for _, group := range v.Conflicts {
		r.Conflicts = append(r.Conflicts, checklist.Texts(group))
	}
	for _, entry := range v.Log {
		r.Log = append(r.Log, entry.String())
	}
	return r
}

func renderText(w io.Writer, v checklist.Verdict) error {
	for _, entry := range v.Log {
		if _, err := fmt.Fprintln(w, entry.String()); err != nil {
			return err
		}
	}
	for _, failure := range v.Failures {
		if _, err := fmt.Fprintf(w, "error: %s\n", failure); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, v checklist.Verdict) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newReport(v))
}

func renderYAML(w io.Writer, v checklist.Verdict) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newReport(v)); err != nil {
		return err
	}
	return enc.Close()
}
