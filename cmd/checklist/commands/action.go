package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"require-checklist/cmd/checklist/internal/clierr"
	"require-checklist/config"
	"require-checklist/internal/checklist"
	"require-checklist/internal/gate"
	"require-checklist/internal/github"
	"require-checklist/internal/model"
	"require-checklist/pkg/actions"
)

// Step output names.
const (
	outputPassed     = "passed"
	outputIncomplete = "incomplete"
	outputConflicts  = "conflicts"
)

func newActionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "action",
		Short: "Run as a GitHub Action step, configured from INPUT_* and GITHUB_* variables",
		Args:  cobra.NoArgs,
		RunE:  runAction,
	}
}

func runAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	runner := actions.New(cmd.OutOrStdout())

	cfg, err := config.LoadAction()
	if err != nil {
		return clierr.Wrap(clierr.ExitConfig, "load action config", err)
	}

	opts := checklist.Options{
		RequireChecklist: cfg.RequireChecklist,
		SkipPattern:      cfg.SkipDescriptionRegex,
		SkipFlags:        cfg.SkipDescriptionRegexFlags,
	}
	if _, err := checklist.NewEvaluator(opts); err != nil {
		runner.Error(err.Error())
		return clierr.Wrap(clierr.ExitConfig, "invalid options", err)
	}

	ref, err := resolveIssue(cfg)
	if errors.Is(err, gate.ErrIssueNumberMissing) {
		runner.Error(gate.MsgIssueNumberMissing)
		return clierr.Wrap(clierr.ExitConfig, "resolve issue", err)
	}
	if err != nil {
		runner.Error(err.Error())
		return clierr.Wrap(clierr.ExitConfig, "resolve issue", err)
	}
	if cfg.EventName != "" {
		runner.Debug("event: " + cfg.EventName)
	}
	runner.Debug("issue number: " + strconv.Itoa(ref.Number))

	client := github.NewClient(ctx, cfg.APIURL, cfg.Token)
	uc := gate.New(newLogger(cmd), client, checklist.New(), gate.Config{Defaults: opts})

	output, err := uc.Check(ctx, gate.CheckInput{
		Issue:        ref,
		Options:      opts,
		SkipComments: cfg.SkipComments,
	})
	if err != nil {
		runner.Error(err.Error())
		if errors.Is(err, gate.ErrFetchFailed) {
			return clierr.Wrap(clierr.ExitRemote, "fetch "+ref.String(), err)
		}
		return clierr.Wrap(clierr.ExitConfig, "check "+ref.String(), err)
	}

	v := output.Verdict
	for _, entry := range v.Log {
		runner.Info(entry.String())
	}
	for _, failure := range v.Failures {
		runner.Error(failure)
	}

	if err := writeOutputs(cfg.OutputPath, v); err != nil {
		return clierr.Wrap(clierr.ExitConfig, "write outputs", err)
	}

	if !v.Passed {
		return clierr.New(clierr.ExitFailed, fmt.Sprintf("checklist of %s is not complete", ref))
	}
	return nil
}

// resolveIssue takes the issue number from the input, falling back to the
// triggering event.
func resolveIssue(cfg *config.ActionConfig) (model.IssueRef, error) {
	event, err := github.ReadEvent(cfg.EventPath)
	if err != nil && cfg.IssueNumber == 0 {
		return model.IssueRef{}, err
	}

	fullName := cfg.Repository
	if fullName == "" && event.Repository != nil {
		fullName = event.Repository.FullName
	}
	ref, err := model.ParseRepository(fullName)
	if err != nil {
		return model.IssueRef{}, err
	}

	ref.Number = cfg.IssueNumber
	if ref.Number == 0 {
		ref.Number = event.IssueNumber()
	}
	if ref.Number <= 0 {
		return model.IssueRef{}, gate.ErrIssueNumberMissing
	}
	return ref, nil
}

func writeOutputs(path string, v checklist.Verdict) error {
	incomplete, err := json.Marshal(checklist.Texts(v.Incomplete))
	if err != nil {
		return err
	}

	groups := make([][]string, 0, len(v.Conflicts))
	for _, group := range v.Conflicts {
		groups = append(groups, checklist.Texts(group))
	}
	conflicts, err := json.Marshal(groups)
	if err != nil {
		return err
	}

	for _, out := range []struct{ name, value string }{
		{outputPassed, strconv.FormatBool(v.Passed)},
		{outputIncomplete, string(incomplete)},
		{outputConflicts, string(conflicts)},
	} {
		if err := actions.SetOutput(path, out.name, out.value); err != nil {
			return err
		}
	}
	return nil
}
