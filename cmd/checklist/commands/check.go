package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"require-checklist/cmd/checklist/internal/clierr"
	"require-checklist/internal/checklist"
)

const stdinArg = "-"

type checkFlags struct {
	requireChecklist bool
	skipRegex        string
	skipRegexFlags   string
	format           string
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [file...|-]",
		Short: "Evaluate the task lists of local files, or stdin",
		Long: "check reads each file as one body, the first being the primary body, " +
			"and evaluates them together. With no arguments, or -, the body is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, f, args)
		},
	}

	cmd.Flags().BoolVar(&f.requireChecklist, "require-checklist", true, "fail when no task list item is found")
	cmd.Flags().StringVar(&f.skipRegex, "skip-description-regex", "", "skip items whose text matches this pattern")
	cmd.Flags().StringVar(&f.skipRegexFlags, "skip-description-regex-flags", "", "flags for the skip pattern, e.g. i")
	cmd.Flags().StringVarP(&f.format, "format", "o", formatText, "output format: text, json or yaml")

	return cmd
}

func runCheck(cmd *cobra.Command, f *checkFlags, args []string) error {
	render, ok := renderers[f.format]
	if !ok {
		return clierr.New(clierr.ExitConfig, fmt.Sprintf("unknown format %q", f.format))
	}

	if len(args) == 0 {
		args = []string{stdinArg}
	}

	sources := make([]checklist.Source, 0, len(args))
	for _, arg := range args {
		body, err := readBody(cmd.InOrStdin(), arg)
		if err != nil {
			return clierr.Wrap(clierr.ExitConfig, "read "+arg, err)
		}
		sources = append(sources, checklist.Text(arg, body))
	}

	opts := checklist.Options{
		RequireChecklist: f.requireChecklist,
		SkipPattern:      f.skipRegex,
		SkipFlags:        f.skipRegexFlags,
	}

	l := newLogger(cmd)
	l.Debugf(cmd.Context(), "evaluating %d bodies", len(sources))

	verdict, err := checklist.New().Evaluate(cmd.Context(), sources, opts)
	if err != nil {
		return clierr.Wrap(clierr.ExitConfig, "invalid options", err)
	}

	if err := render(cmd.OutOrStdout(), verdict); err != nil {
		return err
	}

	if !verdict.Passed {
		return clierr.New(clierr.ExitFailed, "checklist is not complete")
	}
	return nil
}

func readBody(stdin io.Reader, arg string) (string, error) {
	if arg == stdinArg {
		raw, err := io.ReadAll(stdin)
		return string(raw), err
	}
	raw, err := os.ReadFile(arg)
	return string(raw), err
}
