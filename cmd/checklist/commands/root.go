package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"require-checklist/pkg/log"
)

// NewRootCmd constructs the checklist root command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("CHECKLIST_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "checklist",
		Short:         "Fail a build while task-list items are left unchecked",
		Long:          "checklist evaluates GitHub flavored task lists in issue and pull request bodies and their comments.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging on stderr")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of checklist",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "checklist version %s\n", version)
		},
	})

	cmd.AddCommand(newActionCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}

// newLogger logs to stderr so stdout stays reserved for results and workflow
// commands.
func newLogger(cmd *cobra.Command) log.Logger {
	level := "error"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose || os.Getenv("RUNNER_DEBUG") == "1" {
		level = "debug"
	}
	return log.Init(log.ZapConfig{
		Level:       level,
		Mode:        log.ModeDevelopment,
		Encoding:    log.EncodingConsole,
		OutputPaths: []string{"stderr"},
	})
}
