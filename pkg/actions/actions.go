// Package actions speaks the GitHub Actions workflow command protocol.
package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

const delimiterPrefix = "ghadelimiter_"

var messageEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

// Runner writes workflow commands to the job log.
type Runner struct {
	w io.Writer
}

// New returns a Runner writing to w, usually os.Stdout.
func New(w io.Writer) *Runner {
	return &Runner{w: w}
}

// Info writes a plain log line.
func (r *Runner) Info(msg string) {
	fmt.Fprintln(r.w, msg)
}

// Debug writes a line shown only when step debug logging is on.
func (r *Runner) Debug(msg string) {
	r.command("debug", msg)
}

// Notice writes a notice annotation.
func (r *Runner) Notice(msg string) {
	r.command("notice", msg)
}

// Error writes an error annotation.
func (r *Runner) Error(msg string) {
	r.command("error", msg)
}

func (r *Runner) command(name, msg string) {
	fmt.Fprintf(r.w, "::%s::%s\n", name, messageEscaper.Replace(msg))
}

// SetOutput appends a step output to the file at path ($GITHUB_OUTPUT).
// An empty path is a no-op, for runs outside of a workflow.
func SetOutput(path, name, value string) error {
	if path == "" {
		return nil
	}

	entry, err := outputEntry(name, value)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("write output %s: %w", name, err)
	}
	return nil
}

func outputEntry(name, value string) (string, error) {
	delimiter := delimiterPrefix + uuid.NewString()
	if strings.Contains(name, delimiter) || strings.Contains(value, delimiter) {
		return "", fmt.Errorf("output %s contains the delimiter", name)
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter), nil
}
