package runner

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
)

// CommandRunner runs a command in workDir and returns its trimmed combined
// output.
type CommandRunner interface {
	Run(ctx context.Context, workDir, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Output, if set, also receives the command's stdout and stderr as it runs.
	Output io.Writer
}

// NewExecRunner creates a runner that executes real processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// WithOutput returns a copy of r that streams output to w.
func (r *ExecRunner) WithOutput(w io.Writer) *ExecRunner {
	return &ExecRunner{Output: w}
}

// Run implements CommandRunner.
func (r *ExecRunner) Run(ctx context.Context, workDir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir

	var buf bytes.Buffer
	var w io.Writer = &buf
	if r.Output != nil {
		w = io.MultiWriter(&buf, r.Output)
	}
	cmd.Stdout = w
	cmd.Stderr = w

	err := cmd.Run()
	output := strings.TrimSpace(buf.String())
	if err != nil {
		return output, &CommandError{
			Command: name,
			Args:    args,
			Output:  output,
			Err:     err,
		}
	}
	return output, nil
}

// CommandError is returned when a command exits unsuccessfully.
type CommandError struct {
	Command string
	Args    []string
	Output  string
	Err     error
}

// Error returns the last line of output when there is any, since build tools
// print their failure summary last.
func (e *CommandError) Error() string {
	if e.Output != "" {
		lines := strings.Split(e.Output, "\n")
		return strings.TrimSpace(lines[len(lines)-1])
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "command failed"
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CommandLine returns the command and its arguments joined by spaces.
func (e *CommandError) CommandLine() string {
	return strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
}
