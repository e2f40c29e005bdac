// Package shell provides the command runner used by the exec-backed adapters.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/srcdeb/srcdeb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Commander using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Output runs the command in dir and returns its captured stdout, trimmed of
// trailing whitespace. Stderr is captured and attached to the error on failure.
func (r *Runner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // adapter-constructed command
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", commandError(err, name, stderr.String())
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}

// Run runs the command in dir, streaming stdout and stderr to the logger.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // adapter-constructed command
	cmd.Dir = dir
	cmd.Stdout = &logWriter{logger: r.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		return commandError(err, name, "")
	}
	return nil
}

func commandError(err error, name, stderr string) error {
	exitCode := -1
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", name)
	wrapped = zerr.With(wrapped, "exit_code", exitCode)
	if stderr != "" {
		wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(stderr))
	}
	return wrapped
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
