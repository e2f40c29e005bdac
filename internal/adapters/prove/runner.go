// Package prove runs the project's test suite with the prove harness.
package prove

import (
	"context"

	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/srcdeb/srcdeb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.TestRunner.
type Runner struct {
	cmd ports.Commander
}

// NewRunner creates a new Runner.
func NewRunner(cmd ports.Commander) *Runner {
	return &Runner{cmd: cmd}
}

// Run executes the suite under the tree's test role. Any failure is fatal to
// the packaging run.
func (r *Runner) Run(ctx context.Context, dir string) error {
	if err := r.cmd.Run(ctx, dir, "prove", "-r", string(domain.RoleTest)); err != nil {
		return zerr.With(zerr.Wrap(err, "test suite failed"), "dir", dir)
	}
	return nil
}
