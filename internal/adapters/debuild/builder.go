// Package debuild invokes the native packaging toolchain on a prepared tree.
package debuild

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/srcdeb/srcdeb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.Builder using debuild.
type Builder struct {
	cmd    ports.Commander
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(cmd ports.Commander, logger ports.Logger) *Builder {
	return &Builder{cmd: cmd, logger: logger}
}

// Build runs debuild in srcDir and moves the resulting .deb artifacts into
// outDir. debuild drops artifacts into the parent of the source tree.
func (b *Builder) Build(ctx context.Context, srcDir, outDir string) ([]string, error) {
	if err := b.cmd.Run(ctx, srcDir, "debuild", "-us", "-uc", "-b"); err != nil {
		return nil, zerr.Wrap(err, "packaging toolchain failed")
	}

	parent := filepath.Dir(srcDir)
	debs, err := filepath.Glob(filepath.Join(parent, "*.deb"))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list build artifacts")
	}
	if len(debs) == 0 {
		return nil, zerr.With(zerr.New("packaging produced no artifacts"), "dir", parent)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, zerr.Wrap(err, "failed to create output directory")
	}

	moved := make([]string, 0, len(debs))
	for _, deb := range debs {
		dest := filepath.Join(outDir, filepath.Base(deb))
		if err := moveFile(deb, dest); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to move artifact"), "artifact", deb)
		}
		b.logger.Info("built " + dest)
		moved = append(moved, dest)
	}
	return moved, nil
}

// moveFile renames when possible and falls back to copy for cross-device moves.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src) //nolint:gosec // artifact path produced by the toolchain
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest) //nolint:gosec // destination inside the requested output dir
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
