// Package vcs implements source acquisition: git or subversion checkouts
// into a staging directory, or an existing directory used in place.
package vcs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/srcdeb/srcdeb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fetcher implements ports.SourceFetcher.
type Fetcher struct {
	cmd    ports.Commander
	logger ports.Logger

	// stagingRoot is where checkouts land. Defaults to the system temp dir.
	stagingRoot string
}

// NewFetcher creates a new Fetcher.
func NewFetcher(cmd ports.Commander, logger ports.Logger) *Fetcher {
	return &Fetcher{
		cmd:         cmd,
		logger:      logger,
		stagingRoot: filepath.Join(os.TempDir(), "srcdeb"),
	}
}

// Fetch prepares the source tree selected by spec. Checkout modes clone into
// a staging directory whose name derives from the origin, so repeated runs of
// the same source land in a stable path. In-place mode inspects the directory
// for version-control markers; finding more than one with no explicit mode
// selected is a hard error, never a guess.
func (f *Fetcher) Fetch(ctx context.Context, spec domain.SourceSpec) (domain.Source, error) {
	switch {
	case spec.GitURL != "":
		return f.checkout(ctx, spec.GitURL, func(dir string) error {
			return f.cmd.Run(ctx, "", "git", "clone", spec.GitURL, dir)
		})
	case spec.SvnURL != "":
		return f.checkout(ctx, spec.SvnURL, func(dir string) error {
			return f.cmd.Run(ctx, "", "svn", "checkout", spec.SvnURL, dir)
		})
	default:
		return f.inPlace(ctx, spec.Dir)
	}
}

// Cleanup removes a staged checkout. In-place sources are left alone.
func (f *Fetcher) Cleanup(src domain.Source) error {
	if !src.Staged {
		return nil
	}
	if err := os.RemoveAll(src.Dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove staging directory"), "dir", src.Dir)
	}
	return nil
}

func (f *Fetcher) checkout(ctx context.Context, url string, clone func(dir string) error) (domain.Source, error) {
	dir := filepath.Join(f.stagingRoot, fmt.Sprintf("%016x", xxhash.Sum64String(url)))

	// A stale checkout from an earlier run must not leak into this one.
	if err := os.RemoveAll(dir); err != nil {
		return domain.Source{}, zerr.With(zerr.Wrap(err, "failed to clear staging directory"), "dir", dir)
	}
	if err := os.MkdirAll(f.stagingRoot, 0o755); err != nil {
		return domain.Source{}, zerr.Wrap(err, "failed to create staging root")
	}

	f.logger.Info("checking out " + url)
	if err := clone(dir); err != nil {
		return domain.Source{}, zerr.With(zerr.Wrap(err, "checkout failed"), "url", url)
	}

	return domain.Source{Dir: dir, OriginURL: url, Staged: true}, nil
}

func (f *Fetcher) inPlace(ctx context.Context, dir string) (domain.Source, error) {
	if dir == "" {
		dir = "."
	}

	hasGit := isDir(filepath.Join(dir, ".git"))
	hasSvn := isDir(filepath.Join(dir, ".svn"))

	switch {
	case hasGit && hasSvn:
		return domain.Source{}, zerr.With(zerr.Wrap(domain.ErrAmbiguousOrigin, "failed to detect source origin"), "dir", dir)
	case hasGit:
		return f.gitWorkingCopy(ctx, dir)
	case hasSvn:
		return f.svnWorkingCopy(ctx, dir)
	default:
		return domain.Source{Dir: dir}, nil
	}
}

func (f *Fetcher) gitWorkingCopy(ctx context.Context, dir string) (domain.Source, error) {
	// A missing origin remote is fine; the URL is provenance only.
	origin, _ := f.cmd.Output(ctx, dir, "git", "config", "--get", "remote.origin.url")

	status, err := f.cmd.Output(ctx, dir, "git", "status", "--porcelain")
	if err != nil {
		return domain.Source{}, zerr.With(zerr.Wrap(err, "failed to read git status"), "dir", dir)
	}

	return domain.Source{Dir: dir, OriginURL: origin, Dirty: status != ""}, nil
}

func (f *Fetcher) svnWorkingCopy(ctx context.Context, dir string) (domain.Source, error) {
	origin, _ := f.cmd.Output(ctx, dir, "svn", "info", "--show-item", "url")

	status, err := f.cmd.Output(ctx, dir, "svn", "status", "-q")
	if err != nil {
		return domain.Source{}, zerr.With(zerr.Wrap(err, "failed to read svn status"), "dir", dir)
	}

	return domain.Source{Dir: dir, OriginURL: origin, Dirty: status != ""}, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
