// Package app implements the application layer for srcdeb: one linear,
// fail-fast packaging pipeline per invocation.
package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/srcdeb/srcdeb/internal/adapters/config"
	"github.com/srcdeb/srcdeb/internal/adapters/fs"
	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/srcdeb/srcdeb/internal/core/ports"
	"github.com/srcdeb/srcdeb/internal/engine/render"
	"github.com/srcdeb/srcdeb/internal/engine/resolve"
	"github.com/srcdeb/srcdeb/internal/engine/scan"
	"go.trai.ch/zerr"
)

// RunConfig is the immutable per-run configuration. It is threaded through
// the pipeline explicitly; there is no process-wide state.
type RunConfig struct {
	Source     domain.SourceSpec
	OutputDir  string
	Strict     bool
	RunTests   bool
	Keep       bool
	Maintainer domain.Maintainer
}

// App wires the pipeline stages together.
type App struct {
	fetcher   ports.SourceFetcher
	inspector *fs.Inspector
	manifest  *config.Loader
	scanner   *scan.Scanner
	resolver  *resolve.Resolver
	generator *render.Generator
	extractor ports.ImportExtractor
	tests     ports.TestRunner
	builder   ports.Builder
	logger    ports.Logger

	now func() time.Time
}

// New creates a new App instance.
func New(
	fetcher ports.SourceFetcher,
	inspector *fs.Inspector,
	manifest *config.Loader,
	scanner *scan.Scanner,
	resolver *resolve.Resolver,
	generator *render.Generator,
	extractor ports.ImportExtractor,
	tests ports.TestRunner,
	builder ports.Builder,
	logger ports.Logger,
) *App {
	return &App{
		fetcher:   fetcher,
		inspector: inspector,
		manifest:  manifest,
		scanner:   scanner,
		resolver:  resolver,
		generator: generator,
		extractor: extractor,
		tests:     tests,
		builder:   builder,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the changelog timestamp source. Used by tests.
func WithClock(now func() time.Time) func(*App) {
	return func(a *App) { a.now = now }
}

// Package runs the whole pipeline: acquire the source, inspect and validate
// it, resolve its dependencies, generate the debian/ files and build the
// package. The first failure aborts the run.
func (a *App) Package(ctx context.Context, cfg RunConfig) error {
	src, err := a.fetcher.Fetch(ctx, cfg.Source)
	if err != nil {
		return zerr.Wrap(err, "failed to acquire source")
	}
	defer a.cleanup(src, cfg.Keep)

	desc, err := a.describe(ctx, src, cfg)
	if err != nil {
		return err
	}

	if cfg.RunTests {
		a.logger.Info("running test suite")
		if err := a.tests.Run(ctx, src.Dir); err != nil {
			return err
		}
	}

	artifacts, err := a.generator.Render(desc, cfg.Maintainer, a.now())
	if err != nil {
		return err
	}
	if err := a.generator.Write(src.Dir, artifacts); err != nil {
		return err
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if _, err := a.builder.Build(ctx, src.Dir, outDir); err != nil {
		return err
	}
	return nil
}

// describe assembles the validated package descriptor from the source tree.
func (a *App) describe(ctx context.Context, src domain.Source, cfg RunConfig) (*domain.PackageDescriptor, error) {
	layout, err := a.inspector.Inspect(src.Dir)
	if err != nil {
		return nil, err
	}

	manifest, err := a.manifest.Load(src.Dir)
	if err != nil {
		return nil, err
	}

	version, err := a.readVersion(src)
	if err != nil {
		return nil, err
	}

	desc, err := domain.NewPackageDescriptor(manifest, version, src.OriginURL, layout)
	if err != nil {
		return nil, err
	}
	a.logger.Info("packaging " + desc.Name + " " + desc.Version)

	modules, err := a.scanner.Scan(src.Dir, layout)
	if err != nil {
		return nil, err
	}

	self := a.selfProvided(src.Dir, layout)
	if err := a.resolver.Resolve(ctx, desc, modules, self, cfg.Strict); err != nil {
		return nil, err
	}
	return desc, nil
}

func (a *App) readVersion(src domain.Source) (string, error) {
	path := filepath.Join(src.Dir, domain.ChangesFile)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the source tree
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read changes file"), "path", path)
	}

	version, err := domain.ParseVersion(string(data))
	if err != nil {
		return "", err
	}
	if src.Dirty {
		version = domain.MarkDirty(version)
	}
	return version, nil
}

// selfProvided builds the predicate marking modules that live inside the
// package's own library role.
func (a *App) selfProvided(dir string, layout domain.Layout) resolve.SelfProvided {
	if !layout.Has(domain.RoleLib) {
		return func(string) bool { return false }
	}
	libDir := filepath.Join(dir, string(domain.RoleLib))
	return func(module string) bool {
		info, err := os.Stat(filepath.Join(libDir, a.extractor.ModulePath(module)))
		return err == nil && info.Mode().IsRegular()
	}
}

func (a *App) cleanup(src domain.Source, keep bool) {
	if keep {
		return
	}
	if err := a.fetcher.Cleanup(src); err != nil {
		a.logger.Error(err)
	}
}
