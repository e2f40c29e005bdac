// Package resolve implements dependency resolution: mapping imported module
// names to the system packages that provide them and reconciling the result
// against the manifest's declared requirements.
package resolve

import (
	"context"
	"sort"
	"sync"

	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/srcdeb/srcdeb/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ownershipWorkers bounds the concurrent path-ownership queries.
const ownershipWorkers = 4

// SelfProvided reports whether a module lives inside the package's own
// library role. Such modules are internal and never become a system dependency.
type SelfProvided func(module string) bool

// Resolver maps imported modules to owning system packages.
type Resolver struct {
	locator ports.ModuleLocator
	owner   ports.PackageOwner
	logger  ports.Logger
}

// NewResolver creates a Resolver using the given locator and ownership collaborator.
func NewResolver(locator ports.ModuleLocator, owner ports.PackageOwner, logger ports.Logger) *Resolver {
	return &Resolver{locator: locator, owner: owner, logger: logger}
}

// Resolve maps every module in modules to its owning system package and
// reconciles the deduplicated set against desc.Requires. Discovered packages
// the manifest does not declare are appended unconstrained with a warning, or
// are fatal when strict is set. Modules in desc.IgnoreModules, modules
// provided by the language core, and self-provided modules are skipped.
//
// Ownership queries run concurrently, but results and errors are reported in
// sorted module order so the outcome is identical to sequential execution.
func (r *Resolver) Resolve(ctx context.Context, desc *domain.PackageDescriptor, modules []string, self SelfProvided, strict bool) error {
	deps, err := r.resolveModules(ctx, desc, modules, self)
	if err != nil {
		return err
	}

	discovered := ownerSet(deps)

	for _, pkg := range discovered {
		if desc.Requires.Has(pkg) {
			continue
		}
		if strict {
			return zerr.With(zerr.Wrap(domain.ErrUndeclaredDependency, "manifest reconciliation failed"), "package", pkg)
		}
		r.logger.Warn("dependency discovered but not declared in manifest: " + pkg)
		desc.AddRequirement(pkg)
	}

	return nil
}

// resolveModules produces one ResolvedDependency per non-ignored module, in
// sorted module order.
func (r *Resolver) resolveModules(ctx context.Context, desc *domain.PackageDescriptor, modules []string, self SelfProvided) ([]domain.ResolvedDependency, error) {
	sorted := make([]string, 0, len(modules))
	for _, m := range modules {
		if desc.IgnoreModules[m] {
			continue
		}
		sorted = append(sorted, m)
	}
	sort.Strings(sorted)

	deps := make([]domain.ResolvedDependency, len(sorted))
	for i, m := range sorted {
		dep := domain.ResolvedDependency{Module: m}
		if self(m) {
			dep.SelfProvided = true
			deps[i] = dep
			continue
		}

		provider, err := r.locator.Locate(ctx, m)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to locate module provider"), "module", m)
		}
		dep.ProviderPath = provider.Path
		dep.Core = provider.Core
		deps[i] = dep
	}

	if err := r.queryOwners(ctx, deps); err != nil {
		return nil, err
	}
	return deps, nil
}

// queryOwners fills in the owning package for every dependency that needs
// one. Queries fan out over a bounded worker pool; per-dependency errors are
// collected and the first one in module order wins, matching what a
// sequential run would report.
func (r *Resolver) queryOwners(ctx context.Context, deps []domain.ResolvedDependency) error {
	var mu sync.Mutex
	errs := make([]error, len(deps))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ownershipWorkers)

	for i := range deps {
		if deps[i].Core || deps[i].SelfProvided {
			continue
		}
		g.Go(func() error {
			pkg, err := r.owner.Owner(gctx, deps[i].ProviderPath)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[i] = zerr.With(zerr.Wrap(err, "failed to resolve owning package"), "module", deps[i].Module)
				return nil
			}
			deps[i].Package = pkg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ownerSet deduplicates the owning package names, sorted.
func ownerSet(deps []domain.ResolvedDependency) []string {
	seen := make(map[string]bool)
	for _, d := range deps {
		if d.Package != "" {
			seen[d.Package] = true
		}
	}
	pkgs := make([]string, 0, len(seen))
	for p := range seen {
		pkgs = append(pkgs, p)
	}
	sort.Strings(pkgs)
	return pkgs
}
