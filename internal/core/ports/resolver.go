package ports

import (
	"context"

	"github.com/srcdeb/srcdeb/internal/core/domain"
)

// ImportExtractor is the language-specific half of module scanning: it knows
// what a library source file looks like and how to read the modules a file
// imports. The rest of the scanner and resolver stay language-agnostic.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ImportExtractor interface {
	// MatchesLibrary reports whether a file name follows the language's
	// library source convention.
	MatchesLibrary(name string) bool

	// ExtractImports returns the module names the file imports from outside
	// itself. Order is irrelevant; duplicates are allowed.
	ExtractImports(path string) ([]string, error)

	// ModulePath returns the conventional relative file path for a module
	// name (e.g. "Foo::Bar" -> "Foo/Bar.pm").
	ModulePath(module string) string
}

// ModuleLocator resolves an imported module name to its providing file on the
// local system.
type ModuleLocator interface {
	// Locate returns the provider for the module, or an error wrapping
	// domain.ErrUnresolvableModule when no provider exists at all.
	Locate(ctx context.Context, module string) (domain.ModuleProvider, error)
}

// PackageOwner maps a filesystem path to the system package that owns it.
type PackageOwner interface {
	// Owner returns the owning package name, or an error wrapping
	// domain.ErrUnresolvablePackage when ownership is absent or ambiguous.
	Owner(ctx context.Context, path string) (string, error)
}
