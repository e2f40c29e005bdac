package domain

// Manifest is the parsed declarative per-package metadata document.
type Manifest struct {
	// Package is the package name. Required.
	Package string

	// Description is used verbatim in the generated control file.
	Description string

	// Requires and Conflicts keep the manifest's document order.
	Requires  DependencyList
	Conflicts DependencyList

	// IgnoreModules are imported module names excluded from dependency
	// scanning. Resolution never reports them as missing.
	IgnoreModules map[string]bool
}
