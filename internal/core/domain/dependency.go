package domain

// Dependency is one declared requirement or conflict: a system package name
// and an optional version constraint. An empty constraint means unconstrained.
type Dependency struct {
	Name       string
	Constraint string
}

// DependencyList is an ordered list of dependencies. Order is significant:
// entries render into the generated control file in manifest-encounter order,
// with resolver-discovered entries appended at the end.
type DependencyList []Dependency

// Has reports whether the list declares the named package.
func (dl DependencyList) Has(name string) bool {
	for _, d := range dl {
		if d.Name == name {
			return true
		}
	}
	return false
}

// ResolvedDependency is the transient per-module record produced during
// dependency resolution. Only the deduplicated set of owning package names
// survives into the descriptor's requires list.
type ResolvedDependency struct {
	Module       string
	ProviderPath string
	Package      string
	Core         bool
	SelfProvided bool
}

// ModuleProvider is the filesystem location that provides an imported module.
type ModuleProvider struct {
	// Path is the providing file.
	Path string
	// Core is true when the provider ships with the language runtime itself.
	Core bool
}
