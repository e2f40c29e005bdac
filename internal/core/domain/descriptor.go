package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

var descriptorVersionPattern = regexp.MustCompile(`^\d+(\.\d+)*(\+dirty)?$`)

// PackageDescriptor is the validated package entity consumed by the control
// file generator. It is constructed once per run and never mutated afterwards,
// with one exception: the dependency resolver may append discovered but
// undeclared packages to Requires.
type PackageDescriptor struct {
	Name        string
	Description string
	Version     string
	OriginURL   string

	Layout        Layout
	Requires      DependencyList
	Conflicts     DependencyList
	IgnoreModules map[string]bool
}

// NewPackageDescriptor merges the inspected layout, the parsed manifest, the
// parsed version and the source origin into one descriptor, enforcing the
// construction invariants.
func NewPackageDescriptor(m Manifest, version, originURL string, layout Layout) (*PackageDescriptor, error) {
	if m.Package == "" {
		return nil, ErrMissingPackageName
	}
	if !layout.Has(RoleManifest) {
		return nil, ErrMissingManifest
	}
	if !layout.Has(RoleChanges) {
		return nil, ErrMissingChangelog
	}
	if !layout.HasContent() {
		return nil, ErrEmptyPackageLayout
	}
	if !descriptorVersionPattern.MatchString(version) {
		return nil, zerr.With(zerr.Wrap(ErrMalformedVersion, "failed to assemble descriptor"), "version", version)
	}

	ignore := m.IgnoreModules
	if ignore == nil {
		ignore = map[string]bool{}
	}

	return &PackageDescriptor{
		Name:          m.Package,
		Description:   m.Description,
		Version:       version,
		OriginURL:     originURL,
		Layout:        layout,
		Requires:      m.Requires,
		Conflicts:     m.Conflicts,
		IgnoreModules: ignore,
	}, nil
}

// AddRequirement appends a discovered, unconstrained requirement. This is the
// sole permitted mutation after construction; it is a no-op if the package is
// already declared.
func (d *PackageDescriptor) AddRequirement(pkg string) {
	if d.Requires.Has(pkg) {
		return
	}
	d.Requires = append(d.Requires, Dependency{Name: pkg})
}
