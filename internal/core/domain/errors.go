package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedVersion is returned when the Changes file does not start with a dotted-numeric version.
	ErrMalformedVersion = zerr.New("malformed version")

	// ErrMissingManifest is returned when the source tree has no manifest file.
	ErrMissingManifest = zerr.New("missing manifest")

	// ErrMissingChangelog is returned when the source tree has no Changes file.
	ErrMissingChangelog = zerr.New("missing changelog")

	// ErrEmptyPackageLayout is returned when none of the content roles (bin, etc, lib) exist.
	ErrEmptyPackageLayout = zerr.New("empty package layout")

	// ErrMissingPackageName is returned when the manifest has no package name.
	ErrMissingPackageName = zerr.New("missing package name")

	// ErrBadFieldShape is returned when a manifest field is not the expected mapping or sequence.
	ErrBadFieldShape = zerr.New("bad field shape")

	// ErrUnresolvableModule is returned when an imported module has no provider on the system.
	ErrUnresolvableModule = zerr.New("unresolvable module")

	// ErrUnresolvablePackage is returned when no system package owns a module's providing file,
	// or when ownership is ambiguous.
	ErrUnresolvablePackage = zerr.New("unresolvable package")

	// ErrUndeclaredDependency is returned in strict mode when scanning discovers a system
	// package the manifest does not declare.
	ErrUndeclaredDependency = zerr.New("undeclared dependency")

	// ErrAmbiguousOrigin is returned when more than one version-control origin is detectable
	// and no explicit selection was given.
	ErrAmbiguousOrigin = zerr.New("ambiguous version-control origin")
)
