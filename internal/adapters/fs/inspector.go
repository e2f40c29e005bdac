// Package fs provides filesystem adapters: the source tree layout inspector.
package fs

import (
	"os"
	"path/filepath"

	"github.com/srcdeb/srcdeb/internal/core/domain"
	"go.trai.ch/zerr"
)

// roleDirs are the recognized top-level directories.
var roleDirs = []domain.Role{
	domain.RoleBin,
	domain.RoleEtc,
	domain.RoleLib,
	domain.RoleVar,
	domain.RoleTest,
}

// Inspector classifies a source tree's top-level entries into layout roles.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect records which roles are present under dir. The manifest and Changes
// files are mandatory; at least one content role directory must exist.
func (i *Inspector) Inspect(dir string) (domain.Layout, error) {
	layout := domain.Layout{}

	for _, role := range roleDirs {
		if isDir(filepath.Join(dir, string(role))) {
			layout[role] = true
		}
	}
	if isFile(filepath.Join(dir, domain.ManifestFile)) {
		layout[domain.RoleManifest] = true
	}
	if isFile(filepath.Join(dir, domain.ChangesFile)) {
		layout[domain.RoleChanges] = true
	}

	if !layout.Has(domain.RoleManifest) {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingManifest, "failed to inspect source tree"), "dir", dir)
	}
	if !layout.Has(domain.RoleChanges) {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingChangelog, "failed to inspect source tree"), "dir", dir)
	}
	if !layout.HasContent() {
		return nil, zerr.With(zerr.Wrap(domain.ErrEmptyPackageLayout, "failed to inspect source tree"), "dir", dir)
	}

	return layout, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
