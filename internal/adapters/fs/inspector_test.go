package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/srcdeb/srcdeb/internal/adapters/fs"
	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree builds a source tree with the given role directories; the manifest
// and Changes files are created unless excluded.
func makeTree(t *testing.T, dirs []string, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x\n"), 0o600))
	}
	return root
}

func TestInspect_FullTree(t *testing.T) {
	root := makeTree(t,
		[]string{"bin", "etc", "lib", "var", "t"},
		[]string{domain.ManifestFile, domain.ChangesFile},
	)

	layout, err := fs.NewInspector().Inspect(root)
	require.NoError(t, err)

	for _, role := range []domain.Role{
		domain.RoleBin, domain.RoleEtc, domain.RoleLib, domain.RoleVar,
		domain.RoleTest, domain.RoleManifest, domain.RoleChanges,
	} {
		assert.True(t, layout.Has(role), "expected role %s", role)
	}
}

func TestInspect_SameContentsSameLayout(t *testing.T) {
	build := func() string {
		return makeTree(t, []string{"lib", "t"}, []string{domain.ManifestFile, domain.ChangesFile})
	}

	a, err := fs.NewInspector().Inspect(build())
	require.NoError(t, err)
	b, err := fs.NewInspector().Inspect(build())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestInspect_MissingManifest(t *testing.T) {
	root := makeTree(t, []string{"lib"}, []string{domain.ChangesFile})

	_, err := fs.NewInspector().Inspect(root)
	if !errors.Is(err, domain.ErrMissingManifest) {
		t.Errorf("expected ErrMissingManifest, got %v", err)
	}
}

func TestInspect_MissingChangelog(t *testing.T) {
	root := makeTree(t, []string{"lib"}, []string{domain.ManifestFile})

	_, err := fs.NewInspector().Inspect(root)
	if !errors.Is(err, domain.ErrMissingChangelog) {
		t.Errorf("expected ErrMissingChangelog, got %v", err)
	}
}

func TestInspect_EmptyPackageLayout(t *testing.T) {
	// var and t alone carry no installable content.
	root := makeTree(t, []string{"var", "t"}, []string{domain.ManifestFile, domain.ChangesFile})

	_, err := fs.NewInspector().Inspect(root)
	if !errors.Is(err, domain.ErrEmptyPackageLayout) {
		t.Errorf("expected ErrEmptyPackageLayout, got %v", err)
	}
}

func TestInspect_RoleMustBeDirectory(t *testing.T) {
	// A plain file named bin does not count as the binaries role.
	root := makeTree(t, []string{"lib"}, []string{domain.ManifestFile, domain.ChangesFile, "bin"})

	layout, err := fs.NewInspector().Inspect(root)
	require.NoError(t, err)
	assert.False(t, layout.Has(domain.RoleBin))
}
