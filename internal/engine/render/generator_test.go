package render_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/srcdeb/srcdeb/internal/engine/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderTime = time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

func fullDescriptor(t *testing.T) *domain.PackageDescriptor {
	t.Helper()

	desc, err := domain.NewPackageDescriptor(
		domain.Manifest{
			Package:     "myapp",
			Description: "My application",
			Requires: domain.DependencyList{
				{Name: "libwww-perl", Constraint: ">=6.0"},
				{Name: "libjson-perl"},
			},
			Conflicts: domain.DependencyList{{Name: "libold-perl"}},
		},
		"1.2.3+dirty",
		"https://example.org/myapp.git",
		domain.Layout{
			domain.RoleBin:      true,
			domain.RoleEtc:      true,
			domain.RoleLib:      true,
			domain.RoleVar:      true,
			domain.RoleManifest: true,
			domain.RoleChanges:  true,
		},
	)
	require.NoError(t, err)
	return desc
}

func minimalDescriptor(t *testing.T) *domain.PackageDescriptor {
	t.Helper()

	desc, err := domain.NewPackageDescriptor(
		domain.Manifest{Package: "tiny"},
		"0.1",
		"",
		domain.Layout{
			domain.RoleLib:      true,
			domain.RoleManifest: true,
			domain.RoleChanges:  true,
		},
	)
	require.NoError(t, err)
	return desc
}

func TestRender_FullDescriptor(t *testing.T) {
	g := render.NewGenerator()
	maintainer := domain.Maintainer{Name: "Jane Doe", Email: "jane@example.org"}

	a, err := g.Render(fullDescriptor(t), maintainer, renderTime)
	require.NoError(t, err)

	gold := goldie.New(t)
	gold.Assert(t, "full_changelog", []byte(a.Changelog))
	gold.Assert(t, "full_control", []byte(a.Control))
	gold.Assert(t, "full_rules", []byte(a.Rules))
	assert.Equal(t, "10\n", a.Compat)
}

func TestRender_MinimalDescriptor(t *testing.T) {
	g := render.NewGenerator()
	maintainer := domain.Maintainer{Name: "srcdeb", Email: "srcdeb@localhost"}

	a, err := g.Render(minimalDescriptor(t), maintainer, renderTime)
	require.NoError(t, err)

	gold := goldie.New(t)
	gold.Assert(t, "minimal_control", []byte(a.Control))
	gold.Assert(t, "minimal_rules", []byte(a.Rules))
}

func TestRender_DependsAlwaysLeadsWithPerl(t *testing.T) {
	g := render.NewGenerator()

	a, err := g.Render(fullDescriptor(t), domain.Maintainer{Name: "x", Email: "x@y"}, renderTime)
	require.NoError(t, err)

	assert.Contains(t, a.Control, "Depends: perl,\n         libwww-perl (>=6.0)")
}

func TestRender_Deterministic(t *testing.T) {
	g := render.NewGenerator()
	maintainer := domain.Maintainer{Name: "Jane Doe", Email: "jane@example.org"}

	first, err := g.Render(fullDescriptor(t), maintainer, renderTime)
	require.NoError(t, err)
	second, err := g.Render(fullDescriptor(t), maintainer, renderTime)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWrite_PlacesFilesUnderDebian(t *testing.T) {
	g := render.NewGenerator()
	maintainer := domain.Maintainer{Name: "Jane Doe", Email: "jane@example.org"}

	a, err := g.Render(minimalDescriptor(t), maintainer, renderTime)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, g.Write(dir, a))

	control, err := os.ReadFile(filepath.Join(dir, "debian", "control"))
	require.NoError(t, err)
	assert.Equal(t, a.Control, string(control))

	info, err := os.Stat(filepath.Join(dir, "debian", "rules"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	compat, err := os.ReadFile(filepath.Join(dir, "debian", "compat"))
	require.NoError(t, err)
	assert.Equal(t, "10\n", string(compat))
}
