package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/srcdeb/srcdeb/internal/adapters/config"
	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Success(t *testing.T) {
	content := `
package: libfoo-perl
description: Foo bindings for the frobnicator
requires:
  libfoo: ">=1.0"
  libbar:
conflicts:
  libfoo-legacy: "<<0.9"
ignore:
  - Local::Secret
  - Acme::Internal
`
	m, err := config.Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, "libfoo-perl", m.Package)
	assert.Equal(t, "Foo bindings for the frobnicator", m.Description)

	// Document order must survive parsing.
	assert.Equal(t, domain.DependencyList{
		{Name: "libfoo", Constraint: ">=1.0"},
		{Name: "libbar"},
	}, m.Requires)
	assert.Equal(t, domain.DependencyList{
		{Name: "libfoo-legacy", Constraint: "<<0.9"},
	}, m.Conflicts)

	assert.True(t, m.IgnoreModules["Local::Secret"])
	assert.True(t, m.IgnoreModules["Acme::Internal"])
}

func TestParse_Defaults(t *testing.T) {
	m, err := config.Parse([]byte("package: foo\n"))
	require.NoError(t, err)

	assert.Empty(t, m.Requires)
	assert.Empty(t, m.Conflicts)
	assert.Empty(t, m.IgnoreModules)
	assert.NotNil(t, m.IgnoreModules)
}

func TestParse_MissingPackageName(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"absent", "description: something\n"},
		{"empty", "package: \"\"\n"},
		{"empty document", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.content))
			if !errors.Is(err, domain.ErrMissingPackageName) {
				t.Errorf("expected ErrMissingPackageName, got %v", err)
			}
		})
	}
}

func TestParse_BadFieldShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"requires as sequence",
			"package: foo\nrequires:\n  - libfoo\n",
		},
		{
			"requires with nested mapping",
			"package: foo\nrequires:\n  libfoo:\n    version: \">=1.0\"\n",
		},
		{
			"conflicts as scalar",
			"package: foo\nconflicts: libfoo\n",
		},
		{
			"ignore as mapping",
			"package: foo\nignore:\n  Local::Secret: true\n",
		},
		{
			"ignore with nested sequence",
			"package: foo\nignore:\n  - [Local::Secret]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.content))
			if !errors.Is(err, domain.ErrBadFieldShape) {
				t.Errorf("expected ErrBadFieldShape, got %v", err)
			}
		})
	}
}

func TestLoad_ReadsManifestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ManifestFile)
	require.NoError(t, os.WriteFile(path, []byte("package: foo\n"), 0o600))

	loader := config.NewLoader()
	m, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "foo", m.Package)
}

func TestLoad_MissingFile(t *testing.T) {
	loader := config.NewLoader()
	_, err := loader.Load(t.TempDir())
	assert.Error(t, err)
}
