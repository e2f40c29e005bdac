package domain_test

import (
	"errors"
	"testing"

	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLayout() domain.Layout {
	return domain.Layout{
		domain.RoleManifest: true,
		domain.RoleChanges:  true,
		domain.RoleLib:      true,
	}
}

func TestNewPackageDescriptor(t *testing.T) {
	m := domain.Manifest{
		Package:     "libfoo-perl",
		Description: "Foo bindings",
		Requires:    domain.DependencyList{{Name: "libbar", Constraint: ">=1.0"}},
	}

	desc, err := domain.NewPackageDescriptor(m, "1.2.3", "https://example.org/foo.git", validLayout())
	require.NoError(t, err)

	assert.Equal(t, "libfoo-perl", desc.Name)
	assert.Equal(t, "1.2.3", desc.Version)
	assert.Equal(t, "https://example.org/foo.git", desc.OriginURL)
	assert.True(t, desc.Requires.Has("libbar"))
	assert.NotNil(t, desc.IgnoreModules)
}

func TestNewPackageDescriptor_Invariants(t *testing.T) {
	valid := domain.Manifest{Package: "foo"}

	tests := []struct {
		name    string
		m       domain.Manifest
		version string
		layout  domain.Layout
		wantErr error
	}{
		{
			name:    "missing name",
			m:       domain.Manifest{},
			version: "1.0",
			layout:  validLayout(),
			wantErr: domain.ErrMissingPackageName,
		},
		{
			name:    "missing manifest marker",
			m:       valid,
			version: "1.0",
			layout:  domain.Layout{domain.RoleChanges: true, domain.RoleLib: true},
			wantErr: domain.ErrMissingManifest,
		},
		{
			name:    "missing changelog marker",
			m:       valid,
			version: "1.0",
			layout:  domain.Layout{domain.RoleManifest: true, domain.RoleLib: true},
			wantErr: domain.ErrMissingChangelog,
		},
		{
			name:    "no content roles",
			m:       valid,
			version: "1.0",
			layout: domain.Layout{
				domain.RoleManifest: true,
				domain.RoleChanges:  true,
				domain.RoleTest:     true,
				domain.RoleVar:      true,
			},
			wantErr: domain.ErrEmptyPackageLayout,
		},
		{
			name:    "malformed version",
			m:       valid,
			version: "v1.0",
			layout:  validLayout(),
			wantErr: domain.ErrMalformedVersion,
		},
		{
			name:    "dirty version allowed",
			m:       valid,
			version: "1.0+dirty",
			layout:  validLayout(),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewPackageDescriptor(tt.m, tt.version, "", tt.layout)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPackageDescriptor_AddRequirement(t *testing.T) {
	m := domain.Manifest{
		Package:  "foo",
		Requires: domain.DependencyList{{Name: "libbar", Constraint: ">=1.0"}},
	}
	desc, err := domain.NewPackageDescriptor(m, "1.0", "", validLayout())
	require.NoError(t, err)

	desc.AddRequirement("libbaz")
	assert.Equal(t, domain.DependencyList{
		{Name: "libbar", Constraint: ">=1.0"},
		{Name: "libbaz"},
	}, desc.Requires)

	// Declared packages are not duplicated.
	desc.AddRequirement("libbar")
	assert.Len(t, desc.Requires, 2)
}
