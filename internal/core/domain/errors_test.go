package domain_test

import (
	"errors"
	"testing"

	"github.com/srcdeb/srcdeb/internal/core/domain"
	"go.trai.ch/zerr"
)

// Errors carrying context metadata must still match their sentinel through
// errors.Is: callers branch on the error kind, not on its message.
func TestSentinelIdentitySurvivesMetadata(t *testing.T) {
	_, parseErr := domain.ParseVersion("not a version\n")
	_, descErr := domain.NewPackageDescriptor(domain.Manifest{Package: "foo"}, "bogus", "", domain.Layout{
		domain.RoleManifest: true,
		domain.RoleChanges:  true,
		domain.RoleLib:      true,
	})

	tests := []struct {
		name     string
		err      error
		sentinel error
		key      string
	}{
		{"parse version", parseErr, domain.ErrMalformedVersion, "line"},
		{"descriptor version", descErr, domain.ErrMalformedVersion, "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("expected errors.Is to match the sentinel, got %v", tt.err)
			}

			var z *zerr.Error
			if !errors.As(tt.err, &z) {
				t.Fatalf("expected a zerr error, got %T", tt.err)
			}
			if _, ok := z.Metadata()[tt.key]; !ok {
				t.Errorf("expected metadata key %q, got %v", tt.key, z.Metadata())
			}
		})
	}
}
