package perl_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/srcdeb/srcdeb/internal/adapters/perl"
	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/srcdeb/srcdeb/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeInc lays out a module tree under a fresh directory.
func fakeInc(t *testing.T, modules ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, rel := range modules {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("1;\n"), 0o600))
	}
	return dir
}

func TestLocate(t *testing.T) {
	site := fakeInc(t, "LWP/UserAgent.pm")
	core := fakeInc(t, "POSIX.pm")

	l := perl.NewLocatorWithPaths([]string{site, core}, []string{core})

	provider, err := l.Locate(context.Background(), "LWP::UserAgent")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(site, "LWP/UserAgent.pm"), provider.Path)
	assert.False(t, provider.Core)

	provider, err = l.Locate(context.Background(), "POSIX")
	require.NoError(t, err)
	assert.True(t, provider.Core)
}

func TestLocate_SearchOrder(t *testing.T) {
	first := fakeInc(t, "Foo.pm")
	second := fakeInc(t, "Foo.pm")

	l := perl.NewLocatorWithPaths([]string{first, second}, nil)

	provider, err := l.Locate(context.Background(), "Foo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "Foo.pm"), provider.Path)
}

// Building the locator must not touch the interpreter; the first Locate call
// queries it exactly once and later calls reuse the captured paths.
func TestLocate_QueriesInterpreterLazilyAndOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	site := fakeInc(t, "LWP/UserAgent.pm")

	cmd := mocks.NewMockCommander(ctrl)
	l := perl.NewLocator(cmd)

	cmd.EXPECT().
		Output(gomock.Any(), "", "perl", "-e", `print join("\n", @INC)`).
		Return(site, nil).Times(1)
	cmd.EXPECT().
		Output(gomock.Any(), "", "perl", "-MConfig", "-e", `print join("\n", @Config{qw(privlibexp archlibexp)})`).
		Return("", nil).Times(1)

	for i := 0; i < 2; i++ {
		provider, err := l.Locate(context.Background(), "LWP::UserAgent")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(site, "LWP/UserAgent.pm"), provider.Path)
	}
}

func TestLocate_Unresolvable(t *testing.T) {
	l := perl.NewLocatorWithPaths([]string{t.TempDir()}, nil)

	_, err := l.Locate(context.Background(), "No::Such::Module")
	if !errors.Is(err, domain.ErrUnresolvableModule) {
		t.Errorf("expected ErrUnresolvableModule, got %v", err)
	}
}
