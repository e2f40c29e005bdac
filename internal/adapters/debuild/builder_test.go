package debuild_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/srcdeb/srcdeb/internal/adapters/debuild"
	"github.com/srcdeb/srcdeb/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.trai.ch/zerr"
)

func TestBuild_MovesArtifactsToOutputDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parent := t.TempDir()
	srcDir := filepath.Join(parent, "foo")
	require.NoError(t, os.Mkdir(srcDir, 0o755))
	outDir := filepath.Join(t.TempDir(), "out")

	cmd := mocks.NewMockCommander(ctrl)
	cmd.EXPECT().
		Run(gomock.Any(), srcDir, "debuild", "-us", "-uc", "-b").
		DoAndReturn(func(context.Context, string, string, ...string) error {
			// debuild drops artifacts next to the source tree.
			return os.WriteFile(filepath.Join(parent, "foo_1.2_all.deb"), []byte("deb"), 0o644)
		})

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any())

	b := debuild.NewBuilder(cmd, logger)
	artifacts, err := b.Build(context.Background(), srcDir, outDir)
	require.NoError(t, err)

	require.Len(t, artifacts, 1)
	assert.Equal(t, filepath.Join(outDir, "foo_1.2_all.deb"), artifacts[0])
	_, err = os.Stat(artifacts[0])
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(parent, "foo_1.2_all.deb"))
	assert.True(t, os.IsNotExist(err))
}

func TestBuild_NoArtifactsIsAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parent := t.TempDir()
	srcDir := filepath.Join(parent, "foo")
	require.NoError(t, os.Mkdir(srcDir, 0o755))

	cmd := mocks.NewMockCommander(ctrl)
	cmd.EXPECT().
		Run(gomock.Any(), srcDir, "debuild", "-us", "-uc", "-b").
		Return(nil)

	b := debuild.NewBuilder(cmd, mocks.NewMockLogger(ctrl))
	_, err := b.Build(context.Background(), srcDir, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no artifacts")
}

func TestBuild_ToolchainFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cmd := mocks.NewMockCommander(ctrl)
	cmd.EXPECT().
		Run(gomock.Any(), "/src/foo", "debuild", "-us", "-uc", "-b").
		Return(zerr.New("exit status 2"))

	b := debuild.NewBuilder(cmd, mocks.NewMockLogger(ctrl))
	_, err := b.Build(context.Background(), "/src/foo", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "packaging toolchain failed")
}
