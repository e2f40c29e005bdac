package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	os.Args = []string{"srcdeb", "version"}
	assert.Equal(t, 0, run())
}

func TestRun_InvalidSourceTree(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	// An empty directory has no manifest, so the pipeline must fail.
	os.Args = []string{"srcdeb", "package", t.TempDir()}
	assert.Equal(t, 1, run())
}
