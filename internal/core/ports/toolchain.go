package ports

import "context"

// TestRunner runs the project's own test suite. Pass/fail only.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type TestRunner interface {
	Run(ctx context.Context, dir string) error
}

// Builder invokes the native packaging toolchain on a prepared source tree.
type Builder interface {
	// Build produces the binary package artifacts and moves them into
	// outDir, returning their paths.
	Build(ctx context.Context, srcDir, outDir string) ([]string, error)
}
