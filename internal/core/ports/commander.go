package ports

import "context"

// Commander runs external commands for the exec-backed adapters.
//
//go:generate mockgen -source=commander.go -destination=mocks/mock_commander.go -package=mocks
type Commander interface {
	// Output runs the command in dir and returns its captured stdout.
	Output(ctx context.Context, dir, name string, args ...string) (string, error)

	// Run runs the command in dir, streaming output to the logger.
	Run(ctx context.Context, dir, name string, args ...string) error
}
