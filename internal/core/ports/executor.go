package ports

import (
	"context"

	"go.trai.ch/weld/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command synchronously and returns its exit status.
	//
	// A command that runs and exits non-zero is not an error: the status is
	// returned with a nil error. An error is returned only when the process
	// could not be started for a reason other than a missing executable.
	Run(ctx context.Context, cmd domain.Command) (int, error)
}
