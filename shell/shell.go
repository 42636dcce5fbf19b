package shell

import (
	"context"
	"time"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/runner.go -pkg mocks . Runner

// Runner executes a fully-built specification and produces its result.
// Production code uses the concrete *Engine; code under test can substitute
// a mock implementation.
type Runner interface {
	// Run executes the specification and blocks until the process has
	// exited and any wait functions have completed. The returned Result is
	// non-nil whenever a process ran, even alongside an error.
	Run(ctx context.Context, spec Spec) (*Result, error)
}

// Result is the structured outcome of one completed process execution. It
// is created once, after the process has terminated and both output streams
// have drained, and is immutable thereafter.
type Result struct {
	// RunID uniquely identifies this execution.
	RunID string

	// ExitCode is the exit code reported by the OS. It is -1 when the
	// process was terminated by a signal (timeouts included).
	ExitCode int

	// Succeeded reports whether ExitCode matched the expected success code
	// (conventionally 0), or whether any code was accepted.
	Succeeded bool

	// Stdout is the accumulated standard output.
	Stdout string

	// Stderr is the accumulated standard error.
	Stderr string

	// Truncated reports whether either buffer hit the configured output cap.
	Truncated bool

	// Duration is the wall time from launch to process exit.
	Duration time.Duration
}

var defaultEngine Runner = NewEngine()

// Run executes the specification on the default engine.
func Run(ctx context.Context, spec Spec) (*Result, error) {
	return defaultEngine.Run(ctx, spec)
}

// Select runs the specification and applies fn to the completed Result,
// returning fn's output as the caller-visible value. Errors from fn
// propagate unmodified; execution errors are returned before fn is called.
func Select[T any](ctx context.Context, spec Spec, fn func(*Result) (T, error)) (T, error) {
	r, err := Run(ctx, spec)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(r)
}
