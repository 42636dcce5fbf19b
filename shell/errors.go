package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

// LaunchError reports a process that could not be started: the interpreter
// was not found or the OS refused to start it. No process existed, so no
// Result is attached. Launch failures are fatal and never retried.
type LaunchError struct {
	// Cause is the underlying error from the OS or path lookup.
	Cause error
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching process: %v", e.Cause)
}

// Unwrap returns the underlying error.
func (e *LaunchError) Unwrap() error { return e.Cause }

// ExitError reports a process that ran to completion but exited with an
// unexpected code. The full Result is attached so callers intercepting the
// failure can still inspect the exit code and output. Suppressible via
// Spec.AllowFailure.
type ExitError struct {
	// Result is the complete result of the failed execution.
	Result *Result
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	msg := fmt.Sprintf("exit status %d", e.Result.ExitCode)
	if s := strings.TrimSpace(e.Result.Stderr); s != "" {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[:i]
		}
		msg += ": " + s
	}
	return msg
}

// TimeoutError reports an execution that exceeded its overall timeout. The
// process tree was forcibly terminated. Partial is the Result assembled
// from whatever output had accumulated when the deadline hit. Timeouts are
// always surfaced; they cannot be suppressed.
type TimeoutError struct {
	// Partial is the result available at the moment of termination.
	Partial *Result

	// Timeout is the configured overall timeout.
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("execution timed out after %s", e.Timeout)
}

// WaitTimeoutError reports wait functions that exceeded the wait-phase
// timeout. The execution itself completed; Result is the completed result,
// unaffected by the wait failure.
type WaitTimeoutError struct {
	// Result is the completed result the wait functions were given.
	Result *Result

	// Timeout is the configured wait-phase timeout.
	Timeout time.Duration
}

// Error implements the error interface.
func (e *WaitTimeoutError) Error() string {
	return fmt.Sprintf("wait phase timed out after %s", e.Timeout)
}

// IsTimeout reports whether err is an execution or wait-phase timeout.
func IsTimeout(err error) bool {
	var te *TimeoutError
	var wte *WaitTimeoutError
	return errors.As(err, &te) || errors.As(err, &wte)
}

// NotFound reports whether err represents an interpreter that could not be
// found or started. Note that a command missing *inside* the interpreter
// surfaces as a non-zero exit code (conventionally 127) through *ExitError,
// not here.
func NotFound(err error) bool {
	var le *LaunchError
	if !errors.As(err, &le) {
		return false
	}
	return errors.Is(le.Cause, exec.ErrNotFound) ||
		errors.Is(le.Cause, fs.ErrNotExist)
}
