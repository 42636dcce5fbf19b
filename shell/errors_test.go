package shell

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchErrorUnwrap(t *testing.T) {
	err := &LaunchError{Cause: exec.ErrNotFound}
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Contains(t, err.Error(), "launching process")
}

func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{Result: &Result{
		ExitCode: 127,
		Stderr:   "sh: 1: nope: not found\nsecond line\n",
	}}
	assert.Equal(t, "exit status 127: sh: 1: nope: not found", err.Error())
}

func TestExitErrorMessageWithoutStderr(t *testing.T) {
	err := &ExitError{Result: &Result{ExitCode: 3}}
	assert.Equal(t, "exit status 3", err.Error())
}

func TestIsTimeout(t *testing.T) {
	timeout := &TimeoutError{Partial: &Result{}, Timeout: time.Second}
	waitTimeout := &WaitTimeoutError{Result: &Result{}, Timeout: time.Second}

	assert.True(t, IsTimeout(timeout))
	assert.True(t, IsTimeout(waitTimeout))
	assert.True(t, IsTimeout(fmt.Errorf("running build: %w", timeout)))
	assert.False(t, IsTimeout(&ExitError{Result: &Result{ExitCode: 1}}))
	assert.False(t, IsTimeout(errors.New("plain")))
	assert.False(t, IsTimeout(nil))
}

func TestNotFound(t *testing.T) {
	require.True(t, NotFound(&LaunchError{Cause: exec.ErrNotFound}))
	require.True(t, NotFound(fmt.Errorf("wrapped: %w",
		&LaunchError{Cause: exec.ErrNotFound})))

	assert.False(t, NotFound(&LaunchError{Cause: errors.New("permission denied")}))
	assert.False(t, NotFound(&ExitError{Result: &Result{ExitCode: 127}}))
	assert.False(t, NotFound(nil))
}

func TestTimeoutErrorMessages(t *testing.T) {
	assert.Equal(t, "execution timed out after 2s",
		(&TimeoutError{Timeout: 2 * time.Second}).Error())
	assert.Equal(t, "wait phase timed out after 500ms",
		(&WaitTimeoutError{Timeout: 500 * time.Millisecond}).Error())
}
