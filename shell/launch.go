package shell

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/google/uuid"
)

// process is a live handle to a launched interpreter plus its three
// communication endpoints.
type process struct {
	id     string
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	stderr io.ReadCloser
}

// launch resolves the flattened command line and starts the OS process with
// redirected stdin, stdout, and stderr. Any failure to start is a
// *LaunchError; no process exists afterward.
func launch(s Spec) (*process, error) {
	if s.interpreter == "" && s.host == nil {
		return nil, &LaunchError{Cause: errors.New("no interpreter specified")}
	}

	argv := s.Argv()
	cmd := exec.Command(argv[0], argv[1:]...)
	if s.dir != "" {
		cmd.Dir = s.dir
	}
	cmd.Env = os.Environ()
	for k, v := range s.env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	setProcGroup(cmd)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &LaunchError{Cause: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &LaunchError{Cause: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &LaunchError{Cause: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Cause: err}
	}

	return &process{
		id:     uuid.New().String(),
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}, nil
}
