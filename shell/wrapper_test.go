package shell_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jbatten/sheller/shell"
)

func TestExecutableRunsProgram(t *testing.T) {
	echo := shell.NewExecutable(nil, shell.New("sh"), "echo")
	res, err := echo.Run(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Stdout, "hello") {
		t.Errorf("expected stdout to contain 'hello', got: %s", res.Stdout)
	}
}

func TestExecutableDerivationDoesNotMutateBase(t *testing.T) {
	base := shell.NewExecutable(nil, shell.New("sh"), "pwd")
	derived := base.WithDir("/tmp")

	res, err := derived.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Stdout, "/tmp") {
		t.Errorf("expected derived executable to run in /tmp, got: %s", res.Stdout)
	}

	if got, want := base.Spec().String(), `sh -c pwd`; got != want {
		t.Errorf("base spec changed: got %q, want %q", got, want)
	}
}
