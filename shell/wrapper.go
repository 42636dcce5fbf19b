package shell

import (
	"context"
	"log/slog"
	"time"
)

// Executable binds a program name to a base specification, making repeated
// invocations of one tool convenient: each Run prepends the program name to
// the supplied arguments and executes through the configured shell.
// Executable accepts any Runner, so tests can substitute a mock.
type Executable struct {
	runner Runner
	spec   Spec
	name   string
}

// NewExecutable returns an Executable running name through base on runner.
// A nil runner uses the default engine.
func NewExecutable(runner Runner, base Spec, name string) *Executable {
	if runner == nil {
		runner = defaultEngine
	}
	return &Executable{runner: runner, spec: base, name: name}
}

// WithEnv merges environment overrides into the base specification.
func (e *Executable) WithEnv(env map[string]string) *Executable {
	c := *e
	c.spec = c.spec.WithEnv(env)
	return &c
}

// WithDir sets the working directory on the base specification.
func (e *Executable) WithDir(dir string) *Executable {
	c := *e
	c.spec = c.spec.WithDir(dir)
	return &c
}

// WithTimeout sets the overall timeout on the base specification.
func (e *Executable) WithTimeout(d time.Duration) *Executable {
	c := *e
	c.spec = c.spec.WithTimeout(d)
	return &c
}

// WithLogger sets the logger on the base specification.
func (e *Executable) WithLogger(l *slog.Logger) *Executable {
	c := *e
	c.spec = c.spec.WithLogger(l)
	return &c
}

// Spec returns the specification that Run would execute for args.
func (e *Executable) Spec(args ...string) Spec {
	return e.spec.WithCommand(e.name).WithArgs(args...)
}

// Run executes the program with the given arguments.
//
//	git := shell.NewExecutable(nil, shell.New("sh"), "git")
//	result, err := git.Run(ctx, "status")
func (e *Executable) Run(ctx context.Context, args ...string) (*Result, error) {
	return e.runner.Run(ctx, e.Spec(args...))
}
