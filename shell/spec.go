package shell

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"
)

// LineHandler receives one completed output line, without its trailing
// newline. Handlers run synchronously on the stream pump; a slow handler
// slows the pump down.
type LineHandler func(line string)

// WaitFunc is a post-completion condition awaited before Run returns.
// It receives the completed Result and the wait-phase context, which
// carries the wait timeout if one was configured.
type WaitFunc func(ctx context.Context, r *Result) error

// InputRequest supplies the next line of input for an interactive session.
// It is offered snapshots of the output accumulated so far and returns:
//
//   - (line, true): write line to the process's stdin and ask again.
//   - ("", true): nothing to send yet; ask again after the next poll.
//   - (_, false): decline; no further input will be requested.
//
// The callback is never invoked concurrently with itself.
type InputRequest func(stdout, stderr string) (line string, more bool)

// Spec is an immutable description of one interpreter invocation.
//
// The zero value is not runnable; start from New. Every With* method uses
// a value receiver and returns a derived Spec, copying any map or slice it
// changes, so a Spec held by the caller is never mutated.
type Spec struct {
	interpreter string
	interpArgs  []string
	command     string
	args        []string
	env         map[string]string
	dir         string
	input       []string
	onStdout    []LineHandler
	onStderr    []LineHandler
	waits       []WaitFunc
	timeout     time.Duration
	waitTimeout time.Duration
	onInput     InputRequest
	allowFail   bool
	successCode int
	anyExit     bool
	maxOutput   int
	logger      *slog.Logger
	host        *Spec
}

// New returns a Spec for the given interpreter. Relative names are resolved
// via the OS path lookup at launch. Extra args are passed to the
// interpreter ahead of the command text; when omitted they default to the
// conventional "-c".
func New(interpreter string, args ...string) Spec {
	if len(args) == 0 {
		args = []string{"-c"}
	}
	return Spec{
		interpreter: interpreter,
		interpArgs:  slices.Clone(args),
	}
}

// WithCommand sets the raw command text handed to the interpreter. The text
// is opaque to this package; it is not parsed or interpreted.
func (s Spec) WithCommand(command string) Spec {
	s.command = command
	return s
}

// WithArgs appends arguments to the command text. Each argument is quoted
// for the interpreter, so spaces and shell metacharacters pass through
// literally.
func (s Spec) WithArgs(args ...string) Spec {
	s.args = append(slices.Clone(s.args), args...)
	return s
}

// WithEnv merges the given variables over any previously configured
// overrides. Overrides are applied on top of the inherited environment at
// launch.
func (s Spec) WithEnv(env map[string]string) Spec {
	merged := make(map[string]string, len(s.env)+len(env))
	maps.Copy(merged, s.env)
	maps.Copy(merged, env)
	s.env = merged
	return s
}

// WithDir sets the working directory for the process.
func (s Spec) WithDir(dir string) Spec {
	s.dir = dir
	return s
}

// WithInput queues literal input lines. They are written to the process's
// stdin immediately after launch, in registration order, each followed by a
// newline.
func (s Spec) WithInput(lines ...string) Spec {
	s.input = append(slices.Clone(s.input), lines...)
	return s
}

// OnStdout registers a handler for stdout lines. Registration is additive;
// every registered handler sees every line, in arrival order.
func (s Spec) OnStdout(h LineHandler) Spec {
	s.onStdout = append(slices.Clone(s.onStdout), h)
	return s
}

// OnStderr registers a handler for stderr lines.
func (s Spec) OnStderr(h LineHandler) Spec {
	s.onStderr = append(slices.Clone(s.onStderr), h)
	return s
}

// WithWait registers a wait function, run after the Result exists. Wait
// functions run sequentially in registration order.
func (s Spec) WithWait(w WaitFunc) Spec {
	s.waits = append(slices.Clone(s.waits), w)
	return s
}

// WithTimeout bounds the whole execution. When it elapses the process tree
// is forcibly terminated and Run fails with *TimeoutError. Zero means
// unbounded.
func (s Spec) WithTimeout(d time.Duration) Spec {
	s.timeout = d
	return s
}

// WithWaitTimeout bounds the wait phase independently of the execution
// timeout. Exceeding it fails with *WaitTimeoutError; the already-produced
// Result is unaffected.
func (s Spec) WithWaitTimeout(d time.Duration) Spec {
	s.waitTimeout = d
	return s
}

// OnInputRequest registers the interactive input callback. See
// [InputRequest] for the contract. When no callback is registered, stdin is
// closed once the queued input lines have been written.
func (s Spec) OnInputRequest(fn InputRequest) Spec {
	s.onInput = fn
	return s
}

// AllowFailure suppresses *ExitError: a process exiting with an unexpected
// code returns its Result normally, with Succeeded set to false. Timeouts
// are never suppressed.
func (s Spec) AllowFailure() Spec {
	s.allowFail = true
	return s
}

// WithExpectedExitCode overrides the exit code treated as success
// (default 0).
func (s Spec) WithExpectedExitCode(code int) Spec {
	s.successCode = code
	s.anyExit = false
	return s
}

// AcceptAnyExitCode treats every exit code as success.
func (s Spec) AcceptAnyExitCode() Spec {
	s.anyExit = true
	return s
}

// WithMaxOutput caps each accumulated output buffer at n bytes. Further
// output is discarded from the buffer (handlers still see every line) and
// the Result is marked Truncated. Zero means unlimited.
func (s Spec) WithMaxOutput(n int) Spec {
	s.maxOutput = n
	return s
}

// WithLogger attaches a structured logger for execution diagnostics.
// Without one, diagnostics are discarded.
func (s Spec) WithLogger(l *slog.Logger) Spec {
	s.logger = l
	return s
}

// InShell wraps the receiver's entire interpreter invocation as the command
// text executed by host. Wrapping nests: the host may itself be wrapped.
func (s Spec) InShell(host Spec) Spec {
	s.host = &host
	return s
}

// Run executes the specification on the default engine.
func (s Spec) Run(ctx context.Context) (*Result, error) {
	return Run(ctx, s)
}

// Argv returns the flattened argument vector: interpreter, interpreter
// args, then the fully-composed command text. Nested shells are flattened
// outward-in, the receiver's own invocation becoming the command text of
// its host.
func (s Spec) Argv() []string {
	if s.host != nil {
		host := *s.host
		host.command = s.invocation()
		host.args = nil
		return host.Argv()
	}
	argv := make([]string, 0, len(s.interpArgs)+2)
	argv = append(argv, s.interpreter)
	argv = append(argv, s.interpArgs...)
	argv = append(argv, s.commandText())
	return argv
}

// String renders the flattened invocation as a single shell-quoted line.
func (s Spec) String() string {
	argv := s.Argv()
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = quote(a)
	}
	return strings.Join(quoted, " ")
}

// commandText composes the command string with any appended arguments
// quoted in.
func (s Spec) commandText() string {
	if len(s.args) == 0 {
		return s.command
	}
	var sb strings.Builder
	sb.WriteString(s.command)
	for _, a := range s.args {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(quote(a))
	}
	return sb.String()
}

// invocation renders this spec's own interpreter invocation as one quoted
// string, suitable as the command text of a wrapping shell.
func (s Spec) invocation() string {
	parts := make([]string, 0, len(s.interpArgs)+2)
	parts = append(parts, quote(s.interpreter))
	for _, a := range s.interpArgs {
		parts = append(parts, quote(a))
	}
	parts = append(parts, quote(s.commandText()))
	return strings.Join(parts, " ")
}

// quote single-quotes s for a POSIX shell when it contains anything beyond
// plain word characters.
func quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsFunc(s, func(r rune) bool {
		return !(r == '-' || r == '_' || r == '.' || r == '/' || r == ':' ||
			r == '=' || r == ',' || r == '+' ||
			(r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z'))
	}) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// log returns the configured logger or a discarding one.
func (s Spec) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
