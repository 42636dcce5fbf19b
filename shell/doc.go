// Package shell runs external commands through an interpreter without
// blocking the caller for the lifetime of the process.
//
// The package is built around two types: Spec, an immutable description of
// one interpreter invocation, and Result, the structured outcome of a
// completed execution. Following Go best practices, the package returns
// concrete types (Engine, Executable) while accepting interfaces in
// function parameters, making it easy to mock command execution in tests.
//
// # Basic Usage
//
// Build a specification and run it:
//
//	spec := shell.New("bash").WithCommand("echo hello world")
//	result, err := spec.Run(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Stdout) // "hello world\n"
//
// # Immutability
//
// Every With* method returns a new Spec derived from the receiver; the
// receiver is never mutated. Partially-built specifications can therefore
// be shared, branched, and reused across executions:
//
//	base := shell.New("sh").WithEnv(map[string]string{"CI": "1"})
//	quick := base.WithTimeout(5 * time.Second)
//	slow := base.WithTimeout(5 * time.Minute)
//
// # Observing Output
//
// Output handlers fire synchronously, once per completed line, in the order
// the lines were produced. All registered handlers see every line:
//
//	spec := shell.New("sh").
//		WithCommand("make build").
//		OnStdout(func(line string) { fmt.Println("> " + line) })
//
// The full stdout and stderr text is accumulated regardless of handlers and
// is available on the Result (and on failure payloads, so diagnostics are
// never lost on timeout or non-zero exit).
//
// # Interactive Input
//
// Literal input lines queued with WithInput are written to the process's
// stdin immediately after launch. For prompt-driven sessions, register an
// input-request callback that inspects the accumulated output snapshots and
// decides what to type next:
//
//	spec := shell.New("sh").
//		WithCommand(`printf "name? "; read n; echo "hello $n"`).
//		OnInputRequest(func(stdout, stderr string) (string, bool) {
//			if strings.Contains(stdout, "name? ") {
//				return "world", true
//			}
//			return "", true // nothing to send yet, ask again
//		})
//
// Returning false stops the input loop for good.
//
// # Failure Handling
//
// A process that exits with an unexpected code produces an *ExitError
// carrying the full Result. Callers that prefer to inspect the exit code
// themselves can opt out with AllowFailure:
//
//	result, err := shell.New("sh").WithCommand("exit 3").AllowFailure().Run(ctx)
//	// err == nil, result.ExitCode == 3, result.Succeeded == false
//
// An overall timeout forcibly terminates the process tree and surfaces a
// *TimeoutError with the partial Result; a launch that never produced a
// process surfaces a *LaunchError.
//
// # Nesting Shells
//
// One shell can run inside another. InShell wraps the receiver's entire
// interpreter invocation as the command text executed by the host shell:
//
//	inner := shell.New("sh").WithCommand("echo hi")
//	spec := inner.InShell(shell.New("bash"))
//	// runs: bash -c "sh -c 'echo hi'"
//
// # Testing
//
// Production code uses the concrete *Engine, but code under test can accept
// the Runner interface and substitute a mock (see the mocks subpackage).
package shell
