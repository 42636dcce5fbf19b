package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Engine is the concrete Runner. It is stateless and safe for concurrent
// use; all per-execution configuration lives on the Spec.
type Engine struct{}

// NewEngine returns an execution engine.
func NewEngine() *Engine { return &Engine{} }

// Run launches the process described by spec, pumps its output streams,
// services interactive input, and races completion against the configured
// timeout. It blocks until the process has exited, both streams have
// drained, and any wait functions have run.
//
// Run returns, in order of precedence: *LaunchError when no process could
// be started (nil Result); *TimeoutError with the partial Result when the
// overall timeout elapsed; the context's error when the caller canceled;
// *ExitError with the full Result on an unexpected exit code (unless
// suppressed via AllowFailure); *WaitTimeoutError or the wait function's
// own error, wrapped, when the wait phase failed.
func (e *Engine) Run(ctx context.Context, spec Spec) (*Result, error) {
	proc, err := launch(spec)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	log := spec.log().With("run_id", proc.id)
	log.Debug("process started",
		"pid", proc.cmd.Process.Pid, "command", spec.String())

	outPump := newPump(spec.onStdout, spec.maxOutput)
	errPump := newPump(spec.onStderr, spec.maxOutput)

	var pumps errgroup.Group
	pumps.Go(func() error { return outPump.run(proc.stdout) })
	pumps.Go(func() error { return errPump.run(proc.stderr) })

	done := make(chan struct{})
	coord := &coordinator{
		stdin:   proc.stdin,
		queued:  spec.input,
		request: spec.onInput,
		stdout:  outPump,
		stderr:  errPump,
		done:    done,
		log:     log,
	}
	go coord.run()

	// exited fires once both pumps have drained to EOF and the process has
	// been reaped. Killing the process tree forces EOF on the pipes, so the
	// timeout and cancellation branches below always unblock it.
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		if err := pumps.Wait(); err != nil {
			log.Debug("stream pump error", "error", err)
		}
		if err := proc.cmd.Wait(); err != nil {
			log.Debug("process wait", "error", err)
		}
	}()

	var timeoutCh <-chan time.Time
	if spec.timeout > 0 {
		t := time.NewTimer(spec.timeout)
		defer t.Stop()
		timeoutCh = t.C
	}

	finish := func() *Result {
		close(done)
		_ = proc.stdin.Close()
		return buildResult(proc, spec, outPump, errPump, start)
	}

	select {
	case <-timeoutCh:
		proc.kill()
		<-exited
		res := finish()
		log.Debug("execution timed out", "timeout", spec.timeout)
		return res, &TimeoutError{Partial: res, Timeout: spec.timeout}
	case <-ctx.Done():
		proc.kill()
		<-exited
		res := finish()
		log.Debug("execution canceled", "cause", context.Cause(ctx))
		return res, ctx.Err()
	case <-exited:
	}

	res := finish()
	log.Debug("process exited",
		"code", res.ExitCode, "succeeded", res.Succeeded,
		"duration", res.Duration)

	if !res.Succeeded && !spec.allowFail {
		return res, &ExitError{Result: res}
	}
	if err := waitPhase(ctx, spec, res, log); err != nil {
		return res, err
	}
	return res, nil
}

// waitPhase runs the registered wait functions sequentially against the
// completed Result, bounded by the wait timeout when one is configured.
func waitPhase(ctx context.Context, spec Spec, res *Result, log *slog.Logger) error {
	if len(spec.waits) == 0 {
		return nil
	}
	wctx := ctx
	if spec.waitTimeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(ctx, spec.waitTimeout)
		defer cancel()
	}
	for i, wait := range spec.waits {
		if err := wctx.Err(); err != nil {
			return waitErr(err, spec, res)
		}
		if err := wait(wctx, res); err != nil {
			if werr := wctx.Err(); werr != nil {
				return waitErr(werr, spec, res)
			}
			return fmt.Errorf("wait condition %d: %w", i, err)
		}
		log.Debug("wait condition satisfied", "index", i)
	}
	return nil
}

// waitErr classifies a wait-phase context error: the independent wait
// deadline becomes *WaitTimeoutError; caller cancellation passes through.
func waitErr(err error, spec Spec, res *Result) error {
	if spec.waitTimeout > 0 && errors.Is(err, context.DeadlineExceeded) {
		return &WaitTimeoutError{Result: res, Timeout: spec.waitTimeout}
	}
	return err
}

// buildResult assembles the final Result after both pumps have drained.
// The exit code is -1 when the process was killed before exiting normally.
func buildResult(proc *process, spec Spec, outPump, errPump *pump, start time.Time) *Result {
	code := -1
	if ps := proc.cmd.ProcessState; ps != nil {
		code = ps.ExitCode()
	}
	return &Result{
		RunID:     proc.id,
		ExitCode:  code,
		Succeeded: spec.anyExit || code == spec.successCode,
		Stdout:    outPump.snapshot(),
		Stderr:    errPump.snapshot(),
		Truncated: outPump.isTruncated() || errPump.isTruncated(),
		Duration:  time.Since(start),
	}
}
