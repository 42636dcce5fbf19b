package shell

import (
	"io"
	"log/slog"
	"time"
)

// inputPollInterval paces the input-request loop when the callback had
// nothing to send.
const inputPollInterval = 10 * time.Millisecond

// coordinator feeds the process's stdin: queued literal lines first, then
// the optional input-request loop. It runs on its own goroutine; done is
// closed when the process exits.
type coordinator struct {
	stdin   io.WriteCloser
	queued  []string
	request InputRequest
	stdout  *pump
	stderr  *pump
	done    <-chan struct{}
	log     *slog.Logger
}

// run drains queued input, then services the input-request callback until
// it declines or the process exits. Write failures after process exit are
// expected and swallowed; the process's own exit is authoritative.
func (c *coordinator) run() {
	for _, line := range c.queued {
		if !c.write(line) {
			return
		}
	}
	if c.request == nil {
		// No interactive session: signal EOF so line-reading commands
		// terminate deterministically.
		_ = c.stdin.Close()
		return
	}
	for {
		select {
		case <-c.done:
			return
		default:
		}
		line, more := c.request(c.stdout.snapshot(), c.stderr.snapshot())
		if !more {
			return
		}
		if line != "" {
			if !c.write(line) {
				return
			}
			continue
		}
		select {
		case <-c.done:
			return
		case <-time.After(inputPollInterval):
		}
	}
}

// write sends one line plus terminator to stdin. Returns false when the
// pipe is gone.
func (c *coordinator) write(line string) bool {
	if _, err := io.WriteString(c.stdin, line+"\n"); err != nil {
		c.log.Debug("stdin write failed", "error", err)
		return false
	}
	return true
}
