package shell

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"
)

// pump drains one output stream for the lifetime of the process. It
// accumulates raw bytes into a snapshot buffer and fans completed lines out
// to the registered handlers, in arrival order. The buffer is written only
// by the pump's own goroutine; snapshot readers take the lock.
type pump struct {
	handlers []LineHandler
	limit    int // buffer cap in bytes; 0 means unlimited

	mu        sync.Mutex
	buf       bytes.Buffer
	truncated bool
}

func newPump(handlers []LineHandler, limit int) *pump {
	return &pump{handlers: handlers, limit: limit}
}

// run reads r until EOF. Raw bytes go to the snapshot buffer as they
// arrive, so interactive callers can observe prompts that lack a trailing
// newline; handlers fire only as lines complete. A trailing unterminated
// line is flushed to handlers at EOF.
func (p *pump) run(r io.Reader) error {
	rd := bufio.NewReader(r)
	chunk := make([]byte, 32*1024)
	var pending []byte
	for {
		n, err := rd.Read(chunk)
		if n > 0 {
			p.append(chunk[:n])
			pending = append(pending, chunk[:n]...)
			for {
				i := bytes.IndexByte(pending, '\n')
				if i < 0 {
					break
				}
				p.dispatch(pending[:i])
				pending = pending[i+1:]
			}
		}
		if err != nil {
			if len(pending) > 0 {
				p.dispatch(pending)
			}
			if errors.Is(err, io.EOF) ||
				errors.Is(err, fs.ErrClosed) ||
				errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return fmt.Errorf("reading stream: %w", err)
		}
	}
}

// dispatch invokes every handler with the completed line, CR stripped.
func (p *pump) dispatch(raw []byte) {
	line := strings.TrimSuffix(string(raw), "\r")
	for _, h := range p.handlers {
		h(line)
	}
}

// append adds raw output to the snapshot buffer, honoring the cap.
func (p *pump) append(b []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.limit <= 0 {
		p.buf.Write(b)
		return
	}
	room := p.limit - p.buf.Len()
	if room <= 0 {
		p.truncated = true
		return
	}
	if len(b) > room {
		p.buf.Write(b[:room])
		p.truncated = true
		return
	}
	p.buf.Write(b)
}

// snapshot returns the text accumulated so far at the instant of the call.
// It never blocks the pump beyond the copy.
func (p *pump) snapshot() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buf.String()
}

func (p *pump) isTruncated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.truncated
}
