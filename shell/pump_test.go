package shell

import (
	"strings"
	"testing"
)

func TestPumpDispatchesLinesInOrder(t *testing.T) {
	var first, second []string
	p := newPump([]LineHandler{
		func(line string) { first = append(first, line) },
		func(line string) { second = append(second, line) },
	}, 0)

	if err := p.run(strings.NewReader("a\nb\nc\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a", "b", "c"}
	for name, got := range map[string][]string{"first": first, "second": second} {
		if len(got) != 3 {
			t.Fatalf("%s: expected 3 lines, got: %v", name, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s line %d: expected %q, got %q", name, i, want[i], got[i])
			}
		}
	}
	if got := p.snapshot(); got != "a\nb\nc\n" {
		t.Errorf("snapshot = %q, want %q", got, "a\nb\nc\n")
	}
}

func TestPumpFlushesUnterminatedLine(t *testing.T) {
	var lines []string
	p := newPump([]LineHandler{
		func(line string) { lines = append(lines, line) },
	}, 0)

	if err := p.run(strings.NewReader("x\ny")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "x" || lines[1] != "y" {
		t.Errorf("expected [x y], got: %v", lines)
	}
	if got := p.snapshot(); got != "x\ny" {
		t.Errorf("snapshot = %q, want %q", got, "x\ny")
	}
}

func TestPumpStripsCarriageReturnForHandlers(t *testing.T) {
	var lines []string
	p := newPump([]LineHandler{
		func(line string) { lines = append(lines, line) },
	}, 0)

	if err := p.run(strings.NewReader("win\r\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "win" {
		t.Errorf("expected ['win'], got: %v", lines)
	}
}

func TestPumpSnapshotShowsPartialOutput(t *testing.T) {
	p := newPump(nil, 0)
	p.append([]byte("name? "))
	if got := p.snapshot(); got != "name? " {
		t.Errorf("snapshot = %q, want %q", got, "name? ")
	}
}

func TestPumpCapsBuffer(t *testing.T) {
	var lines []string
	p := newPump([]LineHandler{
		func(line string) { lines = append(lines, line) },
	}, 5)

	if err := p.run(strings.NewReader("abcdefgh\nij\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.snapshot(); got != "abcde" {
		t.Errorf("snapshot = %q, want %q", got, "abcde")
	}
	if !p.isTruncated() {
		t.Error("expected truncation")
	}
	// Handlers still see every line past the cap.
	if len(lines) != 2 || lines[0] != "abcdefgh" || lines[1] != "ij" {
		t.Errorf("expected handlers to see both lines, got: %v", lines)
	}
}
