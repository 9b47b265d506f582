package report

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeSurface struct {
	mu       sync.Mutex
	openErr  error
	writeErr error
	calls    []string
	written  string
}

func (f *fakeSurface) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeSurface) Open() error {
	f.record("open")
	return f.openErr
}

func (f *fakeSurface) Write(doc string) error {
	f.record("write")
	f.mu.Lock()
	f.written = doc
	f.mu.Unlock()
	return f.writeErr
}

func (f *fakeSurface) Print() error {
	f.record("print")
	return nil
}

func (f *fakeSurface) Close() error {
	f.record("close")
	return nil
}

func (f *fakeSurface) callSequence() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func TestPrinter_FullSequence(t *testing.T) {
	surface := &fakeSurface{}
	p := NewPrinter(surface, 5*time.Millisecond, zerolog.Nop())

	p.Print("<html>doc</html>")

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		calls := surface.callSequence()
		if len(calls) == 4 {
			break
		}
		time.Sleep(2 * time.Millisecond)
	}

	calls := surface.callSequence()
	want := []string{"open", "write", "print", "close"}
	if len(calls) != len(want) {
		t.Fatalf("expected call sequence %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected call sequence %v, got %v", want, calls)
		}
	}
	if surface.written != "<html>doc</html>" {
		t.Errorf("unexpected written document %q", surface.written)
	}
}

func TestPrinter_BlockedSurfaceIsSilentNoop(t *testing.T) {
	surface := &fakeSurface{openErr: errors.New("popup blocked")}
	p := NewPrinter(surface, time.Millisecond, zerolog.Nop())

	p.Print("<html>doc</html>")
	time.Sleep(20 * time.Millisecond)

	calls := surface.callSequence()
	if len(calls) != 1 || calls[0] != "open" {
		t.Errorf("expected only the failed open, got %v", calls)
	}
}

func TestPrinter_WriteFailureSkipsPrint(t *testing.T) {
	surface := &fakeSurface{writeErr: errors.New("surface gone")}
	p := NewPrinter(surface, time.Millisecond, zerolog.Nop())

	p.Print("<html>doc</html>")
	time.Sleep(20 * time.Millisecond)

	for _, call := range surface.callSequence() {
		if call == "print" {
			t.Error("expected no print trigger after a failed write")
		}
	}
}
