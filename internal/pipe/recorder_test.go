package pipe

import (
	"sync"
	"testing"
	"time"
)

// call is one notification observed by a recorder.
type call struct {
	kind string // next | error | completed
	env  Envelope
	err  error
}

// recorder is a mutex-guarded Observer that keeps every call in order.
// nextHook runs inside OnNext with the 1-based count of data calls so far.
type recorder struct {
	mu       sync.Mutex
	calls    []call
	nextHook func(n int) error
	nexts    chan Envelope
	terminal chan struct{}
	termOnce sync.Once
}

func newRecorder() *recorder {
	return &recorder{
		nexts:    make(chan Envelope, 1024),
		terminal: make(chan struct{}),
	}
}

func (r *recorder) OnNext(e Envelope) error {
	r.mu.Lock()
	r.calls = append(r.calls, call{kind: "next", env: e})
	n := 0
	for _, c := range r.calls {
		if c.kind == "next" {
			n++
		}
	}
	hook := r.nextHook
	r.mu.Unlock()
	select {
	case r.nexts <- e:
	default:
	}
	if hook != nil {
		return hook(n)
	}
	return nil
}

func (r *recorder) OnError(err error) {
	r.mu.Lock()
	r.calls = append(r.calls, call{kind: "error", err: err})
	r.mu.Unlock()
	r.termOnce.Do(func() { close(r.terminal) })
}

func (r *recorder) OnCompleted() {
	r.mu.Lock()
	r.calls = append(r.calls, call{kind: "completed"})
	r.mu.Unlock()
	r.termOnce.Do(func() { close(r.terminal) })
}

func (r *recorder) snapshot() []call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]call, len(r.calls))
	copy(out, r.calls)
	return out
}

func (r *recorder) envelopes() []Envelope {
	var out []Envelope
	for _, c := range r.snapshot() {
		if c.kind == "next" {
			out = append(out, c.env)
		}
	}
	return out
}

func (r *recorder) waitTerminal(t *testing.T, d time.Duration) {
	t.Helper()
	select {
	case <-r.terminal:
	case <-time.After(d):
		t.Fatalf("no terminal notification within %s; calls=%+v", d, r.snapshot())
	}
}

// assertContract checks data calls are followed by exactly one terminal call
// of the wanted kind and nothing after it.
func assertContract(t *testing.T, calls []call, wantTerminal string) {
	t.Helper()
	terminals := 0
	for i, c := range calls {
		if c.kind == "next" {
			if terminals > 0 {
				t.Fatalf("call %d is OnNext after a terminal call: %+v", i, calls)
			}
			continue
		}
		terminals++
		if c.kind != wantTerminal {
			t.Fatalf("terminal call %q, want %q", c.kind, wantTerminal)
		}
	}
	if terminals != 1 {
		t.Fatalf("got %d terminal calls, want exactly 1: %+v", terminals, calls)
	}
}
