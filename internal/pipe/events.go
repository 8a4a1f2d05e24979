package pipe

import "sync"

// Event is a stream lifecycle notification for hosts and tests.
type Event struct {
	Name       string
	SourceName string
	RunID      string
	Fields     map[string]any
}

// Lifecycle event names.
const (
	EventStreamStart    = "stream_start"
	EventStopRequested  = "stream_stop_requested"
	EventStreamComplete = "stream_completed"
	EventStreamError    = "stream_error"
)

// EventPublisher receives lifecycle events. Publish is called from the
// stream's goroutines and must not block or panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// MemoryPublisher stores events in-memory for tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (p *MemoryPublisher) Publish(e Event) {
	p.mu.Lock()
	p.events = append(p.events, e)
	p.mu.Unlock()
}

func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}
