package pipe

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Terminal kinds reported in Stats and metrics.
const (
	TerminalCompleted = "completed"
	TerminalError     = "error"
)

// Stream generates envelopes on a background goroutine and pushes them to a
// single Observer. The zero value is not usable; construct with New.
type Stream struct {
	source   string
	interval time.Duration
	now      func() time.Time
	log      zerolog.Logger
	pub      EventPublisher

	// cancel is closed once by Stop and never re-armed.
	cancel   chan struct{}
	stopOnce sync.Once

	running atomic.Bool
	emitted atomic.Uint64

	mu           sync.Mutex
	observer     Observer
	terminating  bool          // the current run is delivering its terminal call
	pending      Observer      // subscribed while terminating; starts the next run
	done         chan struct{} // closed when the current run exits
	runID        string
	lastTerminal string
	lastErr      error
}

// Stats is a point-in-time view of a Stream.
type Stats struct {
	SourceName   string
	RunID        string
	Running      bool
	Stopped      bool
	Emitted      uint64
	LastTerminal string
	LastError    string
}

// New constructs an idle Stream from cfg, applying defaults for unset fields.
func New(cfg Config) *Stream {
	cfg = cfg.withDefaults()
	return &Stream{
		source:   cfg.SourceName,
		interval: cfg.Interval,
		now:      cfg.Now,
		log:      cfg.Logger.With().Str("source", cfg.SourceName).Logger(),
		pub:      cfg.Publisher,
		cancel:   make(chan struct{}),
	}
}

// Subscribe attaches o and starts the generation loop if it is not already
// running. It never blocks. While a loop is running a second call only
// replaces the observer; the running loop delivers to it from its next
// iteration on. A call made while a run is delivering its terminal
// notification starts a fresh run for o once that run has exited.
func (s *Stream) Subscribe(o Observer) error {
	if o == nil {
		return ErrNilObserver
	}

	s.mu.Lock()
	if s.terminating {
		s.pending = o
		runID := s.runID
		s.mu.Unlock()
		s.log.Debug().Str("run_id", runID).Msg("subscribe while terminating; next run queued")
		return nil
	}
	s.observer = o
	if !s.running.CompareAndSwap(false, true) {
		runID := s.runID
		s.mu.Unlock()
		s.log.Debug().Str("run_id", runID).Msg("subscribe while running; observer replaced")
		return nil
	}
	done := make(chan struct{})
	runID := uuid.NewString()
	s.done = done
	s.runID = runID
	s.mu.Unlock()

	go s.run(runID, done)
	return nil
}

// Stop requests cancellation. It is idempotent, never blocks, and is safe
// before Subscribe and from any goroutine, including inside an Observer.
// The stream stays cancelled: a later Subscribe completes without data.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() {
		close(s.cancel)
		s.mu.Lock()
		runID := s.runID
		s.mu.Unlock()
		s.log.Info().Str("run_id", runID).Msg("stop requested")
		s.pub.Publish(Event{Name: EventStopRequested, SourceName: s.source, RunID: runID})
	})
}

// Running reports whether a generation loop is active.
func (s *Stream) Running() bool { return s.running.Load() }

// Wait blocks until the current run has delivered its terminal notification,
// or ctx is done. A run queued behind it is waited for too. It returns
// immediately if no run was ever started.
func (s *Stream) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	for done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		s.mu.Lock()
		next := s.done
		s.mu.Unlock()
		if next == done {
			return nil
		}
		done = next
	}
	return nil
}

// Stats returns a snapshot of the stream's state.
func (s *Stream) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{
		SourceName:   s.source,
		RunID:        s.runID,
		Running:      s.running.Load(),
		Stopped:      s.stopped(),
		Emitted:      s.emitted.Load(),
		LastTerminal: s.lastTerminal,
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

func (s *Stream) stopped() bool {
	select {
	case <-s.cancel:
		return true
	default:
		return false
	}
}

func (s *Stream) currentObserver() Observer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.observer
}

// run owns one subscription from first envelope to terminal notification.
func (s *Stream) run(runID string, done chan struct{}) {
	defer s.finish(done)

	runningGauge.WithLabelValues(s.source).Inc()
	defer runningGauge.WithLabelValues(s.source).Dec()

	log := s.log.With().Str("run_id", runID).Logger()
	log.Info().Dur("interval", s.interval).Msg("generation loop start")
	s.pub.Publish(Event{Name: EventStreamStart, SourceName: s.source, RunID: runID})

	err := s.generate(log)

	kind, name := TerminalCompleted, EventStreamComplete
	if err != nil {
		kind, name = TerminalError, EventStreamError
		log.Error().Err(err).Msg("generation loop fault")
	} else {
		log.Info().Msg("generation loop completed")
	}
	s.mu.Lock()
	s.lastTerminal = kind
	s.lastErr = err
	s.terminating = true
	obs := s.observer
	s.mu.Unlock()

	s.deliverTerminal(log, obs, err)
	terminalTotal.WithLabelValues(s.source, kind).Inc()

	fields := map[string]any{"emitted": s.emitted.Load()}
	if err != nil {
		fields["error"] = err.Error()
	}
	s.pub.Publish(Event{Name: name, SourceName: s.source, RunID: runID, Fields: fields})
}

// finish ends a run. An observer queued while the terminal notification was
// in flight takes over with a fresh run; otherwise the stream goes idle.
func (s *Stream) finish(done chan struct{}) {
	s.mu.Lock()
	next := s.pending
	s.pending = nil
	s.terminating = false
	var nextID string
	var nextDone chan struct{}
	if next != nil {
		nextID = uuid.NewString()
		nextDone = make(chan struct{})
		s.observer = next
		s.runID = nextID
		s.done = nextDone
	} else {
		s.running.Store(false)
	}
	s.mu.Unlock()

	close(done)
	if next != nil {
		go s.run(nextID, nextDone)
	}
}

// generate runs the emission loop until cancellation (nil) or a fault.
func (s *Stream) generate(log zerolog.Logger) error {
	var seq uint64
	for {
		if s.stopped() {
			return nil
		}
		if err := s.emit(log, seq); err != nil {
			return err
		}
		seq++
		s.pause()
	}
}

// pause waits one interval without holding locks. It returns early on Stop;
// the loop still checks cancellation at its top.
func (s *Stream) pause() {
	t := time.NewTimer(s.interval)
	defer t.Stop()
	select {
	case <-t.C:
	case <-s.cancel:
	}
}

// emit builds and delivers envelope seq, converting panics and observer
// errors into a *GenerationFault.
func (s *Stream) emit(log zerolog.Logger, seq uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &GenerationFault{Seq: seq, Err: fmt.Errorf("panic: %v", r), Panic: r}
		}
	}()

	env := generatedEnvelope(seq, s.source, s.now())
	obs := s.currentObserver()
	if obs == nil {
		droppedTotal.WithLabelValues(s.source).Inc()
		return nil
	}
	if err := obs.OnNext(env); err != nil {
		return &GenerationFault{Seq: seq, Err: err}
	}
	s.emitted.Add(1)
	envelopesTotal.WithLabelValues(s.source).Inc()
	log.Debug().
		Uint64("seq", seq).
		Str("action", env.Action.String()).
		Str("value", env.Value.Scalar.String()).
		Msg("envelope delivered")
	return nil
}

// deliverTerminal calls exactly one terminal handler. A panicking handler is
// logged and swallowed so it cannot take down the process.
func (s *Stream) deliverTerminal(log zerolog.Logger, obs Observer, err error) {
	if obs == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("observer panicked in terminal handler")
		}
	}()
	if err != nil {
		obs.OnError(err)
		return
	}
	obs.OnCompleted()
}
