package host

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"datapipe/internal/pipe"
	"datapipe/pkg/types"
)

// Host states reported by Status.
const (
	StateIdle     = "idle"
	StateRunning  = "running"
	StateStopping = "stopping"
	StateStopped  = "stopped"
)

// Config encapsulates the collaborators of a Service.
type Config struct {
	// Stream is the pipe driven by the service. Required.
	Stream *pipe.Stream
	// NewObserver builds the observer attached on Start. Required.
	NewObserver func() pipe.Observer
	// Cleanup runs once after the loop has been joined on Stop.
	Cleanup func()
	// Interval is reported in Status only.
	Interval time.Duration
	Logger   *zerolog.Logger
}

// Service wraps a Stream with service-manager style lifecycle hooks.
type Service struct {
	stream      *pipe.Stream
	newObserver func() pipe.Observer
	cleanup     func()
	interval    time.Duration
	log         zerolog.Logger
	startTime   time.Time

	mu          sync.Mutex
	state       string
	cleanupOnce sync.Once
}

// New validates cfg and returns an idle Service.
func New(cfg Config) (*Service, error) {
	if cfg.Stream == nil {
		return nil, fmt.Errorf("%w: host requires a stream", pipe.ErrMisuse)
	}
	if cfg.NewObserver == nil {
		return nil, fmt.Errorf("%w: host requires an observer factory", pipe.ErrMisuse)
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Service{
		stream:      cfg.Stream,
		newObserver: cfg.NewObserver,
		cleanup:     cfg.Cleanup,
		interval:    cfg.Interval,
		log:         log.With().Str("component", "host").Logger(),
		startTime:   time.Now(),
		state:       StateIdle,
	}, nil
}

// Start subscribes a fresh observer. It is a no-op while the loop is running
// and fails with ErrStopped after Stop.
func (s *Service) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateStopping, StateStopped:
		return ErrStopped
	}
	if s.stream.Running() {
		return nil
	}
	if err := s.stream.Subscribe(s.newObserver()); err != nil {
		return err
	}
	s.state = StateRunning
	s.log.Info().Msg("service started")
	return nil
}

// Stop cancels the stream and waits for its terminal notification, bounded
// by ctx. Cleanup runs once, even when the wait times out.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateStopped {
		s.mu.Unlock()
		return nil
	}
	s.state = StateStopping
	s.mu.Unlock()

	s.stream.Stop()
	err := s.stream.Wait(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("generation loop did not finish before deadline")
	}
	s.cleanupOnce.Do(func() {
		if s.cleanup != nil {
			s.log.Info().Msg("running cleanup")
			s.cleanup()
		}
	})

	s.mu.Lock()
	s.state = StateStopped
	s.mu.Unlock()
	s.log.Info().Msg("service stopped")
	return err
}

// Ready reports whether the generation loop is running.
func (s *Service) Ready() bool { return s.stream.Running() }

// Status builds the /status payload.
func (s *Service) Status() types.StatusResponse {
	st := s.stream.Stats()
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()
	// A faulted loop leaves the service running but idle.
	if state == StateRunning && !st.Running {
		state = StateIdle
	}
	now := time.Now()
	return types.StatusResponse{
		State:          state,
		SourceName:     st.SourceName,
		RunID:          st.RunID,
		Running:        st.Running,
		Stopped:        st.Stopped,
		Emitted:        st.Emitted,
		LastTerminal:   st.LastTerminal,
		LastError:      st.LastError,
		IntervalMS:     s.interval.Milliseconds(),
		UptimeSeconds:  int64(now.Sub(s.startTime).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
}
