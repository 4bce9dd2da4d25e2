// Package sequencer drives a simulated upload: a progress value ramps from 0
// to 100 in fixed steps on a fixed cadence, then resets after a short delay.
package sequencer

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/lepinkainen/uploaddemo/video"
	"github.com/rs/xid"
)

const (
	DefaultInterval   = 300 * time.Millisecond
	DefaultStep       = 10
	DefaultResetDelay = 500 * time.Millisecond
)

// ErrBusy is returned by Start while a run is still in progress
var ErrBusy = errors.New("upload already in progress")

// Observer receives state changes. All calls for a run come from a single
// goroutine, in order.
type Observer interface {
	// Started is called once when a run begins, with Value 0
	Started(s State)
	// Progressed is called after every tick; the last tick carries StatusCompleted
	Progressed(s State)
	// Completed is called once after the reset delay, with the state back at Idle
	Completed(s State)
}

type nopObserver struct{}

func (nopObserver) Started(State)    {}
func (nopObserver) Progressed(State) {}
func (nopObserver) Completed(State)  {}

// Option configures a Sequencer
type Option func(*Sequencer)

// WithInterval sets the time between ticks
func WithInterval(d time.Duration) Option {
	return func(s *Sequencer) { s.interval = d }
}

// WithStep sets how much each tick adds to the value
func WithStep(step int) Option {
	return func(s *Sequencer) { s.step = step }
}

// WithResetDelay sets how long the Completed state lasts before resetting to Idle
func WithResetDelay(d time.Duration) Option {
	return func(s *Sequencer) { s.resetDelay = d }
}

// WithObserver sets the presentation sink
func WithObserver(o Observer) Option {
	return func(s *Sequencer) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(s *Sequencer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces the wall clock, mainly for tests
func WithClock(c clockwork.Clock) Option {
	return func(s *Sequencer) {
		if c != nil {
			s.clock = c
		}
	}
}

// Sequencer owns a ProgressState and the timers that drive it. Only one run
// can be active at a time.
type Sequencer struct {
	interval   time.Duration
	step       int
	resetDelay time.Duration
	observer   Observer
	logger     *log.Logger
	clock      clockwork.Clock

	mu     sync.Mutex
	state  ProgressState
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates an idle Sequencer
func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		interval:   DefaultInterval,
		step:       DefaultStep,
		resetDelay: DefaultResetDelay,
		observer:   nopObserver{},
		logger:     log.New(io.Discard),
		clock:      clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.step <= 0 {
		s.step = DefaultStep
	}
	return s
}

// Start begins a new run for the payload. It returns ErrBusy unless the
// sequencer is Idle.
func (s *Sequencer) Start(p video.Payload) error {
	s.mu.Lock()
	if s.state.Status != StatusIdle {
		runID := s.state.RunID
		s.mu.Unlock()
		s.logger.Warn("Rejected start while busy", "file", p.Name, "run", runID)
		return ErrBusy
	}

	ctx, cancel := context.WithCancel(context.Background())
	prev, done := s.done, make(chan struct{})
	s.state.Begin(xid.New().String(), p)
	s.cancel = cancel
	s.done = done
	started := s.state.Snapshot()
	s.mu.Unlock()

	s.logger.Info("Uploading file", "file", p.Name, "type", p.Type, "run", started.RunID)
	go s.run(ctx, cancel, started, prev, done)
	return nil
}

// run is the event loop of a single cycle. It waits for the previous loop to
// deliver its last notification so observers never see two runs interleave.
func (s *Sequencer) run(ctx context.Context, cancel context.CancelFunc, started State, prev <-chan struct{}, done chan struct{}) {
	defer close(done)
	defer cancel()

	if prev != nil {
		<-prev
	}

	// Cancelled while queued behind the previous loop
	if ctx.Err() != nil {
		s.abort(started.RunID)
		return
	}

	s.observer.Started(started)

	for {
		select {
		case <-ctx.Done():
			s.abort(started.RunID)
			return
		case <-s.clock.After(s.interval):
		}

		state, completed := s.tick()
		s.observer.Progressed(state)
		if completed {
			break
		}
	}

	select {
	case <-ctx.Done():
		s.abort(started.RunID)
		return
	case <-s.clock.After(s.resetDelay):
	}

	s.mu.Lock()
	finished := State{RunID: s.state.RunID, Payload: s.state.Payload, Status: StatusIdle}
	s.state.Reset()
	s.cancel = nil
	s.mu.Unlock()

	s.logger.Info("Upload complete", "file", finished.Payload.Name, "run", finished.RunID)
	s.observer.Completed(finished)
}

// tick advances the value by one step
func (s *Sequencer) tick() (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := s.state.Advance(s.step)
	state := s.state.Snapshot()
	s.logger.Debug("Tick", "run", state.RunID, "value", state.Value, "status", state.Status)
	return state, completed
}

func (s *Sequencer) abort(runID string) {
	s.mu.Lock()
	value := s.state.Value
	s.state.Reset()
	s.cancel = nil
	s.mu.Unlock()

	s.logger.Warn("Upload cancelled", "run", runID, "value", value)
}

// Cancel stops the current run and returns to Idle without a completion
// signal. It waits for the run loop to exit, so it must not be called from
// an Observer.
func (s *Sequencer) Cancel() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Wait blocks until the current run finishes or ctx is done. It returns
// immediately when no run has been started.
func (s *Sequencer) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns a snapshot of the current progress
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}
