package waveform

import (
	"fmt"
	"sync"

	"github.com/linksound/wavekit/internal/style"
)

// State is the recording lifecycle state of a Session.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateStopped
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateStopped:
		return "stopped"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Frame is what the session pushes to its render sink whenever geometry is
// recomputed: the finalized bar layout plus the style to paint it with.
type Frame struct {
	Geometry Geometry         `json:"geometry"`
	Layout   LayoutMode       `json:"layout"`
	Style    style.Parameters `json:"style"`
}

// Sink receives finalized frames. Push is invoked under the session's lock,
// so implementations must not block; hand the frame off and return.
type Sink interface {
	Push(Frame)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Frame)

func (f SinkFunc) Push(frame Frame) {
	f(frame)
}

// Session couples the recording lifecycle state machine with the bar
// geometry pipeline. It owns the amplitude history and recomputes the full
// geometry on every accepted update or configuration change.
//
// All mutating operations serialize on one mutex so the history append and
// the geometry publish are atomic as a unit: the sink never observes a
// geometry computed against a history state overwritten out of order. The
// pipeline stages themselves (normalize, compute, compose, resolve) are pure.
type Session struct {
	mu       sync.Mutex
	state    State
	cfg      Config
	params   style.Parameters
	norm     *Normalizer
	history  *History
	computer *Computer
	geometry Geometry
	sink     Sink
}

// NewSession creates an idle session with the given configuration. The sink
// may be nil; frames are then only available via Frame().
func NewSession(cfg Config, sink Sink) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		state:    StateIdle,
		cfg:      cfg,
		params:   cfg.parameters(),
		norm:     NewNormalizer(cfg.Smoothing),
		history:  NewHistory(cfg.BarCount),
		computer: NewComputer(),
		sink:     sink,
	}
	// Publish a baseline frame so sinks have something to paint before the
	// first amplitude arrives.
	s.recomputeLocked()

	return s, nil
}

// Start transitions to Recording from any non-Recording state. Recording
// always begins from an empty buffer, so stale history is cleared.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return
	}

	s.state = StateRecording
	s.history.Clear()
	s.norm.Reset()
	s.recomputeLocked()
}

// Stop transitions from Recording to Stopped. A no-op in any other state.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return
	}
	s.state = StateStopped
}

// Cancel transitions from Recording to Cancelled, effective immediately for
// the next call. A no-op in any other state.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return
	}
	s.state = StateCancelled
}

// Reset returns to Idle from any state, clearing the amplitude history and
// the cached geometry. The session object itself survives.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIdle
	s.history.Clear()
	s.norm.Reset()
	s.recomputeLocked()
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// UpdateAmplitude feeds one raw amplitude sample. Outside the Recording
// state the call is accepted but ignored, tolerating late or out-of-order
// ticks from the amplitude feed. Each accepted sample is normalized,
// appended to history, and the geometry is recomputed and pushed.
func (s *Session) UpdateAmplitude(raw float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return
	}

	s.history.Push(s.norm.Normalize(raw))
	s.recomputeLocked()
}

// ApplyStyle switches to a preset, adopting its bar count, heights, width
// and spacing, then re-renders the existing history. Works in any state.
func (s *Session) ApplyStyle(tok style.Token) error {
	if !tok.Valid() {
		return NewError(CodeInvalidConfiguration, "unknown style token %d", int(tok))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := ConfigForStyle(tok)
	cfg.HeightMode = s.cfg.HeightMode
	cfg.LayoutMode = s.cfg.LayoutMode
	cfg.Smoothing = s.cfg.Smoothing
	s.applyLocked(cfg)

	return nil
}

// ApplyConfiguration replaces the full configuration after validating it,
// then re-renders the existing history. Works in any state.
func (s *Session) ApplyConfiguration(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(cfg)

	return nil
}

// Refresh recomputes and pushes the geometry from the existing history
// without consuming a new sample.
func (s *Session) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked()
}

// Frame returns the last-produced frame (cached for redraw-without-
// recompute). The geometry is copied so callers cannot alias internal state.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	geo := make(Geometry, len(s.geometry))
	copy(geo, s.geometry)

	return Frame{Geometry: geo, Layout: s.cfg.LayoutMode, Style: s.params}
}

// Config returns the active configuration.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// HistoryLen returns the number of buffered amplitude samples.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len()
}

func (s *Session) applyLocked(cfg Config) {
	s.cfg = cfg
	s.params = cfg.parameters()
	s.norm = NewNormalizer(cfg.Smoothing)
	s.history.Resize(cfg.BarCount)
	s.recomputeLocked()
}

// recomputeLocked re-derives the full bar layout from accumulated history
// and publishes it. Caller must hold s.mu.
func (s *Session) recomputeLocked() {
	heights := s.computer.Compute(
		s.history.Values(), s.cfg.HeightMode, s.cfg.BarCount, s.cfg.MinHeight, s.cfg.MaxHeight)
	s.geometry = Compose(heights, s.cfg.LayoutMode)

	if s.sink != nil {
		geo := make(Geometry, len(s.geometry))
		copy(geo, s.geometry)
		s.sink.Push(Frame{Geometry: geo, Layout: s.cfg.LayoutMode, Style: s.params})
	}
}
