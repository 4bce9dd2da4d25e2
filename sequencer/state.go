package sequencer

import "github.com/lepinkainen/uploaddemo/video"

// MaxValue is the value at which a run completes
const MaxValue = 100

// Status is the lifecycle position of a progress run
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ProgressState is the mutable progress of the current run.
// Value only grows while Running and never exceeds MaxValue.
type ProgressState struct {
	RunID   string
	Payload video.Payload
	Value   int
	Status  Status
}

// Begin resets the state for a new run
func (s *ProgressState) Begin(runID string, p video.Payload) {
	s.RunID = runID
	s.Payload = p
	s.Value = 0
	s.Status = StatusRunning
}

// Advance adds step to the value, clamping at MaxValue. It reports whether
// the run reached MaxValue and moved to Completed.
func (s *ProgressState) Advance(step int) bool {
	if s.Status != StatusRunning {
		return false
	}

	s.Value = min(s.Value+step, MaxValue)
	if s.Value == MaxValue {
		s.Status = StatusCompleted
		return true
	}
	return false
}

// Reset returns the state to Idle with a zero value
func (s *ProgressState) Reset() {
	*s = ProgressState{}
}

// Snapshot returns an immutable copy for observers
func (s *ProgressState) Snapshot() State {
	return State{
		RunID:   s.RunID,
		Payload: s.Payload,
		Value:   s.Value,
		Status:  s.Status,
	}
}

// State is a point-in-time copy of ProgressState handed to observers
type State struct {
	RunID   string
	Payload video.Payload
	Value   int
	Status  Status
}

// Fraction returns the value as 0.0 to 1.0 for progress bars
func (s State) Fraction() float64 {
	return float64(s.Value) / float64(MaxValue)
}
