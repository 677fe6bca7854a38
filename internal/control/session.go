package control

import (
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/feature"
	"github.com/ayusman/mudra/internal/intent"
)

// Phase is the session's tracking state. There are exactly two phases and
// no terminal one; the session runs for its whole lifetime.
type Phase int

const (
	// NoHand means no hand was present in the last processed frame.
	NoHand Phase = iota
	// Tracking means the pipeline is following a hand.
	Tracking
)

// ControlState is the single mutable control record. It is owned
// exclusively by the Session: created once, mutated at most once per frame
// by Process, and handed out only by value. No parallel copy of the cursor
// exists anywhere else.
type ControlState struct {
	Zoom         float64 `json:"zoom"`
	RotationX    float64 `json:"rotationX"`
	RotationY    float64 `json:"rotationY"`
	RotationZ    float64 `json:"rotationZ"`
	CurrentIndex int     `json:"currentIndex"`
}

// Session is the per-frame state machine tying the feature extractor, the
// continuous mapper and the intent detector together. It is single-writer
// by construction: the capture loop calls Process once per frame and never
// concurrently.
type Session struct {
	mapper  *Mapper
	intents *intent.Detector
	history *feature.PinchHistory

	state      ControlState
	phase      Phase
	catalogLen int
}

// NewSession creates a session for a catalog of catalogLen objects.
func NewSession(t Tuning, ic intent.Config, catalogLen int) *Session {
	return &Session{
		mapper:     NewMapper(t),
		intents:    intent.NewDetector(ic),
		history:    feature.NewPinchHistory(),
		state:      ControlState{Zoom: DefaultZoom},
		catalogLen: catalogLen,
	}
}

// Process consumes one frame. hand is nil when no hand was detected, which
// is a valid state rather than an error: the session clears every
// previous-frame reference so the next appearance starts clean, and
// mutates nothing else. With a hand present it applies the continuous
// deltas and at most one accepted intent, then returns a snapshot of the
// state and the event (None if nothing fired).
func (s *Session) Process(hand *detector.HandLandmarks, nowMs int64) (ControlState, intent.Event) {
	if hand == nil {
		if s.phase == Tracking {
			s.mapper.Reset()
			s.intents.Reset()
			s.phase = NoHand
		}
		return s.state, intent.Event{}
	}

	s.phase = Tracking

	f := feature.Extract(hand)
	s.history.Push(feature.PinchSample{
		Strength:    f.Pinch.Strength,
		TimestampMs: nowMs,
	})

	cont := s.mapper.Step(f)
	ev := s.intents.Step(f, nowMs)

	s.state.Zoom = cont.Zoom
	s.state.RotationX += cont.DeltaX
	s.state.RotationY += cont.DeltaY
	s.state.RotationZ += cont.DeltaZ

	if !ev.IsNone() && s.catalogLen > 0 {
		switch ev.Direction {
		case intent.Advance:
			s.state.CurrentIndex = (s.state.CurrentIndex + 1) % s.catalogLen
		case intent.Retreat:
			s.state.CurrentIndex = (s.state.CurrentIndex - 1 + s.catalogLen) % s.catalogLen
		}
	}

	return s.state, ev
}

// State returns a snapshot of the current control state.
func (s *Session) State() ControlState {
	return s.state
}

// Phase returns the current tracking phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// PinchHistory returns the recent pinch samples for display.
func (s *Session) PinchHistory() []feature.PinchSample {
	return s.history.Samples()
}

// SetCatalogLen updates the catalog length, clamping the cursor back into
// range if the catalog shrank.
func (s *Session) SetCatalogLen(n int) {
	s.catalogLen = n
	if n <= 0 {
		s.state.CurrentIndex = 0
		return
	}
	if s.state.CurrentIndex >= n {
		s.state.CurrentIndex = s.state.CurrentIndex % n
	}
}

// SetTuning replaces the continuous-mapping constants.
func (s *Session) SetTuning(t Tuning) {
	s.mapper.SetTuning(t)
}

// Tuning returns the active continuous-mapping constants.
func (s *Session) Tuning() Tuning {
	return s.mapper.Tuning()
}

// SetIntentConfig replaces the recognizer thresholds.
func (s *Session) SetIntentConfig(cfg intent.Config) {
	s.intents.SetConfig(cfg)
}

// IntentConfig returns the active recognizer thresholds.
func (s *Session) IntentConfig() intent.Config {
	return s.intents.Config()
}
