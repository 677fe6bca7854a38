// Package intent turns per-frame hand features into debounced discrete
// navigation events. A fixed set of recognizers runs every frame; a shared
// fist guard and per-recognizer cooldowns keep a single physical gesture
// from firing twice and keep confusable poses apart.
package intent

// Direction is the discrete outcome of one frame of recognition.
type Direction int

const (
	// None means no recognizer fired this frame.
	None Direction = iota
	// Advance moves the catalog cursor forward.
	Advance
	// Retreat moves the catalog cursor backward.
	Retreat
)

// String returns the direction name used in logs and plugin payloads.
func (d Direction) String() string {
	switch d {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	}
	return "none"
}

// Event is the result of one detection step. Magnitude carries the gesture
// speed (swipe velocity, roll rate) for diagnostics only; Source names the
// recognizer that fired. Events are transient and never stored.
type Event struct {
	Direction Direction
	Magnitude float64
	Source    string
}

// IsNone reports whether the event carries no direction.
func (e Event) IsNone() bool {
	return e.Direction == None
}
